package gaze

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"
)

// maxSampleSkew is how far a requested timestamp may sit from the nearest
// recorded estimate before the lookup counts as a missing face.
const maxSampleSkew = 0.6

type sidecarSample struct {
	At        float64 `json:"t"`
	Yaw       float64 `json:"yaw"`
	Pitch     float64 `json:"pitch"`
	FaceFound bool    `json:"face"`
}

// Sidecar is a PoseSource backed by a JSON file of precomputed head-pose
// estimates. Pose extraction runs out of process; the sidecar carries its
// results onto the source timeline.
type Sidecar struct {
	samples []sidecarSample
}

// LoadSidecar reads a pose sidecar file. Samples are sorted by timestamp.
func LoadSidecar(path string) (*Sidecar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pose sidecar: %w", err)
	}
	var samples []sidecarSample
	if err := json.Unmarshal(data, &samples); err != nil {
		return nil, fmt.Errorf("parse pose sidecar: %w", err)
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i].At < samples[j].At })
	return &Sidecar{samples: samples}, nil
}

// PoseAt returns the recorded estimate nearest to t. When no estimate lies
// within maxSampleSkew seconds the frame counts as face-not-found.
func (s *Sidecar) PoseAt(_ context.Context, t float64) (Sample, error) {
	if len(s.samples) == 0 {
		return Sample{At: t}, nil
	}
	i := sort.Search(len(s.samples), func(i int) bool { return s.samples[i].At >= t })
	best := -1
	for _, cand := range []int{i - 1, i} {
		if cand < 0 || cand >= len(s.samples) {
			continue
		}
		if best < 0 || math.Abs(s.samples[cand].At-t) < math.Abs(s.samples[best].At-t) {
			best = cand
		}
	}
	sample := s.samples[best]
	if math.Abs(sample.At-t) > maxSampleSkew {
		return Sample{At: t}, nil
	}
	return Sample{At: t, Yaw: sample.Yaw, Pitch: sample.Pitch, FaceFound: sample.FaceFound}, nil
}
