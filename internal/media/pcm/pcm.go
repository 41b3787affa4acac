package pcm

import (
	"fmt"
	"math"
	"os"

	"github.com/go-audio/wav"

	"bestcut/internal/services"
)

// Required input format for the segmentation stages.
const (
	RequiredSampleRate = 16000
	RequiredChannels   = 1
	RequiredBitDepth   = 16
)

// Audio holds a complete mono recording as normalized samples in [-1, 1].
type Audio struct {
	SampleRate int
	Samples    []float64
}

// Frame is a fixed-duration window of samples with its start timestamp.
type Frame struct {
	At      float64
	Samples []float64
}

// LoadWAV reads a WAV file and validates the strict segmenter preconditions.
func LoadWAV(path string) (*Audio, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, services.Wrap(services.ErrNotFound, "pcm", "open", path, err)
	}
	defer file.Close()

	decoder := wav.NewDecoder(file)
	if !decoder.IsValidFile() {
		return nil, services.Wrap(services.ErrValidation, "pcm", "decode",
			fmt.Sprintf("%s is not a valid WAV file", path), nil)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "pcm", "decode", path, err)
	}

	format := buf.Format
	if format.NumChannels != RequiredChannels {
		return nil, services.Wrap(services.ErrValidation, "pcm", "precondition",
			fmt.Sprintf("expected mono audio, got %d channels (extract with -ac 1)", format.NumChannels), nil)
	}
	if format.SampleRate != RequiredSampleRate {
		return nil, services.Wrap(services.ErrValidation, "pcm", "precondition",
			fmt.Sprintf("expected %d Hz, got %d Hz (extract with -ar 16000)", RequiredSampleRate, format.SampleRate), nil)
	}
	if int(decoder.BitDepth) != RequiredBitDepth {
		return nil, services.Wrap(services.ErrValidation, "pcm", "precondition",
			fmt.Sprintf("expected %d-bit samples, got %d-bit", RequiredBitDepth, decoder.BitDepth), nil)
	}

	samples := make([]float64, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = float64(v) / 32768.0
	}
	return &Audio{SampleRate: format.SampleRate, Samples: samples}, nil
}

// Duration returns the recording length in seconds.
func (a *Audio) Duration() float64 {
	if a == nil || a.SampleRate == 0 {
		return 0
	}
	return float64(len(a.Samples)) / float64(a.SampleRate)
}

// Frames splits the recording into fixed-duration windows. A trailing partial
// window is discarded, matching the frame classifier's contract.
func (a *Audio) Frames(frameDuration float64) []Frame {
	if a == nil || frameDuration <= 0 {
		return nil
	}
	size := int(float64(a.SampleRate) * frameDuration)
	if size <= 0 {
		return nil
	}
	frames := make([]Frame, 0, len(a.Samples)/size)
	for offset := 0; offset+size <= len(a.Samples); offset += size {
		frames = append(frames, Frame{
			At:      float64(offset) / float64(a.SampleRate),
			Samples: a.Samples[offset : offset+size],
		})
	}
	return frames
}

// RMS returns the root-mean-square level of the samples.
func RMS(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, s := range samples {
		sum += s * s
	}
	return math.Sqrt(sum / float64(len(samples)))
}

// DB converts a linear RMS level to decibels relative to full scale. Silence
// maps to a large negative floor instead of -Inf.
func DB(level float64) float64 {
	if level <= 0 {
		return -120
	}
	db := 20 * math.Log10(level)
	if db < -120 {
		return -120
	}
	return db
}
