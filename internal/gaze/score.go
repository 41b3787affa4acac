package gaze

import "math"

// scorer turns raw pose samples into a validity decision. It owns the EMA
// smoothing state and the speed-violation cooldown, both reset per interval.
type scorer struct {
	cfg Config

	hasPrev       bool
	emaYaw        float64
	emaPitch      float64
	prevAt        float64
	cooldownUntil float64
}

func newScorer(cfg Config) *scorer {
	return &scorer{cfg: cfg, cooldownUntil: math.Inf(-1)}
}

// observe scores one sample and reports whether it is attention-valid.
func (s *scorer) observe(sample Sample) (score float64, valid bool) {
	if !sample.FaceFound {
		// Missing face breaks the smoothing chain; the next valid sample
		// starts fresh rather than being dragged toward stale angles.
		s.hasPrev = false
		return 0, false
	}

	yaw, pitch := sample.Yaw, sample.Pitch
	speeding := false
	if s.hasPrev {
		dt := sample.At - s.prevAt
		if dt > 0 {
			yawSpeed := math.Abs(yaw-s.emaYaw) / dt
			pitchSpeed := math.Abs(pitch-s.emaPitch) / dt
			if yawSpeed > s.cfg.MaxYawSpeedDegS || pitchSpeed > s.cfg.MaxPitchSpeedDegS {
				speeding = true
				s.cooldownUntil = sample.At + s.cfg.Cooldown
			}
		}
		alpha := s.cfg.SmoothAlpha
		yaw = alpha*yaw + (1-alpha)*s.emaYaw
		pitch = alpha*pitch + (1-alpha)*s.emaPitch
	}
	s.emaYaw, s.emaPitch = yaw, pitch
	s.prevAt = sample.At
	s.hasPrev = true

	score = s.cfg.AngleWeight * s.angleScore(yaw, pitch)
	if speeding {
		score -= s.cfg.SpeedPenalty
	}
	if score < 0 {
		score = 0
	}

	if sample.At < s.cooldownUntil {
		return score, false
	}
	return score, score >= s.cfg.ValidThreshold
}

// angleScore maps smoothed angles to [0, 1]: 1 inside the configured bounds,
// falling off linearly with the relative excursion beyond them.
func (s *scorer) angleScore(yaw, pitch float64) float64 {
	var worst float64
	if over := math.Abs(yaw) - s.cfg.YawMaxDeg; over > 0 && s.cfg.YawMaxDeg > 0 {
		worst = math.Max(worst, over/s.cfg.YawMaxDeg)
	}
	if pitch > s.cfg.PitchMaxDeg && s.cfg.PitchMaxDeg != 0 {
		worst = math.Max(worst, (pitch-s.cfg.PitchMaxDeg)/math.Abs(s.cfg.PitchMaxDeg))
	}
	if pitch < s.cfg.PitchMinDeg && s.cfg.PitchMinDeg != 0 {
		worst = math.Max(worst, (s.cfg.PitchMinDeg-pitch)/math.Abs(s.cfg.PitchMinDeg))
	}
	return math.Max(0, 1-worst)
}
