package gaze

// Config bundles every gaze filter threshold. Values are immutable for the
// duration of one run.
type Config struct {
	// SampleFPS is the fixed pose sampling rate inside each interval.
	SampleFPS float64

	// Geometry bounds: yaw is symmetric, pitch is not (looking slightly down
	// at notes is worse than looking slightly up).
	YawMaxDeg   float64
	PitchMinDeg float64
	PitchMaxDeg float64

	// Motion limits: pose changes faster than these open a cooldown window.
	MaxYawSpeedDegS   float64
	MaxPitchSpeedDegS float64
	// Cooldown suppresses validity for this long after a speed violation.
	Cooldown float64

	// Score weighting. The angular term is weighted by AngleWeight and the
	// speed penalty subtracts SpeedPenalty; validity requires the combined
	// score to reach ValidThreshold.
	AngleWeight    float64
	SpeedPenalty   float64
	ValidThreshold float64

	// SmoothAlpha is the EMA coefficient applied across consecutive valid
	// samples before scoring.
	SmoothAlpha float64

	// Entry and exit guards tolerate a bounded number of below-threshold
	// samples at the interval edges.
	EntryGuard        float64
	EntryMaxBadFrames int
	ExitGuard         float64
	ExitMaxBadFrames  int

	// Temporal logic.
	MinStable     float64
	MaxInvalidGap float64
	MinSegment    float64
	MergeGap      float64

	// Workers bounds the interval worker pool; zero means one per interval
	// up to the default cap.
	Workers int
}

// DefaultConfig returns permissive thresholds tuned for presenters who
// frequently check and return to the camera.
func DefaultConfig() Config {
	return Config{
		SampleFPS: 4.0,

		YawMaxDeg:   40.0,
		PitchMinDeg: -38.0,
		PitchMaxDeg: 28.0,

		MaxYawSpeedDegS:   120.0,
		MaxPitchSpeedDegS: 135.0,
		Cooldown:          0.40,

		AngleWeight:    1.0,
		SpeedPenalty:   1.0,
		ValidThreshold: 0.5,

		SmoothAlpha: 0.55,

		EntryGuard:        0.35,
		EntryMaxBadFrames: 2,
		ExitGuard:         0.45,
		ExitMaxBadFrames:  2,

		MinStable:     0.15,
		MaxInvalidGap: 0.55,
		MinSegment:    0.50,
		MergeGap:      0.45,

		Workers: 4,
	}
}
