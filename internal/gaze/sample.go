package gaze

import "context"

// Sample is one head-pose estimate at a source timestamp. FaceFound false
// means no face was detected on the sampled frame; the sample then counts as
// invalid for gap accounting but is never a hard failure.
type Sample struct {
	At        float64
	Yaw       float64
	Pitch     float64
	FaceFound bool
}

// PoseSource supplies head-pose estimates for sampled frames. The filter
// depends only on this narrow capability, not on which landmark model
// produced the angles.
type PoseSource interface {
	PoseAt(ctx context.Context, t float64) (Sample, error)
}
