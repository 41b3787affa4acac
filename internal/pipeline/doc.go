// Package pipeline orchestrates one recording's journey from raw take to
// rendered edit.
//
// Stages run sequentially: probe, audio extraction, transcription, speech
// segmentation, gaze refinement, disfluency cuts, then the second-pass
// retake resolution over rebuilt sentence segments. Every stage consumes an
// immutable interval list and produces a new one; an empty list is a valid
// terminal state that short-circuits the rest of the run. Each run carries a
// generated run ID through the context so every log line can be correlated.
package pipeline
