// Package services defines the shared error taxonomy for pipeline stages and
// external collaborators.
//
// Stages wrap failures with a sentinel marker so callers can classify them
// without string matching: validation errors (bad input, wrong audio format)
// fail the run fast, external tool errors point at ffmpeg or WhisperX, and
// transient errors are safe to retry at the orchestration layer.
package services
