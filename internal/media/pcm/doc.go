// Package pcm loads decoded audio for the segmentation stages.
//
// The segmenter contract is strict about input format: mono, 16 kHz, 16-bit
// PCM. Anything else is a fatal validation error rather than a silent
// resample, since misinterpreted sample timing would corrupt every downstream
// boundary decision.
package pcm
