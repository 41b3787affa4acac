// Package ffprobe inspects source recordings before a run.
//
// The pipeline needs three facts up front: the container duration (interval
// clamping bounds), the index of the audio stream to extract, and whether
// the video is HDR-like (the renderer then tone-maps to SDR). All three come
// from one ffprobe invocation parsed into typed results.
package ffprobe
