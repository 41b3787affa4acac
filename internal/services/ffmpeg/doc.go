// Package ffmpeg wraps the two ffmpeg invocations the pipeline needs: a
// mono 16 kHz WAV extraction feeding the segmenter and the transcriber, and
// a single-pass trim+concat render producing the final edit. Rendering
// builds one filter_complex so the source is decoded exactly once
// regardless of how many keeps survive.
package ffmpeg
