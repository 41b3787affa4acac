// Package stt transcribes extracted audio with word-level timestamps.
//
// Transcription runs WhisperX through uvx so no Python environment needs to
// be provisioned ahead of time. The service consumes the mono 16 kHz WAV the
// ffmpeg service extracted, asks for aligned JSON output, and loads it back
// as validated transcript segments. Which model produced the words is
// invisible to the rest of the pipeline.
package stt
