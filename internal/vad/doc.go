// Package vad produces the first-pass speech interval list from decoded
// audio.
//
// Two interchangeable strategies are provided. The ring-buffer trigger runs a
// per-frame speech classifier through a sliding padding window and flips
// between silence and speech only on a sustained 90% majority, which absorbs
// classifier flicker. The silence-threshold detector finds sustained
// low-level runs and derives keep segments from their complement, joining
// across short pauses and padding cut points so edits do not start abruptly.
//
// Both strategies end with the constant audio-to-video start-bias correction
// and a Compose pass that drops sub-minimum segments.
package vad
