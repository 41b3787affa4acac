// Package disfluency finds spans of hesitation inside candidate speech
// intervals and removes them.
//
// Two passes produce cut spans. The word pass evaluates four short-circuit
// rules per word: vocal fillers, bracketed non-verbal markers, immediate
// repeats of common function words, and abandoned false starts. The restart
// pass slides a fixed-size word window forward looking for a near-duplicate
// window within a bounded gap; a hit cuts the earlier, superseded attempt.
//
// Cuts from both passes are merged with a small slack. Applying them keeps
// only the portion of the interval after the last cut rather than
// fragmenting the interval around mid-span hesitations.
package disfluency
