package timeline

import "math"

// Params bundles the normalization thresholds a stage applies to its output.
type Params struct {
	// MergeGap joins two intervals when the silence between them is at most
	// this many seconds. Zero still merges touching or overlapping intervals.
	MergeGap float64
	// MinDuration drops any interval shorter than this after merging.
	MinDuration float64
	// Bounds clamps every interval into [0, Bounds] when positive. Zero means
	// the source duration is unknown and only the lower bound applies.
	Bounds float64
}

// Compose normalizes an interval list: sort by start, merge across gaps of at
// most MergeGap, drop intervals shorter than MinDuration, clamp into
// [0, Bounds]. Composing an already-composed list with the same parameters
// returns it unchanged.
func Compose(list List, p Params) List {
	if len(list) == 0 {
		return List{}
	}

	clamped := make(List, 0, len(list))
	for _, iv := range list {
		start := math.Max(0, iv.Start)
		end := iv.End
		if p.Bounds > 0 {
			start = math.Min(start, p.Bounds)
			end = math.Min(end, p.Bounds)
		}
		if end <= start {
			continue
		}
		clamped = append(clamped, Interval{Start: start, End: end})
	}
	if len(clamped) == 0 {
		return List{}
	}

	sortByStart(clamped)

	merged := List{clamped[0]}
	for _, iv := range clamped[1:] {
		last := &merged[len(merged)-1]
		if iv.Start-last.End <= p.MergeGap {
			if iv.End > last.End {
				last.End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}

	out := make(List, 0, len(merged))
	for _, iv := range merged {
		if iv.Duration() < p.MinDuration {
			continue
		}
		out = append(out, iv)
	}
	return out
}

// Subtract removes every instant covered by cuts from list. Both arguments
// may be unnormalized; the result is sorted and non-overlapping but is not
// filtered for minimum duration (callers Compose afterwards with their own
// thresholds).
func Subtract(list, cuts List) List {
	if len(list) == 0 {
		return List{}
	}
	if len(cuts) == 0 {
		return list.Clone()
	}

	base := Compose(list, Params{})
	removed := Compose(cuts, Params{})

	out := make(List, 0, len(base))
	for _, iv := range base {
		cursor := iv.Start
		for _, cut := range removed {
			if cut.End <= cursor {
				continue
			}
			if cut.Start >= iv.End {
				break
			}
			if cut.Start > cursor {
				out = append(out, Interval{Start: cursor, End: math.Min(cut.Start, iv.End)})
			}
			cursor = math.Max(cursor, cut.End)
			if cursor >= iv.End {
				break
			}
		}
		if cursor < iv.End {
			out = append(out, Interval{Start: cursor, End: iv.End})
		}
	}
	return out
}

// ShiftStarts moves every interval start earlier by bias seconds, clamped at
// zero. Segmenters use this to correct the systematic audio-to-video
// timestamp offset: audio-derived boundaries land slightly late relative to
// the video frames, so keeps are opened a little early.
func ShiftStarts(list List, bias float64) List {
	out := make(List, 0, len(list))
	for _, iv := range list {
		out = append(out, Interval{Start: math.Max(0, iv.Start-bias), End: iv.End})
	}
	return out
}
