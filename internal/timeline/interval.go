package timeline

import (
	"fmt"
	"sort"
)

// Interval is a half-open [Start, End) span of the source timeline in seconds.
type Interval struct {
	Start float64
	End   float64
}

// Duration returns the span length in seconds.
func (iv Interval) Duration() float64 {
	return iv.End - iv.Start
}

// Valid reports whether the interval has positive duration.
func (iv Interval) Valid() bool {
	return iv.End > iv.Start
}

// Contains reports whether t falls inside the interval.
func (iv Interval) Contains(t float64) bool {
	return t >= iv.Start && t < iv.End
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%.3f, %.3f)", iv.Start, iv.End)
}

// List is an ordered sequence of intervals. A normalized list is sorted
// ascending by start and mutually non-overlapping; Compose enforces this.
type List []Interval

// TotalDuration sums the durations of all intervals in the list.
func (l List) TotalDuration() float64 {
	var total float64
	for _, iv := range l {
		total += iv.Duration()
	}
	return total
}

// Sorted reports whether the list is ordered ascending and non-overlapping.
func (l List) Sorted() bool {
	for i := 1; i < len(l); i++ {
		if l[i].Start < l[i-1].End {
			return false
		}
	}
	return true
}

// CoveredBy reports whether every instant covered by l is also covered by
// other. Both lists must be normalized. Stages use this to assert the
// shrink-only contract in tests.
func (l List) CoveredBy(other List) bool {
	j := 0
	for _, iv := range l {
		for j < len(other) && other[j].End <= iv.Start {
			j++
		}
		if j >= len(other) || other[j].Start > iv.Start || other[j].End < iv.End {
			return false
		}
	}
	return true
}

// Equal reports whether both lists hold the same intervals in the same order.
func (l List) Equal(other List) bool {
	if len(l) != len(other) {
		return false
	}
	for i := range l {
		if l[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the list.
func (l List) Clone() List {
	if l == nil {
		return nil
	}
	out := make(List, len(l))
	copy(out, l)
	return out
}

func sortByStart(l List) {
	sort.Slice(l, func(i, j int) bool {
		if l[i].Start == l[j].Start {
			return l[i].End < l[j].End
		}
		return l[i].Start < l[j].Start
	})
}
