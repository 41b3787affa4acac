package timeline

import (
	"math"
	"testing"
)

func listsEqual(a, b List) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i].Start-b[i].Start) > 1e-9 || math.Abs(a[i].End-b[i].End) > 1e-9 {
			return false
		}
	}
	return true
}

func TestComposeMergesSmallGaps(t *testing.T) {
	got := Compose(List{{0, 2}, {2.05, 4}}, Params{MergeGap: 0.2, MinDuration: 0.1})
	want := List{{0, 4}}
	if !listsEqual(got, want) {
		t.Fatalf("Compose = %v, want %v", got, want)
	}
}

func TestCompose(t *testing.T) {
	tests := []struct {
		name   string
		input  List
		params Params
		want   List
	}{
		{
			name:   "empty input",
			input:  nil,
			params: Params{MergeGap: 0.2},
			want:   List{},
		},
		{
			name:   "sorts unordered input",
			input:  List{{5, 6}, {1, 2}},
			params: Params{},
			want:   List{{1, 2}, {5, 6}},
		},
		{
			name:   "merges overlap",
			input:  List{{0, 3}, {2, 5}},
			params: Params{},
			want:   List{{0, 5}},
		},
		{
			name:   "keeps gap above threshold",
			input:  List{{0, 1}, {1.5, 2.5}},
			params: Params{MergeGap: 0.2},
			want:   List{{0, 1}, {1.5, 2.5}},
		},
		{
			name:   "drops short after merge",
			input:  List{{0, 0.05}, {3, 4}},
			params: Params{MinDuration: 0.1},
			want:   List{{3, 4}},
		},
		{
			name:   "clamps to bounds",
			input:  List{{-1, 2}, {9, 12}},
			params: Params{Bounds: 10},
			want:   List{{0, 2}, {9, 10}},
		},
		{
			name:   "degenerate after clamp is dropped",
			input:  List{{11, 12}},
			params: Params{Bounds: 10},
			want:   List{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Compose(tc.input, tc.params)
			if !listsEqual(got, tc.want) {
				t.Fatalf("Compose(%v) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestComposeIdempotent(t *testing.T) {
	params := Params{MergeGap: 0.25, MinDuration: 0.3, Bounds: 100}
	first := Compose(List{{0, 2}, {2.1, 4}, {10, 10.1}, {20, 25}}, params)
	second := Compose(first, params)
	if !listsEqual(first, second) {
		t.Fatalf("Compose not idempotent: %v then %v", first, second)
	}
}

func TestComposeNoDegenerateIntervals(t *testing.T) {
	got := Compose(List{{3, 3}, {5, 4}, {1, 2}}, Params{})
	for _, iv := range got {
		if iv.End <= iv.Start {
			t.Fatalf("degenerate interval %v in output", iv)
		}
	}
	if !listsEqual(got, List{{1, 2}}) {
		t.Fatalf("unexpected output %v", got)
	}
}

func TestSubtract(t *testing.T) {
	tests := []struct {
		name string
		list List
		cuts List
		want List
	}{
		{
			name: "cut in middle splits",
			list: List{{0, 10}},
			cuts: List{{4, 6}},
			want: List{{0, 4}, {6, 10}},
		},
		{
			name: "cut covering start",
			list: List{{2, 8}},
			cuts: List{{0, 4}},
			want: List{{4, 8}},
		},
		{
			name: "cut covering everything",
			list: List{{2, 8}},
			cuts: List{{0, 10}},
			want: List{},
		},
		{
			name: "no cuts returns copy",
			list: List{{1, 2}},
			cuts: nil,
			want: List{{1, 2}},
		},
		{
			name: "cuts outside list are ignored",
			list: List{{5, 6}},
			cuts: List{{0, 1}, {8, 9}},
			want: List{{5, 6}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Subtract(tc.list, tc.cuts)
			if !listsEqual(got, tc.want) {
				t.Fatalf("Subtract(%v, %v) = %v, want %v", tc.list, tc.cuts, got, tc.want)
			}
			if !got.CoveredBy(Compose(tc.list, Params{})) {
				t.Fatalf("Subtract output %v escapes input coverage %v", got, tc.list)
			}
		})
	}
}

func TestShiftStarts(t *testing.T) {
	got := ShiftStarts(List{{0.05, 2}, {5, 6}}, 0.09)
	want := List{{0, 2}, {4.91, 6}}
	if !listsEqual(got, want) {
		t.Fatalf("ShiftStarts = %v, want %v", got, want)
	}
}

func TestCoveredBy(t *testing.T) {
	outer := List{{0, 5}, {10, 20}}
	if !(List{{1, 2}, {12, 13}}).CoveredBy(outer) {
		t.Fatal("expected subset to be covered")
	}
	if (List{{4, 6}}).CoveredBy(outer) {
		t.Fatal("expected straddling interval to not be covered")
	}
}
