package outline

import (
	"testing"
)

func TestOf(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
		ok         bool
	}{
		{"single character", 0, 0, true},
		{"plain range", 0, 5, true},
		{"point in the middle", 3, 3, true},
		{"negative start", -1, 0, false},
		{"inverted bounds", 5, 3, false},
		{"both negative", -2, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iv, err := Of(tt.start, tt.end)
			if tt.ok && err != nil {
				t.Fatalf("Of(%d, %d) = %v, want nil error", tt.start, tt.end, err)
			}
			if !tt.ok {
				if err == nil {
					t.Fatalf("Of(%d, %d) = %v, want error", tt.start, tt.end, iv)
				}
				return
			}
			if iv.Start != tt.start || iv.End != tt.end {
				t.Errorf("Of(%d, %d) = %v", tt.start, tt.end, iv)
			}
		})
	}
}

func TestIntervalIncludes(t *testing.T) {
	iv := Interval{Start: 3, End: 7}

	tests := []struct {
		index int
		want  bool
	}{
		{2, false},
		{3, true},
		{5, true},
		{7, true},
		{8, false},
	}

	for _, tt := range tests {
		if got := iv.Includes(tt.index); got != tt.want {
			t.Errorf("Includes(%d) = %v, want %v", tt.index, got, tt.want)
		}
	}
}

func TestIntervalLiesWithin(t *testing.T) {
	outer := Interval{Start: 2, End: 10}

	tests := []struct {
		name  string
		inner Interval
		want  bool
	}{
		{"strictly inside", Interval{Start: 3, End: 9}, true},
		{"equal bounds", Interval{Start: 2, End: 10}, true},
		{"starts before", Interval{Start: 1, End: 5}, false},
		{"ends after", Interval{Start: 5, End: 11}, false},
		{"disjoint", Interval{Start: 20, End: 30}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.inner.LiesWithin(outer); got != tt.want {
				t.Errorf("LiesWithin = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIntervalLen(t *testing.T) {
	if got := (Interval{Start: 3, End: 3}).Len(); got != 1 {
		t.Errorf("Len = %d, want 1", got)
	}
	if got := (Interval{Start: 0, End: 9}).Len(); got != 10 {
		t.Errorf("Len = %d, want 10", got)
	}
}

func TestIntervalUnion(t *testing.T) {
	a := Interval{Start: 2, End: 5}
	b := Interval{Start: 6, End: 12}

	want := Interval{Start: 2, End: 12}
	if got := a.Union(b); got != want {
		t.Errorf("Union = %v, want %v", got, want)
	}
	if got := b.Union(a); got != want {
		t.Errorf("Union reversed = %v, want %v", got, want)
	}
}
