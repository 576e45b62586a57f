package outline

import "fmt"

// Interval is an inclusive range of character indexes [Start, End]
// within a document. It is never empty: the smallest interval covers
// exactly one character.
type Interval struct {
	Start int
	End   int
}

// Of builds an interval, rejecting negative or inverted bounds.
func Of(start, end int) (Interval, error) {
	if start < 0 {
		return Interval{}, fmt.Errorf("interval start %d is negative", start)
	}
	if start > end {
		return Interval{}, fmt.Errorf("interval start %d exceeds end %d", start, end)
	}
	return Interval{Start: start, End: end}, nil
}

// Includes reports whether the index falls inside the interval.
func (iv Interval) Includes(index int) bool {
	return iv.Start <= index && index <= iv.End
}

// LiesWithin reports whether the interval is fully contained in outer.
func (iv Interval) LiesWithin(outer Interval) bool {
	return outer.Start <= iv.Start && iv.End <= outer.End
}

// Len returns the number of characters covered by the interval.
func (iv Interval) Len() int {
	return iv.End - iv.Start + 1
}

// Union returns the smallest interval covering both iv and other.
func (iv Interval) Union(other Interval) Interval {
	u := iv
	if other.Start < u.Start {
		u.Start = other.Start
	}
	if other.End > u.End {
		u.End = other.End
	}
	return u
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%d,%d]", iv.Start, iv.End)
}
