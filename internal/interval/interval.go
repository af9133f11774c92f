package interval

import "fmt"

// Interval is the half-open range [Start, End).
type Interval struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

// New returns [start, end) or an INVALID_INTERVAL error if it is empty.
func New(start, end int64) (Interval, error) {
	iv := Interval{Start: start, End: end}
	if iv.Empty() {
		return Interval{}, newInvalidInterval(iv, "interval")
	}
	return iv, nil
}

// Span returns [start, start+length).
func Span(start, length int64) (Interval, error) {
	return New(start, start+length)
}

// Len returns the number of values in the interval, or 0 if it is reversed.
func (iv Interval) Len() int64 {
	if iv.End <= iv.Start {
		return 0
	}
	return iv.End - iv.Start
}

// Empty reports whether the interval holds no values.
func (iv Interval) Empty() bool {
	return iv.Start >= iv.End
}

// Contains reports whether v lies in the interval.
func (iv Interval) Contains(v int64) bool {
	return iv.Start <= v && v < iv.End
}

// Overlaps reports whether the two intervals share at least one value.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End && other.Start < iv.End
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%d,%d)", iv.Start, iv.End)
}

// TotalLen sums the lengths of ivs.
func TotalLen(ivs []Interval) int64 {
	var n int64
	for _, iv := range ivs {
		n += iv.Len()
	}
	return n
}

// MinStart returns the smallest Start in ivs.
// The second result is false when ivs is empty.
func MinStart(ivs []Interval) (int64, bool) {
	if len(ivs) == 0 {
		return 0, false
	}
	lo := ivs[0].Start
	for _, iv := range ivs[1:] {
		if iv.Start < lo {
			lo = iv.Start
		}
	}
	return lo, true
}
