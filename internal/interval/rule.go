package interval

import "fmt"

// Rule moves every value of Source onto Dest, preserving offsets.
type Rule struct {
	Source Interval `json:"source"`
	Dest   Interval `json:"dest"`
}

// NewRule builds a rule from an almanac triple: destination start,
// source start and length.
func NewRule(dest, source, length int64) (Rule, error) {
	r := Rule{
		Source: Interval{Start: source, End: source + length},
		Dest:   Interval{Start: dest, End: dest + length},
	}
	if err := r.Validate(); err != nil {
		return Rule{}, err
	}
	return r, nil
}

// Validate checks that both parts are non-empty and of equal length.
func (r Rule) Validate() error {
	if r.Source.Empty() {
		return newInvalidInterval(r.Source, "rule source")
	}
	if r.Dest.Empty() {
		return newInvalidInterval(r.Dest, "rule destination")
	}
	if r.Source.Len() != r.Dest.Len() {
		return newMalformedRule(r)
	}
	return nil
}

// Apply maps v, which must lie in Source.
func (r Rule) Apply(v int64) int64 {
	return v - r.Source.Start + r.Dest.Start
}

func (r Rule) String() string {
	return fmt.Sprintf("%s->%s", r.Source, r.Dest)
}
