package interval

import "fmt"

// Stage is one table in a pipeline, labelled by the categories it converts
// between (for example "seed" to "soil"). A nil Table maps every value to
// itself.
type Stage struct {
	From  string
	To    string
	Table *Table
}

// Name returns "from-to-to", matching the almanac map header.
func (s Stage) Name() string {
	return fmt.Sprintf("%s-to-%s", s.From, s.To)
}

// Pipeline applies its stages in order.
type Pipeline []Stage

// ApplyValue pushes a single value through every stage.
func (p Pipeline) ApplyValue(v int64) int64 {
	for _, s := range p {
		v = s.Table.TranslateValue(v)
	}
	return v
}

// Apply pushes a working set of intervals through every stage. Each stage
// sees exactly the previous stage's output; set itself is not modified.
func (p Pipeline) Apply(set []Interval) ([]Interval, error) {
	trace, err := p.Trace(set)
	if err != nil {
		return nil, err
	}
	if len(trace) == 0 {
		return append([]Interval(nil), set...), nil
	}
	return trace[len(trace)-1], nil
}

// Trace is like Apply but returns the working set produced by every stage,
// in stage order.
func (p Pipeline) Trace(set []Interval) ([][]Interval, error) {
	trace := make([][]Interval, 0, len(p))
	cur := set
	for _, s := range p {
		next, err := s.Table.TranslateAll(cur)
		if err != nil {
			return nil, fmt.Errorf("stage %s: %w", s.Name(), err)
		}
		trace = append(trace, next)
		cur = next
	}
	return trace, nil
}
