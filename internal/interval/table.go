package interval

import (
	"cmp"
	"slices"

	"github.com/google/btree"
)

// btreeDegree is small because tables hold tens of rules, not thousands.
const btreeDegree = 8

// Table is a set of rules with pairwise-disjoint sources.
// Values not covered by any rule map to themselves.
//
// Rules are indexed by source start so that the rule containing a value is
// found with one descending seek. The zero value, and a nil *Table, is an
// empty table.
type Table struct {
	rules *btree.BTreeG[Rule]
}

func lessBySourceStart(a, b Rule) bool {
	return a.Source.Start < b.Source.Start
}

// NewTable returns a table holding rules. Rules may be given in any order.
func NewTable(rules ...Rule) (*Table, error) {
	t := &Table{}
	for _, r := range rules {
		if err := t.Insert(r); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Insert adds r to the table.
// It fails if r is malformed or its source overlaps an existing rule.
func (t *Table) Insert(r Rule) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if prev, ok := t.atOrBefore(r.Source.Start); ok && prev.Source.Overlaps(r.Source) {
		return newOverlap(r, prev)
	}
	if next, ok := t.atOrAfter(r.Source.Start); ok && next.Source.Overlaps(r.Source) {
		return newOverlap(r, next)
	}
	if t.rules == nil {
		t.rules = btree.NewG(btreeDegree, lessBySourceStart)
	}
	t.rules.ReplaceOrInsert(r)
	return nil
}

func (t *Table) empty() bool {
	return t == nil || t.rules == nil
}

// Len returns the number of rules.
func (t *Table) Len() int {
	if t.empty() {
		return 0
	}
	return t.rules.Len()
}

// Rules returns the rules ordered by source start.
func (t *Table) Rules() []Rule {
	if t.empty() {
		return nil
	}
	out := make([]Rule, 0, t.rules.Len())
	t.rules.Ascend(func(r Rule) bool {
		out = append(out, r)
		return true
	})
	return out
}

// atOrBefore returns the rule with the greatest source start <= v.
func (t *Table) atOrBefore(v int64) (Rule, bool) {
	if t.empty() {
		return Rule{}, false
	}
	var found Rule
	var ok bool
	t.rules.DescendLessOrEqual(Rule{Source: Interval{Start: v}}, func(r Rule) bool {
		found, ok = r, true
		return false
	})
	return found, ok
}

// atOrAfter returns the rule with the smallest source start >= v.
func (t *Table) atOrAfter(v int64) (Rule, bool) {
	if t.empty() {
		return Rule{}, false
	}
	var found Rule
	var ok bool
	t.rules.AscendGreaterOrEqual(Rule{Source: Interval{Start: v}}, func(r Rule) bool {
		found, ok = r, true
		return false
	})
	return found, ok
}

// covering returns the rule whose source contains v.
func (t *Table) covering(v int64) (Rule, bool) {
	r, ok := t.atOrBefore(v)
	if !ok || !r.Source.Contains(v) {
		return Rule{}, false
	}
	return r, true
}

// TranslateValue maps a single value through the table.
func (t *Table) TranslateValue(v int64) int64 {
	if r, ok := t.covering(v); ok {
		return r.Apply(v)
	}
	return v
}

// Translate returns the image of q under the table, split along rule
// boundaries. Covered pieces are moved by their rule; uncovered pieces pass
// through unchanged. The result is ordered by Start and its lengths sum to
// q.Len().
func (t *Table) Translate(q Interval) ([]Interval, error) {
	if q.Empty() {
		return nil, newInvalidInterval(q, "query")
	}

	var out []Interval
	pending := []Interval{q}
	for len(pending) > 0 {
		cur := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		if r, ok := t.covering(cur.Start); ok {
			if cur.End <= r.Source.End {
				out = append(out, Interval{Start: r.Apply(cur.Start), End: r.Apply(cur.End)})
				continue
			}
			out = append(out, Interval{Start: r.Apply(cur.Start), End: r.Dest.End})
			pending = append(pending, Interval{Start: r.Source.End, End: cur.End})
			continue
		}

		// cur.Start is uncovered, so the next rule starts strictly after it.
		next, ok := t.atOrAfter(cur.Start)
		if !ok || next.Source.Start >= cur.End {
			out = append(out, cur)
			continue
		}
		out = append(out, Interval{Start: cur.Start, End: next.Source.Start})
		pending = append(pending, Interval{Start: next.Source.Start, End: cur.End})
	}

	slices.SortFunc(out, func(a, b Interval) int {
		return cmp.Compare(a.Start, b.Start)
	})
	return out, nil
}

// TranslateAll applies the table to every interval in set and returns the
// combined output as a new slice.
func (t *Table) TranslateAll(set []Interval) ([]Interval, error) {
	next := make([]Interval, 0, len(set))
	for _, q := range set {
		out, err := t.Translate(q)
		if err != nil {
			return nil, err
		}
		next = append(next, out...)
	}
	return next, nil
}
