// Package interval translates half-open integer intervals through mapping
// tables.
//
// A Table holds rules that each move one source interval onto a destination
// interval of the same length. Values outside every source interval map to
// themselves. Translating a query interval splits it along rule boundaries
// and returns the image of every piece:
//
//	t, _ := interval.NewTable(interval.Rule{
//	    Source: interval.Interval{Start: 10, End: 20},
//	    Dest:   interval.Interval{Start: 100, End: 110},
//	})
//	out, _ := t.Translate(interval.Interval{Start: 15, End: 25})
//	// out: [20,25) [105,110)
//
// A Pipeline chains tables into stages. Each stage consumes exactly the
// previous stage's output set; the working set is replaced, never mutated.
//
// # Invariants
//
//   - Rule sources in a table never overlap. Insert rejects an overlapping
//     rule with OVERLAPPING_RULES instead of picking a winner.
//   - Translate preserves length: the output lengths sum to the query length.
//   - Empty queries are rejected with INVALID_INTERVAL.
package interval
