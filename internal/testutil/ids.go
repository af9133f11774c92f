package testutil

import (
	"fmt"

	"github.com/roach88/aoc2023/internal/ident"
)

// SequentialIDs returns a generator yielding prefix-1 through prefix-n.
//
// The same test with the same generator records byte-identical run IDs, so
// history output can be compared exactly.
func SequentialIDs(prefix string, n int) *ident.FixedGenerator {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("%s-%d", prefix, i+1)
	}
	return ident.NewFixedGenerator(ids...)
}
