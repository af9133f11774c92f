package interval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// samplePipeline is the seven-stage almanac from the day 5 puzzle text.
func samplePipeline(t *testing.T) Pipeline {
	t.Helper()

	stages := []struct {
		from, to string
		triples  [][3]int64
	}{
		{"seed", "soil", [][3]int64{{50, 98, 2}, {52, 50, 48}}},
		{"soil", "fertilizer", [][3]int64{{0, 15, 37}, {37, 52, 2}, {39, 0, 15}}},
		{"fertilizer", "water", [][3]int64{{49, 53, 8}, {0, 11, 42}, {42, 0, 7}, {57, 7, 4}}},
		{"water", "light", [][3]int64{{88, 18, 7}, {18, 25, 70}}},
		{"light", "temperature", [][3]int64{{45, 77, 23}, {81, 45, 19}, {68, 64, 13}}},
		{"temperature", "humidity", [][3]int64{{0, 69, 1}, {1, 0, 69}}},
		{"humidity", "location", [][3]int64{{60, 56, 37}, {56, 93, 4}}},
	}

	var p Pipeline
	for _, s := range stages {
		tbl := mustTable(t)
		for _, tr := range s.triples {
			r, err := NewRule(tr[0], tr[1], tr[2])
			require.NoError(t, err)
			require.NoError(t, tbl.Insert(r))
		}
		p = append(p, Stage{From: s.from, To: s.to, Table: tbl})
	}
	return p
}

func TestPipeline_ApplyValue(t *testing.T) {
	p := samplePipeline(t)

	locations := map[int64]int64{79: 82, 14: 43, 55: 86, 13: 35}
	for seed, want := range locations {
		assert.Equal(t, want, p.ApplyValue(seed), "seed %d", seed)
	}
}

func TestPipeline_ApplyReproducesSampleAnswer(t *testing.T) {
	p := samplePipeline(t)
	seeds := []Interval{iv(79, 93), iv(55, 68)}

	out, err := p.Apply(seeds)
	require.NoError(t, err)

	assert.Equal(t, int64(27), TotalLen(out))
	lowest, ok := MinStart(out)
	require.True(t, ok)
	assert.Equal(t, int64(46), lowest)

	// The input working set is left alone.
	assert.Equal(t, []Interval{iv(79, 93), iv(55, 68)}, seeds)
}

func TestPipeline_TraceFeedsEachStageThePreviousOutput(t *testing.T) {
	p := samplePipeline(t)

	trace, err := p.Trace([]Interval{iv(79, 93)})
	require.NoError(t, err)
	require.Len(t, trace, len(p))

	// seed-to-soil moves [79,93) wholly inside [50,98).
	assert.Equal(t, []Interval{iv(81, 95)}, trace[0])

	for i := 1; i < len(trace); i++ {
		want, err := p[i].Table.TranslateAll(trace[i-1])
		require.NoError(t, err)
		assert.Equal(t, want, trace[i], "stage %s", p[i].Name())
	}
}

func TestPipeline_FirstStageOnly(t *testing.T) {
	tbl := mustTable(t, rule(iv(98, 100), iv(50, 52)))
	p := Pipeline{{From: "seed", To: "soil", Table: tbl}}

	out, err := p.Apply([]Interval{iv(97, 101)})
	require.NoError(t, err)
	assert.Equal(t, []Interval{iv(50, 52), iv(97, 98), iv(100, 101)}, out)
}

func TestPipeline_EmptyPipelineCopiesInput(t *testing.T) {
	in := []Interval{iv(1, 2)}
	out, err := Pipeline{}.Apply(in)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	out[0] = iv(7, 8)
	assert.Equal(t, iv(1, 2), in[0])
}

func TestPipeline_StageWithoutTableIsIdentity(t *testing.T) {
	p := Pipeline{{From: "a", To: "b"}}

	assert.Equal(t, int64(9), p.ApplyValue(9))

	out, err := p.Apply([]Interval{iv(1, 2)})
	require.NoError(t, err)
	assert.Equal(t, []Interval{iv(1, 2)}, out)

	trace, err := p.Trace([]Interval{iv(1, 2)})
	require.NoError(t, err)
	assert.Equal(t, [][]Interval{{iv(1, 2)}}, trace)
}

func TestPipeline_ErrorNamesStage(t *testing.T) {
	p := samplePipeline(t)

	_, err := p.Apply([]Interval{iv(5, 5)})
	require.Error(t, err)
	assert.True(t, IsInvalidInterval(err))
	assert.Contains(t, err.Error(), "seed-to-soil")
}

func TestMinStart(t *testing.T) {
	_, ok := MinStart(nil)
	assert.False(t, ok)

	lo, ok := MinStart([]Interval{iv(9, 10), iv(-3, 0), iv(4, 8)})
	require.True(t, ok)
	assert.Equal(t, int64(-3), lo)
}

func TestNewRule(t *testing.T) {
	r, err := NewRule(50, 98, 2)
	require.NoError(t, err)
	assert.Equal(t, rule(iv(98, 100), iv(50, 52)), r)
	assert.Equal(t, "[98,100)->[50,52)", r.String())

	_, err = NewRule(50, 98, 0)
	require.Error(t, err)
	assert.True(t, IsInvalidInterval(err))
}

func TestNew(t *testing.T) {
	got, err := New(3, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.Len())
	assert.True(t, got.Contains(3))
	assert.False(t, got.Contains(7))

	_, err = New(7, 3)
	assert.True(t, IsInvalidInterval(err))

	s, err := Span(79, 14)
	require.NoError(t, err)
	assert.Equal(t, iv(79, 93), s)
}
