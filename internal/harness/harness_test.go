package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Samples(t *testing.T) {
	scenario, err := LoadScenario(samplesPath())
	require.NoError(t, err)

	result, err := Run(scenario)
	require.NoError(t, err)

	assert.True(t, result.Pass, "errors: %v", result.Errors)
	assert.Empty(t, result.Errors)
	assert.Len(t, result.Outcomes, 11)
	assert.Empty(t, result.Failed())
}

func TestRun_WrongAnswer(t *testing.T) {
	path := writeScenario(t, `
name: wrong
cases:
  - day: 1
    input: in.txt
    part1: 13
    part2: 12
`)
	scenario, err := LoadScenario(path)
	require.NoError(t, err)

	result, err := Run(scenario)
	require.NoError(t, err)

	assert.False(t, result.Pass)
	require.Len(t, result.Outcomes, 2)

	failed := result.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, 1, failed[0].Part)
	assert.Equal(t, int64(12), failed[0].Got)
	assert.Equal(t, int64(13), failed[0].Expected)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, "day 1 part 1 (in.txt): got 12, expected 13", result.Errors[0])
}

func TestRun_SolverError(t *testing.T) {
	// in.txt is a day 1 input, which does not parse as an almanac.
	path := writeScenario(t, `
name: broken
cases:
  - day: 5
    input: in.txt
    part1: 35
`)
	scenario, err := LoadScenario(path)
	require.NoError(t, err)

	result, err := Run(scenario)
	require.NoError(t, err)

	assert.False(t, result.Pass)
	require.Len(t, result.Outcomes, 1)
	assert.NotEmpty(t, result.Outcomes[0].Error)
	assert.False(t, result.Outcomes[0].Pass)
}

func TestRun_UnregisteredDay(t *testing.T) {
	path := writeScenario(t, `
name: future
cases:
  - day: 25
    input: in.txt
    part1: 1
`)
	scenario, err := LoadScenario(path)
	require.NoError(t, err)

	_, err = Run(scenario)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "day 25 is not registered")
}

func TestRun_NilScenario(t *testing.T) {
	_, err := Run(nil)
	assert.Error(t, err)
}

func TestRunWithGolden_Samples(t *testing.T) {
	scenario, err := LoadScenario(samplesPath())
	require.NoError(t, err)

	require.NoError(t, RunWithGolden(t, scenario))
}

func TestSnapshot_TrailingNewline(t *testing.T) {
	data, err := NewResult().Snapshot("empty")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"scenario\": \"empty\",\n  \"pass\": true,\n  \"outcomes\": []\n}\n", string(data))
}
