package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/aoc2023/internal/testutil"
)

func samplesPath() string {
	return testutil.ScenarioPath("samples.yaml")
}

// writeScenario writes content to dir/name along with an input file the
// scenario can point at.
func writeScenario(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "in.txt"), []byte("1abc2\n"), 0644))
	path := filepath.Join(dir, "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadScenario_Samples(t *testing.T) {
	scenario, err := LoadScenario(samplesPath())
	require.NoError(t, err)

	assert.Equal(t, "samples", scenario.Name)
	require.Len(t, scenario.Cases, 6)

	first := scenario.Cases[0]
	assert.Equal(t, 1, first.Day)
	assert.Equal(t, "../inputs/day1.txt", first.Input)
	assert.Equal(t, testutil.InputPath("day1.txt"), first.Path())

	want, ok := first.Expected(1)
	assert.True(t, ok)
	assert.Equal(t, int64(142), want)

	_, ok = scenario.Cases[1].Expected(1)
	assert.False(t, ok, "spelled case only checks part 2")
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestLoadScenario_MissingInput(t *testing.T) {
	path := writeScenario(t, `
name: x
cases:
  - day: 1
    input: missing.txt
    part1: 12
`)
	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input file not found")
}

func TestLoadScenario_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name: "unknown field",
			content: `
name: x
cases:
  - day: 1
    input: in.txt
    part_1: 12
`,
			wantErr: "failed to parse YAML",
		},
		{
			name: "missing name",
			content: `
cases:
  - day: 1
    input: in.txt
    part1: 12
`,
			wantErr: "invalid scenario",
		},
		{
			name:    "no cases",
			content: "name: x\ncases: []\n",
			wantErr: "invalid scenario",
		},
		{
			name: "day out of range",
			content: `
name: x
cases:
  - day: 26
    input: in.txt
    part1: 12
`,
			wantErr: "invalid scenario",
		},
		{
			name: "day zero",
			content: `
name: x
cases:
  - day: 0
    input: in.txt
    part1: 12
`,
			wantErr: "invalid scenario",
		},
		{
			name: "no expected part",
			content: `
name: x
cases:
  - day: 1
    input: in.txt
`,
			wantErr: "at least one of part1 or part2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScenario(writeScenario(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadScenario_AbsoluteInput(t *testing.T) {
	input := testutil.InputPath("day2.txt")

	path := writeScenario(t, "name: abs\ncases:\n  - day: 2\n    input: "+input+"\n    part1: 8\n")
	scenario, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, input, scenario.Cases[0].Path())
}
