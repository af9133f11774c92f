package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputPath_Exists(t *testing.T) {
	for _, name := range []string{"day1.txt", "day5.txt"} {
		_, err := os.Stat(InputPath(name))
		assert.NoError(t, err, "sample %s", name)
	}
}

func TestScenarioPath(t *testing.T) {
	_, err := os.Stat(ScenarioPath("samples.yaml"))
	assert.NoError(t, err)

	info, err := os.Stat(ScenarioPath())
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestReadInput(t *testing.T) {
	data := ReadInput(t, "day5.txt")
	assert.True(t, len(data) > 0)
	assert.Contains(t, string(data), "seeds: 79 14 55 13")
}

func TestSequentialIDs(t *testing.T) {
	gen := SequentialIDs("run", 3)

	assert.Equal(t, "run-1", gen.Generate())
	assert.Equal(t, "run-2", gen.Generate())
	assert.Equal(t, "run-3", gen.Generate())
	assert.Panics(t, func() { gen.Generate() })
}
