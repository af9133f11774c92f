package puzzle

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/aoc2023/internal/testutil"
)

func solveFile(t *testing.T, day, part int, name string) (Answer, error) {
	t.Helper()
	p, ok := Lookup(day)
	require.True(t, ok, "day %d not registered", day)

	f, err := os.Open(testutil.InputPath(name))
	require.NoError(t, err)
	defer f.Close()

	return p.Solve(part, f)
}

func TestSampleAnswers(t *testing.T) {
	tests := []struct {
		day, part int
		input     string
		want      Answer
	}{
		{1, 1, "day1.txt", 142},
		{1, 2, "day1.txt", 142},
		{1, 2, "day1-spelled.txt", 281},
		{2, 1, "day2.txt", 8},
		{2, 2, "day2.txt", 2286},
		{3, 1, "day3.txt", 4361},
		{3, 2, "day3.txt", 467835},
		{4, 1, "day4.txt", 13},
		{4, 2, "day4.txt", 30},
		{5, 1, "day5.txt", 35},
		{5, 2, "day5.txt", 46},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := solveFile(t, tt.day, tt.part, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "day %d part %d", tt.day, tt.part)
		})
	}
}

func TestRegistry(t *testing.T) {
	all := All()
	require.Len(t, all, 5)
	for i, p := range all {
		assert.Equal(t, i+1, p.Day)
		assert.NotEmpty(t, p.Title)
		assert.NotNil(t, p.Part1)
		assert.NotNil(t, p.Part2)
	}

	_, ok := Lookup(25)
	assert.False(t, ok)
}

func TestSolve_UnknownPart(t *testing.T) {
	p, ok := Lookup(1)
	require.True(t, ok)

	_, err := p.Solve(3, strings.NewReader("1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no part 3")
}

func TestEmptyInputIsParseError(t *testing.T) {
	for _, p := range All() {
		for part := 1; part <= 2; part++ {
			_, err := p.Solve(part, strings.NewReader("\n\n"))
			require.Error(t, err, "day %d part %d", p.Day, part)
			assert.True(t, IsParseError(err), "day %d part %d: %v", p.Day, part, err)
			assert.ErrorIs(t, err, ErrEmptyInput)
		}
	}
}

func TestCalibrationValue(t *testing.T) {
	tests := []struct {
		in      string
		spelled bool
		want    Answer
	}{
		{"treb7uchet", false, 77},
		{"a1b2c3d4e5f", false, 15},
		{"twone", true, 21},
		{"eighthree", true, 83},
		{"sevenine", true, 79},
		{"zoneight234", true, 14},
		{"oneight", false, 0},
	}
	for _, tt := range tests {
		got, ok := calibrationValue(tt.in, tt.spelled)
		if tt.want == 0 {
			assert.False(t, ok, tt.in)
			continue
		}
		require.True(t, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestCalibrate_LineWithoutDigit(t *testing.T) {
	_, err := solveFile(t, 1, 1, "day1-spelled.txt")
	require.Error(t, err)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 1, pe.Day)
	assert.Equal(t, 2, pe.Line)
	assert.Contains(t, err.Error(), "eightwothree")
}

func TestParseGame(t *testing.T) {
	g, err := ParseGame("Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red")
	require.NoError(t, err)
	assert.Equal(t, int64(3), g.ID)
	require.Len(t, g.Draws, 3)
	assert.Equal(t, CubeSet{Red: 20, Green: 8, Blue: 6}, g.Draws[0])
	assert.False(t, g.Possible(Bag))
	assert.Equal(t, CubeSet{Red: 20, Green: 13, Blue: 6}, g.MinimumSet())
	assert.Equal(t, int64(1560), g.MinimumSet().Power())

	for _, bad := range []string{
		"Game 1 3 blue",
		"Round 1: 3 blue",
		"Game x: 3 blue",
		"Game 1: 3 purple",
		"Game 1: blue",
		"Game 1: three blue",
	} {
		_, err := ParseGame(bad)
		assert.Error(t, err, bad)
	}
}

func TestSchematic(t *testing.T) {
	f, err := os.Open(testutil.InputPath("day3.txt"))
	require.NoError(t, err)
	defer f.Close()

	s, err := ParseSchematic(f)
	require.NoError(t, err)

	// 114 and 58 touch no symbol.
	assert.NotContains(t, s.PartNumbers(), int64(114))
	assert.NotContains(t, s.PartNumbers(), int64(58))
	assert.Len(t, s.PartNumbers(), 8)
	assert.ElementsMatch(t, []int64{16345, 451490}, s.GearRatios())
}

func TestSchematic_NumbersAtEdges(t *testing.T) {
	s, err := ParseSchematic(strings.NewReader("12*\n...\n..7\n#.."))
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{12}, s.PartNumbers())
	assert.Empty(t, s.GearRatios())

	s, err = ParseSchematic(strings.NewReader("2*3"))
	require.NoError(t, err)
	assert.Equal(t, []int64{6}, s.GearRatios())
}

func TestCard(t *testing.T) {
	c, err := ParseCard("Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53")
	require.NoError(t, err)
	assert.Equal(t, int64(1), c.ID)
	assert.Equal(t, 4, c.Matches())
	assert.Equal(t, int64(8), c.Points())

	none, err := ParseCard("Card 6: 31 18 | 74 77")
	require.NoError(t, err)
	assert.Equal(t, int64(0), none.Points())

	for _, bad := range []string{"Card 1 41 | 41", "Card 1: 41 41", "Card 1: 4x | 1", "Deck 1: 1 | 1"} {
		_, err := ParseCard(bad)
		assert.Error(t, err, bad)
	}
}

func TestCopiesWon(t *testing.T) {
	f, err := os.Open(testutil.InputPath("day4.txt"))
	require.NoError(t, err)
	defer f.Close()

	cards, err := parseCards(f)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 4, 8, 14, 1}, CopiesWon(cards))
}

func TestCopiesWon_StopsAtLastCard(t *testing.T) {
	cards := []Card{
		{ID: 1, Winning: []int64{1, 2, 3}, Chosen: []int64{1, 2, 3}},
		{ID: 2},
	}
	assert.Equal(t, []int64{1, 2}, CopiesWon(cards))
}
