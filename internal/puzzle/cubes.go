package puzzle

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

func init() {
	register(Puzzle{
		Day:   2,
		Title: "Cube Conundrum",
		Part1: possibleGamesSum,
		Part2: minimumPowerSum,
	})
}

// CubeSet counts cubes of each colour.
type CubeSet struct {
	Red, Green, Blue int64
}

// Bag is the load the elf reveals for part 1.
var Bag = CubeSet{Red: 12, Green: 13, Blue: 14}

// Fits reports whether every colour of s is within limit.
func (s CubeSet) Fits(limit CubeSet) bool {
	return s.Red <= limit.Red && s.Green <= limit.Green && s.Blue <= limit.Blue
}

// Power is the product of the three counts.
func (s CubeSet) Power() int64 {
	return s.Red * s.Green * s.Blue
}

// Game is one recorded game: its id and the draws shown.
type Game struct {
	ID    int64
	Draws []CubeSet
}

// Possible reports whether every draw could come from a bag holding limit.
func (g Game) Possible(limit CubeSet) bool {
	for _, d := range g.Draws {
		if !d.Fits(limit) {
			return false
		}
	}
	return true
}

// MinimumSet is the fewest cubes of each colour that allow every draw.
func (g Game) MinimumSet() CubeSet {
	var m CubeSet
	for _, d := range g.Draws {
		m.Red = max(m.Red, d.Red)
		m.Green = max(m.Green, d.Green)
		m.Blue = max(m.Blue, d.Blue)
	}
	return m
}

// ParseGame parses "Game 1: 3 blue, 4 red; 1 red, 2 green".
func ParseGame(s string) (Game, error) {
	head, body, ok := strings.Cut(s, ":")
	if !ok {
		return Game{}, fmt.Errorf("missing ':'")
	}
	fields := strings.Fields(head)
	if len(fields) != 2 || fields[0] != "Game" {
		return Game{}, fmt.Errorf("bad game header %q", head)
	}
	id, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return Game{}, fmt.Errorf("bad game id: %w", err)
	}

	g := Game{ID: id}
	for _, draw := range strings.Split(body, ";") {
		var set CubeSet
		for _, item := range strings.Split(draw, ",") {
			parts := strings.Fields(item)
			if len(parts) != 2 {
				return Game{}, fmt.Errorf("bad draw %q", strings.TrimSpace(item))
			}
			n, err := strconv.ParseInt(parts[0], 10, 64)
			if err != nil {
				return Game{}, fmt.Errorf("bad cube count: %w", err)
			}
			switch parts[1] {
			case "red":
				set.Red += n
			case "green":
				set.Green += n
			case "blue":
				set.Blue += n
			default:
				return Game{}, fmt.Errorf("unknown colour %q", parts[1])
			}
		}
		g.Draws = append(g.Draws, set)
	}
	return g, nil
}

func parseGames(r io.Reader) ([]Game, error) {
	lines, err := readLines(r, false)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, &ParseError{Day: 2, Err: ErrEmptyInput, Message: "no games"}
	}
	games := make([]Game, 0, len(lines))
	for _, l := range lines {
		g, err := ParseGame(l.text)
		if err != nil {
			return nil, parseErr(2, l, err, "parse game")
		}
		games = append(games, g)
	}
	return games, nil
}

func possibleGamesSum(r io.Reader) (Answer, error) {
	games, err := parseGames(r)
	if err != nil {
		return 0, err
	}
	var sum Answer
	for _, g := range games {
		if g.Possible(Bag) {
			sum += g.ID
		}
	}
	return sum, nil
}

func minimumPowerSum(r io.Reader) (Answer, error) {
	games, err := parseGames(r)
	if err != nil {
		return 0, err
	}
	var sum Answer
	for _, g := range games {
		sum += g.MinimumSet().Power()
	}
	return sum, nil
}
