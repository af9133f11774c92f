// Package puzzle holds the Advent of Code 2023 solvers.
//
// Each day registers itself from an init function. A solver reads the whole
// puzzle input from an io.Reader and returns a single Answer; malformed input
// is reported as a *ParseError rather than guessed around.
package puzzle

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Answer is the numeric result of one puzzle part.
type Answer = int64

// Part solves one half of a day's puzzle.
type Part func(r io.Reader) (Answer, error)

// Puzzle describes one registered day.
type Puzzle struct {
	Day   int
	Title string
	Part1 Part
	Part2 Part
}

// Solve runs part 1 or 2 against r.
func (p Puzzle) Solve(part int, r io.Reader) (Answer, error) {
	switch part {
	case 1:
		return p.Part1(r)
	case 2:
		return p.Part2(r)
	default:
		return 0, fmt.Errorf("day %d: no part %d", p.Day, part)
	}
}

var registry = map[int]Puzzle{}

func register(p Puzzle) {
	if _, dup := registry[p.Day]; dup {
		panic(fmt.Sprintf("puzzle: day %d registered twice", p.Day))
	}
	registry[p.Day] = p
}

// Lookup returns the puzzle registered for day.
func Lookup(day int) (Puzzle, bool) {
	p, ok := registry[day]
	return p, ok
}

// All returns every registered puzzle ordered by day.
func All() []Puzzle {
	out := make([]Puzzle, 0, len(registry))
	for _, p := range registry {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}

// line is one input line with its 1-based line number.
type line struct {
	num  int
	text string
}

// readLines returns the non-blank lines of r with trailing whitespace
// removed. keepBlank retains blank lines as empty entries.
func readLines(r io.Reader, keepBlank bool) ([]line, error) {
	var out []line
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		text := strings.TrimRight(sc.Text(), " \t\r")
		if text == "" && !keepBlank {
			continue
		}
		out = append(out, line{num: n, text: text})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return out, nil
}
