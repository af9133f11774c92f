package puzzle

import (
	"fmt"
	"io"
	"strings"

	"github.com/roach88/aoc2023/internal/interval"
)

func init() {
	register(Puzzle{
		Day:   5,
		Title: "If You Give A Seed A Fertilizer",
		Part1: lowestSeedLocation,
		Part2: lowestSeedRangeLocation,
	})
}

// Almanac is the parsed day 5 input: the seed line and the ordered
// conversion stages from seed to location.
type Almanac struct {
	Seeds  []int64
	Stages interval.Pipeline
}

// ParseAlmanac reads
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
// Each map line is "destination source length". Maps are applied in the
// order they appear.
func ParseAlmanac(r io.Reader) (*Almanac, error) {
	lines, err := readLines(r, false)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, &ParseError{Day: 5, Err: ErrEmptyInput, Message: "no almanac"}
	}

	first := lines[0]
	rest, ok := strings.CutPrefix(first.text, "seeds:")
	if !ok {
		return nil, parseErr(5, first, nil, "expected seeds line, got %q", first.text)
	}
	seeds, err := parseInts(rest)
	if err != nil {
		return nil, parseErr(5, first, err, "bad seed")
	}
	a := &Almanac{Seeds: seeds}

	var cur *interval.Stage
	for _, l := range lines[1:] {
		if header, ok := strings.CutSuffix(l.text, " map:"); ok {
			from, to, ok := strings.Cut(header, "-to-")
			if !ok || from == "" || to == "" {
				return nil, parseErr(5, l, nil, "bad map header %q", l.text)
			}
			if n := len(a.Stages); n > 0 && a.Stages[n-1].To != from {
				return nil, parseErr(5, l, nil, "map %s does not continue from %s", header, a.Stages[n-1].To)
			}
			a.Stages = append(a.Stages, interval.Stage{From: from, To: to, Table: &interval.Table{}})
			cur = &a.Stages[len(a.Stages)-1]
			continue
		}
		if cur == nil {
			return nil, parseErr(5, l, nil, "map entry before any map header")
		}
		nums, err := parseInts(l.text)
		if err != nil {
			return nil, parseErr(5, l, err, "bad map entry")
		}
		if len(nums) != 3 {
			return nil, parseErr(5, l, nil, "map entry needs 3 numbers, got %d", len(nums))
		}
		rule, err := interval.NewRule(nums[0], nums[1], nums[2])
		if err != nil {
			return nil, parseErr(5, l, err, "bad map entry")
		}
		if err := cur.Table.Insert(rule); err != nil {
			return nil, parseErr(5, l, err, "map %s", cur.Name())
		}
	}
	return a, nil
}

// SeedRanges reads the seed line as (start, length) pairs.
func (a *Almanac) SeedRanges() ([]interval.Interval, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, &ParseError{Day: 5, Line: 1, Message: fmt.Sprintf("seed ranges need pairs, got %d numbers", len(a.Seeds))}
	}
	out := make([]interval.Interval, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		iv, err := interval.Span(a.Seeds[i], a.Seeds[i+1])
		if err != nil {
			return nil, &ParseError{Day: 5, Line: 1, Message: fmt.Sprintf("seed range %d", i/2+1), Err: err}
		}
		out = append(out, iv)
	}
	return out, nil
}

// SeedPoints returns every seed as a one-value interval. A seed of
// math.MaxInt64 has no representable interval and is a parse error.
func (a *Almanac) SeedPoints() ([]interval.Interval, error) {
	out := make([]interval.Interval, 0, len(a.Seeds))
	for i, s := range a.Seeds {
		iv, err := interval.New(s, s+1)
		if err != nil {
			return nil, &ParseError{Day: 5, Line: 1, Message: fmt.Sprintf("seed %d", i+1), Err: err}
		}
		out = append(out, iv)
	}
	return out, nil
}

// LowestLocation maps each seed value to its location and returns the
// smallest.
func (a *Almanac) LowestLocation() (Answer, error) {
	if len(a.Seeds) == 0 {
		return 0, &ParseError{Day: 5, Line: 1, Err: ErrEmptyInput, Message: "no seeds"}
	}
	lowest := a.Stages.ApplyValue(a.Seeds[0])
	for _, s := range a.Seeds[1:] {
		lowest = min(lowest, a.Stages.ApplyValue(s))
	}
	return lowest, nil
}

// LowestRangeLocation maps the seed ranges to location ranges and returns
// the smallest location start.
func (a *Almanac) LowestRangeLocation() (Answer, error) {
	seeds, err := a.SeedRanges()
	if err != nil {
		return 0, err
	}
	out, err := a.Stages.Apply(seeds)
	if err != nil {
		return 0, err
	}
	lowest, ok := interval.MinStart(out)
	if !ok {
		return 0, &ParseError{Day: 5, Line: 1, Err: ErrEmptyInput, Message: "no seed ranges"}
	}
	return lowest, nil
}

// StageSet is the working set of intervals after a named stage.
type StageSet struct {
	Category  string              `json:"category"`
	Intervals []interval.Interval `json:"intervals"`
}

// Trace returns the initial seed set followed by the working set after every
// stage. ranges selects the part 2 reading of the seed line.
func (a *Almanac) Trace(ranges bool) ([]StageSet, error) {
	var seeds []interval.Interval
	var err error
	if ranges {
		seeds, err = a.SeedRanges()
	} else {
		seeds, err = a.SeedPoints()
	}
	if err != nil {
		return nil, err
	}
	sets, err := a.Stages.Trace(seeds)
	if err != nil {
		return nil, err
	}

	first := "seed"
	if len(a.Stages) > 0 {
		first = a.Stages[0].From
	}
	out := make([]StageSet, 0, len(sets)+1)
	out = append(out, StageSet{Category: first, Intervals: seeds})
	for i, s := range sets {
		out = append(out, StageSet{Category: a.Stages[i].To, Intervals: s})
	}
	return out, nil
}

func lowestSeedLocation(r io.Reader) (Answer, error) {
	a, err := ParseAlmanac(r)
	if err != nil {
		return 0, err
	}
	return a.LowestLocation()
}

func lowestSeedRangeLocation(r io.Reader) (Answer, error) {
	a, err := ParseAlmanac(r)
	if err != nil {
		return 0, err
	}
	return a.LowestRangeLocation()
}
