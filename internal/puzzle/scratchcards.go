package puzzle

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

func init() {
	register(Puzzle{
		Day:   4,
		Title: "Scratchcards",
		Part1: cardPoints,
		Part2: cardCount,
	})
}

// Card is one scratchcard.
type Card struct {
	ID      int64
	Winning []int64
	Chosen  []int64
}

// Matches counts the chosen numbers that are winning numbers.
func (c Card) Matches() int {
	win := make(map[int64]struct{}, len(c.Winning))
	for _, w := range c.Winning {
		win[w] = struct{}{}
	}
	n := 0
	for _, ch := range c.Chosen {
		if _, ok := win[ch]; ok {
			n++
		}
	}
	return n
}

// Points doubles for every match after the first.
func (c Card) Points() int64 {
	m := c.Matches()
	if m == 0 {
		return 0
	}
	return 1 << (m - 1)
}

// ParseCard parses "Card 1: 41 48 83 | 83 86  6".
func ParseCard(s string) (Card, error) {
	head, body, ok := strings.Cut(s, ":")
	if !ok {
		return Card{}, fmt.Errorf("missing ':'")
	}
	fields := strings.Fields(head)
	if len(fields) != 2 || fields[0] != "Card" {
		return Card{}, fmt.Errorf("bad card header %q", head)
	}
	id, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return Card{}, fmt.Errorf("bad card id: %w", err)
	}
	winning, chosen, ok := strings.Cut(body, "|")
	if !ok {
		return Card{}, fmt.Errorf("missing '|'")
	}

	c := Card{ID: id}
	if c.Winning, err = parseInts(winning); err != nil {
		return Card{}, fmt.Errorf("winning numbers: %w", err)
	}
	if c.Chosen, err = parseInts(chosen); err != nil {
		return Card{}, fmt.Errorf("chosen numbers: %w", err)
	}
	return c, nil
}

// parseInts parses whitespace-separated integers.
func parseInts(s string) ([]int64, error) {
	fields := strings.Fields(s)
	out := make([]int64, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func parseCards(r io.Reader) ([]Card, error) {
	lines, err := readLines(r, false)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, &ParseError{Day: 4, Err: ErrEmptyInput, Message: "no cards"}
	}
	cards := make([]Card, 0, len(lines))
	for _, l := range lines {
		c, err := ParseCard(l.text)
		if err != nil {
			return nil, parseErr(4, l, err, "parse card")
		}
		cards = append(cards, c)
	}
	return cards, nil
}

func cardPoints(r io.Reader) (Answer, error) {
	cards, err := parseCards(r)
	if err != nil {
		return 0, err
	}
	var total Answer
	for _, c := range cards {
		total += c.Points()
	}
	return total, nil
}

// CopiesWon returns how many of each card end up held. A card with m matches
// wins one copy of each of the next m cards for every copy of it held.
func CopiesWon(cards []Card) []int64 {
	copies := make([]int64, len(cards))
	for i := range copies {
		copies[i] = 1
	}
	for i, c := range cards {
		m := c.Matches()
		for j := i + 1; j <= i+m && j < len(cards); j++ {
			copies[j] += copies[i]
		}
	}
	return copies
}

func cardCount(r io.Reader) (Answer, error) {
	cards, err := parseCards(r)
	if err != nil {
		return 0, err
	}
	return sum(CopiesWon(cards)), nil
}
