package puzzle

import (
	"io"
	"strconv"
)

func init() {
	register(Puzzle{
		Day:   3,
		Title: "Gear Ratios",
		Part1: partNumberSum,
		Part2: gearRatioSum,
	})
}

// partNumber is a run of digits in the schematic.
type partNumber struct {
	value    int64
	row, col int
	width    int
}

// touches reports whether the cell (row, col) is in the 8-neighbourhood of n.
func (n partNumber) touches(row, col int) bool {
	return row >= n.row-1 && row <= n.row+1 && col >= n.col-1 && col <= n.col+n.width
}

// Schematic is the engine schematic grid.
type Schematic struct {
	rows    []string
	numbers []partNumber
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isSymbol(c byte) bool { return c != '.' && !isDigit(c) }

// ParseSchematic reads the grid and indexes its numbers.
func ParseSchematic(r io.Reader) (*Schematic, error) {
	lines, err := readLines(r, false)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, &ParseError{Day: 3, Err: ErrEmptyInput, Message: "no schematic rows"}
	}

	s := &Schematic{}
	for row, l := range lines {
		s.rows = append(s.rows, l.text)
		for col := 0; col < len(l.text); {
			if !isDigit(l.text[col]) {
				col++
				continue
			}
			end := col
			for end < len(l.text) && isDigit(l.text[end]) {
				end++
			}
			v, err := strconv.ParseInt(l.text[col:end], 10, 64)
			if err != nil {
				return nil, parseErr(3, l, err, "bad number at column %d", col+1)
			}
			s.numbers = append(s.numbers, partNumber{value: v, row: row, col: col, width: end - col})
			col = end
		}
	}
	return s, nil
}

func (s *Schematic) at(row, col int) (byte, bool) {
	if row < 0 || row >= len(s.rows) || col < 0 || col >= len(s.rows[row]) {
		return 0, false
	}
	return s.rows[row][col], true
}

// PartNumbers returns every number adjacent to a symbol, each once.
func (s *Schematic) PartNumbers() []int64 {
	var out []int64
	for _, n := range s.numbers {
		if s.nearSymbol(n) {
			out = append(out, n.value)
		}
	}
	return out
}

func (s *Schematic) nearSymbol(n partNumber) bool {
	for row := n.row - 1; row <= n.row+1; row++ {
		for col := n.col - 1; col <= n.col+n.width; col++ {
			if c, ok := s.at(row, col); ok && isSymbol(c) {
				return true
			}
		}
	}
	return false
}

// GearRatios returns the product of the two numbers next to each '*' that
// touches exactly two numbers.
func (s *Schematic) GearRatios() []int64 {
	var out []int64
	for row, text := range s.rows {
		for col := 0; col < len(text); col++ {
			if text[col] != '*' {
				continue
			}
			var adj []int64
			for _, n := range s.numbers {
				if n.touches(row, col) {
					adj = append(adj, n.value)
				}
			}
			if len(adj) == 2 {
				out = append(out, adj[0]*adj[1])
			}
		}
	}
	return out
}

func sum(vs []int64) Answer {
	var total Answer
	for _, v := range vs {
		total += v
	}
	return total
}

func partNumberSum(r io.Reader) (Answer, error) {
	s, err := ParseSchematic(r)
	if err != nil {
		return 0, err
	}
	return sum(s.PartNumbers()), nil
}

func gearRatioSum(r io.Reader) (Answer, error) {
	s, err := ParseSchematic(r)
	if err != nil {
		return 0, err
	}
	return sum(s.GearRatios()), nil
}
