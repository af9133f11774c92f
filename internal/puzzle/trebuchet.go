package puzzle

import (
	"io"
	"strings"
)

func init() {
	register(Puzzle{
		Day:   1,
		Title: "Trebuchet?!",
		Part1: func(r io.Reader) (Answer, error) { return calibrate(r, false) },
		Part2: func(r io.Reader) (Answer, error) { return calibrate(r, true) },
	})
}

// digitWords maps spelled digits to their value by index.
var digitWords = [...]string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// calibrate sums the calibration value of every line.
func calibrate(r io.Reader, spelled bool) (Answer, error) {
	lines, err := readLines(r, false)
	if err != nil {
		return 0, err
	}
	if len(lines) == 0 {
		return 0, &ParseError{Day: 1, Err: ErrEmptyInput, Message: "no calibration lines"}
	}

	var sum Answer
	for _, l := range lines {
		v, ok := calibrationValue(l.text, spelled)
		if !ok {
			return 0, parseErr(1, l, nil, "no digit in %q", l.text)
		}
		sum += v
	}
	return sum, nil
}

// calibrationValue combines the first and last digit of s into a two-digit
// number. Spelled words may overlap ("twone" reads as 2 then 1).
func calibrationValue(s string, spelled bool) (Answer, bool) {
	first, last := -1, -1
	for i := 0; i < len(s); i++ {
		d := digitAt(s, i, spelled)
		if d < 0 {
			continue
		}
		if first < 0 {
			first = d
		}
		last = d
	}
	if first < 0 {
		return 0, false
	}
	return Answer(first*10 + last), true
}

func digitAt(s string, i int, spelled bool) int {
	if c := s[i]; c >= '0' && c <= '9' {
		return int(c - '0')
	}
	if !spelled {
		return -1
	}
	for n, w := range digitWords {
		if strings.HasPrefix(s[i:], w) {
			return n + 1
		}
	}
	return -1
}
