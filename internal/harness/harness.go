package harness

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/roach88/aoc2023/internal/puzzle"
)

// Harness runs scenarios against the registered solvers.
type Harness struct {
	logger *slog.Logger
}

// New returns a Harness that logs to logger. A nil logger discards logs.
func New(logger *slog.Logger) *Harness {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Harness{logger: logger}
}

// Run executes scenario with a silent Harness.
func Run(scenario *Scenario) (*Result, error) {
	return New(nil).Run(scenario)
}

// Run solves every expected part of every case and compares answers.
//
// A wrong answer or a solver error fails the result but does not stop the
// run. An unreadable input file or an unregistered day is returned as an
// error, since the scenario itself is broken.
func (h *Harness) Run(scenario *Scenario) (*Result, error) {
	if scenario == nil {
		return nil, fmt.Errorf("nil scenario")
	}

	result := NewResult()
	for i, c := range scenario.Cases {
		p, ok := puzzle.Lookup(c.Day)
		if !ok {
			return nil, fmt.Errorf("case %d: day %d is not registered", i, c.Day)
		}

		data, err := os.ReadFile(c.Path())
		if err != nil {
			return nil, fmt.Errorf("case %d: failed to read input: %w", i, err)
		}

		for part := 1; part <= 2; part++ {
			want, ok := c.Expected(part)
			if !ok {
				continue
			}
			result.AddOutcome(h.solve(p, part, c.Input, data, want))
		}
	}

	h.logger.Info("scenario finished",
		"scenario", scenario.Name,
		"outcomes", len(result.Outcomes),
		"pass", result.Pass,
	)
	return result, nil
}

func (h *Harness) solve(p puzzle.Puzzle, part int, input string, data []byte, want int64) Outcome {
	o := Outcome{
		Day:      p.Day,
		Part:     part,
		Input:    input,
		Expected: want,
	}

	got, err := p.Solve(part, bytes.NewReader(data))
	if err != nil {
		o.Error = err.Error()
		h.logger.Debug("solver failed", "day", p.Day, "part", part, "input", input, "error", err)
		return o
	}

	o.Got = got
	o.Pass = got == want
	h.logger.Debug("case solved", "day", p.Day, "part", part, "input", input, "got", got, "pass", o.Pass)
	return o
}
