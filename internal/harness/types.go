package harness

import (
	"encoding/json"
	"fmt"
)

// Outcome is the result of checking one part of one case.
type Outcome struct {
	Day      int    `json:"day"`
	Part     int    `json:"part"`
	Input    string `json:"input"`
	Expected int64  `json:"expected"`
	Got      int64  `json:"got"`
	Pass     bool   `json:"pass"`

	// Error is the solver error, if the solver failed.
	Error string `json:"error,omitempty"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true when every outcome passed.
	Pass bool `json:"pass"`

	// Outcomes are in case order, part 1 before part 2.
	Outcomes []Outcome `json:"outcomes"`

	// Errors describes each failed outcome. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:     true,
		Outcomes: []Outcome{},
		Errors:   []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddOutcome records o, adding an error when it did not pass.
func (r *Result) AddOutcome(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
	switch {
	case o.Error != "":
		r.AddError(fmt.Sprintf("day %d part %d (%s): %s", o.Day, o.Part, o.Input, o.Error))
	case !o.Pass:
		r.AddError(fmt.Sprintf("day %d part %d (%s): got %d, expected %d", o.Day, o.Part, o.Input, o.Got, o.Expected))
	}
}

// Failed returns the outcomes that did not pass.
func (r *Result) Failed() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if !o.Pass {
			out = append(out, o)
		}
	}
	return out
}

// Snapshot is the golden-file form of a Result.
type Snapshot struct {
	Scenario string    `json:"scenario"`
	Pass     bool      `json:"pass"`
	Outcomes []Outcome `json:"outcomes"`
}

// Snapshot renders r as indented JSON with a trailing newline.
func (r *Result) Snapshot(scenarioName string) ([]byte, error) {
	data, err := json.MarshalIndent(Snapshot{
		Scenario: scenarioName,
		Pass:     r.Pass,
		Outcomes: r.Outcomes,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return append(data, '\n'), nil
}
