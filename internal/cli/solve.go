package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/aoc2023/internal/ident"
	"github.com/roach88/aoc2023/internal/puzzle"
	"github.com/roach88/aoc2023/internal/store"
)

// SolveOptions holds flags for the solve command.
type SolveOptions struct {
	*RootOptions
	Part1    bool
	Part2    bool
	Input    string
	Database string

	// IDGenerator overrides run ID generation (for testing).
	// If nil, defaults to UUIDv7Generator.
	IDGenerator ident.Generator
}

// PartAnswer is the answer to one part.
type PartAnswer struct {
	Part   int   `json:"part"`
	Answer int64 `json:"answer"`

	// RunID is set when the answer was recorded.
	RunID string `json:"run_id,omitempty"`

	// Previous is the last answer recorded for the same input, if any.
	Previous *int64 `json:"previous,omitempty"`
}

// SolveResult is the output of the solve command.
type SolveResult struct {
	Day         int          `json:"day"`
	Title       string       `json:"title"`
	Input       string       `json:"input"`
	InputDigest string       `json:"input_digest"`
	Answers     []PartAnswer `json:"answers"`
}

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	return newSolveCommand(&SolveOptions{RootOptions: rootOpts})
}

func newSolveCommand(opts *SolveOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve <day>",
		Short: "Solve a day's puzzle",
		Long: `Solve one or both parts of a day's puzzle.

Reads the puzzle input (input.txt by default) and prints the answer to each
requested part. With neither --part1 nor --part2 both parts are solved.

With --db every answer is appended to the run history, keyed by a digest of
the input. If an earlier run on the same input recorded a different answer,
a warning is logged.

Examples:
  aoc solve 5
  aoc solve 5 -s -i day5.txt
  aoc solve 1 --db ./runs.db --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVarP(&opts.Part1, "part1", "f", false, "solve part 1")
	cmd.Flags().BoolVarP(&opts.Part2, "part2", "s", false, "solve part 2")
	cmd.Flags().StringVarP(&opts.Input, "input", "i", "input.txt", "puzzle input file")
	cmd.Flags().StringVar(&opts.Database, "db", "", "record answers in this SQLite database")

	return cmd
}

func runSolve(opts *SolveOptions, dayArg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)
	logger := newLogger(opts.RootOptions, cmd.ErrOrStderr())

	day, err := strconv.Atoi(dayArg)
	if err != nil {
		return fail(formatter, ExitCommandError, ErrCodeUnknownDay, fmt.Sprintf("invalid day %q", dayArg), nil)
	}
	p, ok := puzzle.Lookup(day)
	if !ok {
		return fail(formatter, ExitCommandError, ErrCodeUnknownDay, fmt.Sprintf("day %d is not solved", day), nil)
	}

	data, err := os.ReadFile(opts.Input)
	if err != nil {
		return fail(formatter, ExitCommandError, ErrCodeNotFound, fmt.Sprintf("cannot read input %s", opts.Input), err)
	}
	logger.Debug("input opened", "path", opts.Input, "bytes", len(data))

	parts := selectedParts(opts.Part1, opts.Part2)
	formatter.VerboseLog("day %d (%s), parts %v", p.Day, p.Title, parts)
	result := SolveResult{
		Day:         p.Day,
		Title:       p.Title,
		Input:       opts.Input,
		InputDigest: ident.InputDigest(data),
		Answers:     make([]PartAnswer, 0, len(parts)),
	}

	for _, part := range parts {
		answer, err := p.Solve(part, bytes.NewReader(data))
		if err != nil {
			code := ErrCodeGeneric
			if puzzle.IsParseError(err) || errors.Is(err, puzzle.ErrEmptyInput) {
				code = ErrCodeParse
			}
			return fail(formatter, ExitCommandError, code, fmt.Sprintf("day %d part %d failed", day, part), err)
		}
		logger.Debug("part solved", "day", day, "part", part, "answer", answer)
		result.Answers = append(result.Answers, PartAnswer{Part: part, Answer: answer})
	}

	if opts.Database != "" {
		if err := recordRuns(cmd.Context(), opts, logger, &result); err != nil {
			return fail(formatter, ExitCommandError, ErrCodeStore, "failed to record runs", err)
		}
	}

	if opts.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), result)
	}

	w := cmd.OutOrStdout()
	for _, a := range result.Answers {
		fmt.Fprintf(w, "part %d: %d\n", a.Part, a.Answer)
	}
	return nil
}

// selectedParts returns the parts to solve; neither flag means both.
func selectedParts(part1, part2 bool) []int {
	switch {
	case part1 && !part2:
		return []int{1}
	case part2 && !part1:
		return []int{2}
	default:
		return []int{1, 2}
	}
}

// recordRuns appends every answer in result to the run history and fills in
// run IDs and previously recorded answers.
func recordRuns(ctx context.Context, opts *SolveOptions, logger *slog.Logger, result *SolveResult) error {
	if ctx == nil {
		ctx = context.Background()
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return err
	}
	defer st.Close()

	gen := opts.IDGenerator
	if gen == nil {
		gen = ident.UUIDv7Generator{}
	}

	for i := range result.Answers {
		a := &result.Answers[i]

		prev, found, err := st.LatestAnswer(ctx, result.Day, a.Part, result.InputDigest)
		if err != nil {
			return err
		}
		if found {
			a.Previous = &prev
			if prev != a.Answer {
				logger.Warn("answer changed since last run",
					"day", result.Day, "part", a.Part, "previous", prev, "answer", a.Answer)
			}
		}

		run := store.Run{
			ID:          gen.Generate(),
			Day:         result.Day,
			Part:        a.Part,
			InputDigest: result.InputDigest,
			Answer:      a.Answer,
		}
		seq, err := st.WriteRun(ctx, run)
		if err != nil {
			return err
		}
		a.RunID = run.ID
		logger.Info("run recorded", "id", run.ID, "seq", seq, "day", run.Day, "part", run.Part)
	}
	return nil
}
