package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/aoc2023/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Database string
	Day      int // 0 lists every day
}

// HistoryResult holds the runs listed by the history command.
type HistoryResult struct {
	Runs  []store.Run `json:"runs"`
	Total int         `json:"total"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded answers",
		Long: `List answers recorded by "aoc solve --db", oldest first.

Examples:
  aoc history --db ./runs.db
  aoc history --db ./runs.db --day 5 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().IntVar(&opts.Day, "day", 0, "only list runs for this day")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Opening would create an empty database; history never should.
	if _, err := os.Stat(opts.Database); err != nil {
		return fail(formatter, ExitCommandError, ErrCodeNotFound, "database not found", err)
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return fail(formatter, ExitCommandError, ErrCodeStore, "failed to open database", err)
	}
	defer st.Close()

	runs, err := st.ListRuns(ctx, opts.Day)
	if err != nil {
		return fail(formatter, ExitCommandError, ErrCodeStore, "failed to list runs", err)
	}

	if opts.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), HistoryResult{Runs: runs, Total: len(runs)})
	}

	w := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return nil
	}
	for _, r := range runs {
		fmt.Fprintf(w, "[%d] day %d part %d: %d  input %s\n", r.Seq, r.Day, r.Part, r.Answer, truncateDigest(r.InputDigest))
		if opts.Verbose {
			fmt.Fprintf(w, "      id %s\n", r.ID)
		}
	}
	return nil
}

// truncateDigest shortens a digest for display.
func truncateDigest(d string) string {
	if len(d) > 12 {
		return d[:12]
	}
	return d
}
