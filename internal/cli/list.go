package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/aoc2023/internal/puzzle"
)

// PuzzleInfo describes a registered puzzle.
type PuzzleInfo struct {
	Day   int    `json:"day"`
	Title string `json:"title"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List solved days",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			all := puzzle.All()
			infos := make([]PuzzleInfo, len(all))
			for i, p := range all {
				infos[i] = PuzzleInfo{Day: p.Day, Title: p.Title}
			}

			if rootOpts.Format == "json" {
				return newFormatter(rootOpts, cmd).Success(infos)
			}
			for _, info := range infos {
				fmt.Fprintf(cmd.OutOrStdout(), "day %2d  %s\n", info.Day, info.Title)
			}
			return nil
		},
	}
}
