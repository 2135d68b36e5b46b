package cmd

import (
	"fmt"
	"io"

	"github.com/encodeous/routesim/state"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check topofile messagefile changesfile",
		Short: "Reports every input line a simulation would skip",
		Long: `Parses the three input files the same way a simulation does, and lists every line that
would be skipped. Exits with a non-zero status if any line is malformed.`,
		Args:    cobra.ExactArgs(3),
		GroupID: "input",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			out := cmd.OutOrStdout()

			bad := 0
			bad += report(out, "topology", args[0], state.ReadTopologyFile)
			bad += report(out, "messages", args[1], state.ReadMessagesFile)
			bad += report(out, "changes", args[2], state.ReadChangesFile)
			if bad > 0 {
				return fmt.Errorf("found %d malformed lines", bad)
			}
			return nil
		},
	}
}

func report[T any](out io.Writer, kind, path string, read func(string) ([]T, []state.LineIssue, error)) int {
	records, issues, err := read(path)
	if err != nil && len(records) == 0 && len(issues) == 0 {
		fmt.Fprintf(out, "%s %s: unreadable, contributes no records: %v\n", kind, path, err)
		return 0
	}
	fmt.Fprintf(out, "%s %s: %d records, %d malformed\n", kind, path, len(records), len(issues))
	if err != nil {
		fmt.Fprintf(out, "  read stopped early: %v\n", err)
	}
	for _, issue := range issues {
		fmt.Fprintf(out, "  %v\n", issue)
	}
	return len(issues)
}
