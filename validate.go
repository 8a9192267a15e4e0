package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/decker502/vnplayer/pkg/script"
)

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <script>",
		Short: "Check a story script without opening a window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runValidate(cmd.OutOrStdout(), args[0])
		},
	}
}

func runValidate(out io.Writer, path string) error {
	s, err := script.Load(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	if err == nil {
		fmt.Fprintf(out, "%s: %d actions, no issues found.\n", path, s.Len())
		return nil
	}

	issues := script.RowErrors(err)
	if len(issues) == 0 {
		return err
	}

	fmt.Fprintf(out, "Errors (%d):\n", len(issues))
	printIssues(out, issues)
	return fmt.Errorf("validation found errors")
}

func printIssues(out io.Writer, issues []*script.RowError) {
	for _, issue := range issues {
		location := "header"
		if issue.Row >= 0 {
			location = fmt.Sprintf("row %d", issue.Row)
		}
		if issue.Column != "" {
			location = fmt.Sprintf("%s [%s]", location, issue.Column)
		}
		fmt.Fprintf(out, "  - %s: %v\n", location, issue.Err)
	}
}
