package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/swan-lang/swan/internal/cli"
)

var checkCmd = &cobra.Command{
	Use:   "check <file.swan> [file.swan ...]",
	Short: "Parse and semantically check swan files",
	Long: `Parse and semantically check one or more .swan files.

Lexical and syntax errors stop at the first problem; semantic errors
are collected and reported together. With --strict, every page must
also be reachable from the entry page.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	failed := 0
	for _, path := range args {
		prog, ok := checkOne(path)
		if !ok {
			failed++
			continue
		}

		var parts []string
		parts = append(parts, fmt.Sprintf("%d page%s", len(prog.Pages), plural(len(prog.Pages))))
		if len(prog.Components) > 0 {
			parts = append(parts, fmt.Sprintf("%d component%s", len(prog.Components), plural(len(prog.Components))))
		}
		fmt.Printf("%s\n", cli.Success(fmt.Sprintf("%s is valid — app %q, %s",
			path, prog.App.Name, strings.Join(parts, ", "))))
	}
	if failed > 0 {
		return errExit
	}
	return nil
}
