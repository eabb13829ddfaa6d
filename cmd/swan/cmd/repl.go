package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/swan-lang/swan/internal/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Long: `Start an interactive session. Programs are entered at the prompt
(unbalanced braces continue on the next line) and checked on entry;
:ast prints the last accepted program's tree. Type :help for commands.`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	if code := repl.New(os.Stdout, cfg.Strict).Run(); code != 0 {
		return errExit
	}
	return nil
}
