// Package cmd wires up the swan command tree.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/swan-lang/swan/internal/cli"
	"github.com/swan-lang/swan/internal/config"
	cerr "github.com/swan-lang/swan/internal/errors"
	"github.com/swan-lang/swan/internal/parser"
	"github.com/swan-lang/swan/internal/swan"
)

var (
	noColor    bool
	strictFlag bool
	cfg        = config.Default()
)

// errExit signals that diagnostics were already printed and only the
// exit status remains to be set.
var errExit = errors.New("exit")

var rootCmd = &cobra.Command{
	Use:   "swan",
	Short: "Validate and inspect .swan UI navigation programs",
	Long: `swan is the front end for the swan UI language: a lexer, parser,
and semantic checker for declarative app/page/component programs.

Commands:
  check    Parse and semantically check one or more files
  ast      Print a file's AST as JSON or YAML
  tokens   Print a file's token stream
  repl     Start an interactive session`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColor {
			cli.ColorEnabled = false
		}
		loaded, err := config.Load(".")
		if err != nil {
			return err
		}
		cfg = loaded
		if cmd.Flags().Changed("strict") {
			cfg.Strict = strictFlag
		}
		return nil
	},
}

// Execute runs the command tree and maps errors to exit codes: 0 on
// success, 1 on check or I/O failure, 2 on usage errors.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}
	if errors.Is(err, errExit) {
		return 1
	}
	fmt.Fprintln(os.Stderr, cli.Error(err.Error()))
	return 1
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable ANSI color output")
	rootCmd.PersistentFlags().BoolVar(&strictFlag, "strict", false, "require every page to be reachable from the entry page")
}

// checkOne parses and checks a single file, printing diagnostics to
// stderr. The program is returned when parsing succeeded, even if
// semantic checks failed.
func checkOne(path string) (*parser.Program, bool) {
	p, err := swan.ParseFile(path, swan.Options{Strict: cfg.Strict, Entry: cfg.Entry})
	if err != nil {
		var fail *swan.CheckFailure
		if errors.As(err, &fail) {
			printDiagnostics(fail.Errors)
			return fail.Program, false
		}
		fmt.Fprintln(os.Stderr, cli.Error(err.Error()))
		return nil, false
	}
	return p, true
}

func printDiagnostics(errs *cerr.CheckErrors) {
	for _, e := range errs.Errors() {
		fmt.Fprintln(os.Stderr, cli.Error(e.Format()))
		if e.Suggestion != "" {
			fmt.Fprintf(os.Stderr, "  %s\n", cli.Dim("suggestion: "+e.Suggestion))
		}
	}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
