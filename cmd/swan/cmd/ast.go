package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/swan-lang/swan/internal/parser"
)

var (
	astFormat string
	astOut    string
)

var astCmd = &cobra.Command{
	Use:   "ast <file.swan>",
	Short: "Print a file's AST as JSON or YAML",
	Long: `Parse and check a file, then print its AST.

The tree carries source positions and preserves number literals as
written, so the output is suitable for downstream code generators.`,
	Args: cobra.ExactArgs(1),
	RunE: runAST,
}

func init() {
	astCmd.Flags().StringVarP(&astFormat, "format", "f", "", "output format: json or yaml (default from swan.yaml)")
	astCmd.Flags().StringVarP(&astOut, "output", "o", "", "write to a file instead of stdout")
	rootCmd.AddCommand(astCmd)
}

func runAST(cmd *cobra.Command, args []string) error {
	prog, ok := checkOne(args[0])
	if !ok {
		return errExit
	}

	format := astFormat
	if format == "" {
		format = cfg.Format
	}

	var data []byte
	var err error
	switch format {
	case "", "json":
		data, err = parser.ToJSON(prog)
	case "yaml":
		data, err = parser.ToYAML(prog)
	default:
		return fmt.Errorf("unknown format %q (want json or yaml)", format)
	}
	if err != nil {
		return err
	}
	if astOut != "" {
		return os.WriteFile(astOut, append(data, '\n'), 0644)
	}
	fmt.Println(string(data))
	return nil
}
