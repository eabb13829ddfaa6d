package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/swan-lang/swan/internal/lexer"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file.swan>",
	Short: "Print a file's token stream",
	Long: `Lex a file and print one token per line with its source position.
Useful when a syntax error message is not obvious from the source.`,
	Args: cobra.ExactArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	tokens, err := lexer.New(string(data)).Tokenize()
	if err != nil {
		return err
	}
	for _, tok := range tokens {
		fmt.Printf("%4d:%-3d %s\n", tok.Line, tok.Column, tok.String())
	}
	return nil
}
