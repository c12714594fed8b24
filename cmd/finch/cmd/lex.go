package cmd

import (
	"fmt"

	"github.com/cwbudde/finch/internal/lexer"
	"github.com/spf13/cobra"
)

var (
	showPos    bool
	showType   bool
	onlyErrors bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a program and print the resulting tokens",
	Long: `Tokenize a program and print the resulting tokens, one per line.

Examples:
  # Tokenize a script file
  finch lex script.fin

  # Tokenize inline source
  finch lex -e "program display_line(\"hi\") end program"

  # Show token types and positions
  finch lex --show-type --show-pos script.fin

  # Show only illegal tokens
  finch lex --only-errors script.fin`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline source instead of reading from file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&showType, "show-type", false, "show token type names")
	lexCmd.Flags().BoolVar(&onlyErrors, "only-errors", false, "show only illegal tokens")
}

func lexScript(cmd *cobra.Command, args []string) error {
	input, filename, err := readSource(evalExpr, args)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Printf("Tokenizing: %s\n", filename)
		fmt.Printf("Input length: %d bytes\n", len(input))
		fmt.Println("---")
	}

	tokens, lexErrors := lexer.Tokenize(input)

	tokenCount := 0
	for _, tok := range tokens {
		if onlyErrors && tok.Type != lexer.ILLEGAL {
			continue
		}
		tokenCount++
		printToken(tok)
	}

	if verbose {
		fmt.Println("---")
		fmt.Printf("Total tokens: %d\n", tokenCount)
		if len(lexErrors) > 0 {
			fmt.Printf("Errors: %d\n", len(lexErrors))
		}
	}

	if len(lexErrors) > 0 {
		printCompilerErrors(lexErrorsToCompiler(lexErrors, input, filename))
		return fmt.Errorf("found %d illegal token(s)", len(lexErrors))
	}

	return nil
}

func printToken(tok lexer.Token) {
	var output string

	if showType {
		output = fmt.Sprintf("[%-14s]", tok.Type)
	}

	if tok.Type == lexer.EOF {
		output += " EOF"
	} else if tok.Lexeme == "" {
		output += fmt.Sprintf(" %s", tok.Type)
	} else {
		output += fmt.Sprintf(" %q", tok.Lexeme)
	}

	if showPos {
		output += fmt.Sprintf(" @%d:%d", tok.Pos.Line, tok.Pos.Column)
	}

	fmt.Println(output)
}
