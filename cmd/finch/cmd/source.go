package cmd

import (
	"fmt"
	"io"
	"os"
)

// evalExpr holds the -e/--eval flag shared by lex and run.
var evalExpr string

// readSource resolves a subcommand's input: inline source via -e, a
// file named in args, or standard input if neither was given.
func readSource(eval string, args []string) (input, filename string, err error) {
	if eval != "" {
		return eval, "<eval>", nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), args[0], nil
	}
	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(content), "<stdin>", nil
}
