package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/finch/internal/ast"
	"github.com/cwbudde/finch/internal/lexer"
	"github.com/cwbudde/finch/internal/parser"
	"github.com/spf13/cobra"
)

var parseDumpAST bool

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a program and display its AST",
	Long: `Parse a program and display the Abstract Syntax Tree.

If no file is provided, reads from stdin.
Use --dump-ast to show the full tree structure instead of the
one-line rendering.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "dump the full AST structure")
}

func runParse(cmd *cobra.Command, args []string) error {
	var input, filename string

	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("error reading file: %w", err)
		}
		input, filename = string(data), args[0]
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("error reading stdin: %w", err)
		}
		input, filename = string(data), "<stdin>"
	}

	tokens, lexErrors := lexer.Tokenize(input)
	if len(lexErrors) > 0 {
		printCompilerErrors(lexErrorsToCompiler(lexErrors, input, filename))
		return fmt.Errorf("lexing failed with %d error(s)", len(lexErrors))
	}

	program, parseErrors := parser.ParseProgram(tokens)
	if len(parseErrors) > 0 {
		printCompilerErrors(parseErrorsToCompiler(parseErrors, input, filename))
		return fmt.Errorf("parsing failed with %d error(s)", len(parseErrors))
	}

	if parseDumpAST {
		fmt.Println("Abstract Syntax Tree:")
		fmt.Println("=====================")
		dumpASTNode(program, 0)
	} else {
		fmt.Println(program.String())
	}

	return nil
}

func dumpASTNode(node any, indent int) {
	indentStr := ""
	for i := 0; i < indent; i++ {
		indentStr += "  "
	}

	switch n := node.(type) {
	case *ast.Program:
		if n.Definitions != nil {
			fmt.Printf("%sDefinitions (%d structures, %d globals, %d functions)\n", indentStr,
				len(n.Definitions.Structures), len(n.Definitions.Globals), len(n.Definitions.Functions))
			for _, f := range n.Definitions.Functions {
				fmt.Printf("%s  function %s\n", indentStr, f.Name)
				for _, s := range f.Body {
					dumpASTNode(s, indent+2)
				}
			}
		}
		fmt.Printf("%sProgram (%d statements)\n", indentStr, len(n.Statements))
		for _, stmt := range n.Statements {
			dumpASTNode(stmt, indent+1)
		}
	case *ast.If:
		fmt.Printf("%sIf %s\n", indentStr, n.Cond.String())
		for _, s := range n.Then {
			dumpASTNode(s, indent+1)
		}
	case *ast.While:
		fmt.Printf("%sWhile %s\n", indentStr, n.Cond.String())
		for _, s := range n.Body {
			dumpASTNode(s, indent+1)
		}
	case *ast.Binary:
		fmt.Printf("%sBinary (%s)\n", indentStr, n.Op)
		dumpASTNode(n.Left, indent+1)
		dumpASTNode(n.Right, indent+1)
	case *ast.Call:
		fmt.Printf("%sCall %s(%d args)\n", indentStr, n.Callee, len(n.Args))
	default:
		fmt.Printf("%s%T: %v\n", indentStr, node, node)
	}
}
