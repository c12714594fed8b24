package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/cwbudde/finch/internal/interp"
	"github.com/cwbudde/finch/pkg/finch"
	"github.com/spf13/cobra"
)

var (
	dumpAST bool
	rngSeed int64
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a program from a file or inline source",
	Long: `Execute a program from a file or inline source.

Examples:
  # Run a script file
  finch run script.fin

  # Evaluate inline source
  finch run -e "program display_line(\"hi\") end program"

  # Run with an AST dump first (for debugging)
  finch run --dump-ast script.fin`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline source instead of reading from file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the parsed AST before running")
	runCmd.Flags().Int64Var(&rngSeed, "seed", 0, "seed for random_number (defaults to the current time)")
}

func runScript(_ *cobra.Command, args []string) error {
	input, filename, err := readSource(evalExpr, args)
	if err != nil {
		return err
	}
	return runSource(input, filename, os.Stdin, os.Stdout)
}

// runSource drives the full pipeline — lex, parse, analyze, evaluate —
// for the run command.
func runSource(input, filename string, stdin *os.File, stdout *os.File) error {
	program, symtab, cerrs := finch.Analyze(input, filename)
	if len(cerrs) > 0 {
		printCompilerErrors(cerrs)
		return fmt.Errorf("compilation failed with %d error(s)", len(cerrs))
	}

	if dumpAST {
		fmt.Println("AST:")
		fmt.Println(program.String())
		fmt.Println()
	}

	seed := rngSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	interpreter := interp.New(symtab, stdout, stdin, seed)
	if err := interpreter.Run(program); err != nil {
		fmt.Fprintf(os.Stderr, "Runtime error: %s\n", err)
		return fmt.Errorf("execution failed")
	}

	return nil
}
