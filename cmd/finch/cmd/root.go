package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "finch",
	Short: "Finch interpreter",
	Long: `finch runs Finch programs: a small, strongly typed teaching
language with structures, fixed-bound arrays, and single-owner links
over a flat cell-addressed memory model.

A program is a "definitions ... end definitions" block declaring
structures, globals, and functions, followed by a "program ... end
program" body. finch exposes each pipeline stage (lex, parse, run) as
its own subcommand for debugging, plus a repl for interactive use.`,
	Version: Version,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
