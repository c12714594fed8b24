package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cwbudde/finch/pkg/finch"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive read-eval-print loop",
	Long: `Start an interactive session for trying Language snippets without
writing them to a file.

Each submission must be a complete "program ... end program" block
(definitions are allowed before it, same as a file). Entering a line
of just "end program" submits the buffered source for execution;
":reset" discards it, ":quit" exits.`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(_ *cobra.Command, _ []string) error {
	fmt.Println("finch repl — enter a program, terminate with \"end program\"; :quit to exit")

	scanner := bufio.NewScanner(os.Stdin)
	var buf strings.Builder
	n := 0

	prompt := func() {
		if buf.Len() == 0 {
			fmt.Print("finch> ")
		} else {
			fmt.Print("...... ")
		}
	}

	prompt()
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		switch strings.ToLower(trimmed) {
		case ":quit", ":q", ":exit":
			return nil
		case ":reset":
			buf.Reset()
			prompt()
			continue
		case ":help":
			fmt.Println("enter Language source; \"end program\" submits it, :reset clears the buffer, :quit exits")
			prompt()
			continue
		}

		buf.WriteString(line)
		buf.WriteString("\n")

		if strings.EqualFold(trimmed, "end program") {
			n++
			source := buf.String()
			buf.Reset()

			err := finch.Run(source, finch.Options{
				Filename: fmt.Sprintf("<repl:%d>", n),
				Stdout:   os.Stdout,
				Stdin:    os.Stdin,
				RNGSeed:  time.Now().UnixNano(),
			})
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s\n", err)
			}
		}

		prompt()
	}

	fmt.Println()
	return scanner.Err()
}
