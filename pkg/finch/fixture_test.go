package finch_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/finch/pkg/finch"
	"github.com/gkampitakis/go-snaps/snaps"
)

// TestFixtures runs every testdata/*.fin program through finch.Run and
// checks its stdout. A fixture with a sibling .out file is compared
// against that file exactly; a fixture without one is checked against
// a go-snaps snapshot instead, so new fixtures don't need a
// hand-written expectation before their output is pinned down.
func TestFixtures(t *testing.T) {
	finFiles, err := filepath.Glob("testdata/*.fin")
	if err != nil {
		t.Fatalf("globbing testdata: %v", err)
	}
	if len(finFiles) == 0 {
		t.Fatal("no .fin fixtures found under testdata/")
	}

	for _, finFile := range finFiles {
		finFile := finFile
		name := strings.TrimSuffix(filepath.Base(finFile), ".fin")

		t.Run(name, func(t *testing.T) {
			source, err := os.ReadFile(finFile)
			if err != nil {
				t.Fatalf("reading %s: %v", finFile, err)
			}

			var out bytes.Buffer
			runErr := finch.Run(string(source), finch.Options{
				Filename: finFile,
				Stdout:   &out,
				Stdin:    strings.NewReader(""),
				RNGSeed:  1,
			})
			if runErr != nil {
				t.Fatalf("running %s: %v", finFile, runErr)
			}

			outFile := strings.TrimSuffix(finFile, ".fin") + ".out"
			expected, err := os.ReadFile(outFile)
			if err == nil {
				if out.String() != string(expected) {
					t.Errorf("output mismatch for %s:\nwant:\n%s\ngot:\n%s", name, expected, out.String())
				}
				return
			}
			if !os.IsNotExist(err) {
				t.Fatalf("reading %s: %v", outFile, err)
			}

			snaps.MatchSnapshot(t, out.String())
		})
	}
}
