package cmd

import (
	"fmt"
	"io"
	"os"

	"flattenrepo/pkg/flatten"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// printSummary reports the outcome of a run in one line, colored when w is a terminal.
func printSummary(w io.Writer, s flatten.Summary) {
	green := color.New(color.FgGreen, color.Bold)
	yellow := color.New(color.FgYellow)
	if isTerminal(w) {
		green.EnableColor()
		yellow.EnableColor()
	} else {
		green.DisableColor()
		yellow.DisableColor()
	}

	green.Fprintf(w, "Wrote %s", s.Output)
	fmt.Fprintf(w, " (%d files", s.Included())
	if skipped := s.Skipped(); skipped > 0 {
		fmt.Fprint(w, ", ")
		yellow.Fprintf(w, "%d skipped", skipped)
	}
	fmt.Fprintln(w, ")")
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
