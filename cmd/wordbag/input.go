package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"wordbag/internal/corpus"
)

// readTitles returns the positional arguments when given, otherwise reads
// count lines from the command's stdin. A prompt is printed only when stdin
// is an interactive terminal.
func readTitles(cmd *cobra.Command, args []string, count int) ([]corpus.Title, error) {
	if len(args) > 0 {
		return corpus.TitlesFromArgs(args), nil
	}
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		if count > 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "Enter %d book titles, one per line:\n", count)
		} else {
			fmt.Fprintln(cmd.ErrOrStderr(), "Enter book titles, one per line (Ctrl-D to finish):")
		}
	}
	return corpus.ReadTitles(in, count)
}
