package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// isTerminal reports whether f is an interactive terminal.
func isTerminal(f *os.File) bool { return term.IsTerminal(int(f.Fd())) }

// terminalWidth returns the width of the terminal f, or def.
func terminalWidth(f *os.File, def int) int {
	if !isTerminal(f) {
		return def
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return def
	}
	return w
}

// printMarkdown prints markdown to the standard output, rendered when it is a terminal.
func printMarkdown(md string) {
	writeMarkdown(os.Stdout, md, isTerminal(os.Stdout))
}

// writeMarkdown writes md to w, rendered for a terminal if render is true.
func writeMarkdown(w io.Writer, md string, render bool) {
	if !render {
		fmt.Fprint(w, md)
		return
	}
	out, err := glamour.Render(md, "auto")
	if err != nil {
		logf("cannot render markdown: %v", err)
		fmt.Fprint(w, md)
		return
	}
	fmt.Fprint(w, out)
}
