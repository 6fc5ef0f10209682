package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ColorEnabled reports whether styled output should be written to w.
// Colors are off when disabled explicitly, when NO_COLOR is set, or when
// w is not a terminal.
func ColorEnabled(w io.Writer, disable bool) bool {
	if disable || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// NewRenderer returns a lipgloss renderer for w. With colors off every
// style renders as plain text.
func NewRenderer(w io.Writer, disable bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if !ColorEnabled(w, disable) {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}
