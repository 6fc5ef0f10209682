package ui

import (
	"fmt"
	"io"
	"strings"
)

// Printer writes list output to Out and diagnostics to Err.
// Only the leading markers are styled; names are written verbatim.
type Printer struct {
	Out io.Writer
	Err io.Writer

	out Styles
	err Styles
}

func NewPrinter(out, errw io.Writer, noColor bool) *Printer {
	return &Printer{
		Out: out,
		Err: errw,
		out: NewStyles(NewRenderer(out, noColor)),
		err: NewStyles(NewRenderer(errw, noColor)),
	}
}

// Line prints one entry as "[x] name" or "[ ] name".
func (p *Printer) Line(name string, checked bool) {
	box := p.out.Muted.Render(BoxUnchecked)
	if checked {
		box = p.out.Success.Render(BoxChecked)
	}
	fmt.Fprintln(p.Out, box+" "+name)
}

func (p *Printer) OK(msg string) {
	fmt.Fprintln(p.Out, p.out.Success.Render(symCheck)+" "+msg)
}

func (p *Printer) Warn(msg string) {
	fmt.Fprintln(p.Err, p.err.Warn.Render(symWarn)+" "+msg)
}

func (p *Printer) Fail(msg string) {
	fmt.Fprintln(p.Err, p.err.Error.Render(symCross)+" "+msg)
}

// ProgressBar renders a bar with a done/total counter.
func ProgressBar(done, total, width int) string {
	if width <= 0 {
		width = 28
	}
	filled := 0
	if total > 0 {
		filled = done * width / total
	}
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + fmt.Sprintf("] %d/%d", done, total)
}
