package ui

import "github.com/charmbracelet/lipgloss"

const (
	BoxChecked   = "[x]"
	BoxUnchecked = "[ ]"

	symCheck = "✔"
	symCross = "✖"
	symWarn  = "!"
)

// Styles bundles the palette used by the printer and the browser.
type Styles struct {
	Title   lipgloss.Style
	Success lipgloss.Style
	Pending lipgloss.Style
	Accent  lipgloss.Style
	Muted   lipgloss.Style
	Warn    lipgloss.Style
	Error   lipgloss.Style

	Selected lipgloss.Style
	Done     lipgloss.Style
	Frame    lipgloss.Style
}

// NewStyles builds the palette on r.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Title:   r.NewStyle().Bold(true),
		Success: r.NewStyle().Foreground(lipgloss.Color("42")),
		Pending: r.NewStyle().Foreground(lipgloss.Color("214")),
		Accent:  r.NewStyle().Foreground(lipgloss.Color("12")),
		Muted:   r.NewStyle().Faint(true),
		Warn:    r.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Error:   r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		Selected: r.NewStyle().Bold(true).Reverse(true),
		Done:     r.NewStyle().Faint(true).Strikethrough(true),
		Frame: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1),
	}
}

// Box returns the checkbox for an entry state.
func Box(checked bool) string {
	if checked {
		return BoxChecked
	}
	return BoxUnchecked
}
