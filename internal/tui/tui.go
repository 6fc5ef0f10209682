// Package tui is the interactive entry browser behind `todocli browse`.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todocli/internal/logging"
	"github.com/idilsaglam/todocli/internal/model"
	"github.com/idilsaglam/todocli/internal/store"
	"github.com/idilsaglam/todocli/internal/todo"
	"github.com/idilsaglam/todocli/internal/ui"
)

// listItem adapts an entry to bubbles/list.Item
type listItem struct {
	Name    string
	Checked bool
}

func (i listItem) Title() string       { return ui.Box(i.Checked) + " " + i.Name }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.Name }

// single-line rows
type itemDelegate struct {
	styles ui.Styles
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	box := d.styles.Muted.Render(ui.BoxUnchecked)
	name := it.Name
	if it.Checked {
		box = d.styles.Success.Render(ui.BoxChecked)
		name = d.styles.Done.Render(name)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = d.styles.Selected.Render(">") + " "
	}
	fmt.Fprint(w, prefix+box+" "+name)
}

var (
	toggleBind = key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle"))
	removeBind = key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove"))
	addBind    = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	quitBind   = key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit"))
)

// Model edits a state in memory. Every change goes through the todo
// package; nothing is written until the program exits.
type Model struct {
	state   *model.State
	styles  ui.Styles
	list    list.Model
	changed bool
	// row to select once a pending refilter lands
	follow string

	// inline add
	adding bool
	ti     textinput.Model
	addErr string

	width, height int
}

// New builds a browser over s. s is mutated as the user edits.
func New(s *model.State, styles ui.Styles) Model {
	s.Normalize()

	l := list.New(nil, itemDelegate{styles: styles}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = styles.Title
	l.Styles.HelpStyle = styles.Muted
	l.Styles.PaginationStyle = styles.Muted
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("entry", "entries")
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{toggleBind, removeBind, addBind} }
	l.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{toggleBind, removeBind, addBind} }

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New entry name..."
	ti.CharLimit = 200

	m := Model{
		state:  s,
		styles: styles,
		list:   l,
		ti:     ti,
		width:  80,
		height: 24,
	}
	m.refresh("")
	return m
}

// State returns the edited state.
func (m Model) State() *model.State { return m.state }

// Changed reports whether any edit was applied.
func (m Model) Changed() bool { return m.changed }

// refresh rebuilds rows from the state, keeping the cursor on selected
// when it still exists. With a filter active the rows are refiltered by
// the returned command and the cursor is placed once the matches arrive.
func (m *Model) refresh(selected string) tea.Cmd {
	names := m.state.Names()
	items := make([]list.Item, 0, len(names))
	for _, n := range names {
		items = append(items, listItem{Name: n, Checked: m.state.Entries[n].Checked})
	}
	cmd := m.list.SetItems(items)
	m.follow = selected
	if m.list.FilterState() == list.Unfiltered {
		m.placeCursor()
	}

	checked, unchecked := m.state.Counts()
	m.list.Title = fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		m.styles.Title.Render("Todos"),
		m.styles.Success.Render("✔"), checked,
		m.styles.Pending.Render("•"), unchecked,
		m.styles.Accent.Render("Total"), checked+unchecked,
	)
	return cmd
}

// placeCursor selects the followed row among the visible ones, or keeps
// the cursor in range.
func (m *Model) placeCursor() {
	visible := m.list.VisibleItems()
	cursor := m.list.Index()
	for i, it := range visible {
		if li, ok := it.(listItem); ok && m.follow != "" && li.Name == m.follow {
			cursor = i
			break
		}
	}
	m.follow = ""
	if cursor >= len(visible) {
		cursor = len(visible) - 1
	}
	if cursor >= 0 {
		m.list.Select(cursor)
	}
}

func (m Model) selected() (listItem, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	return it, ok
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
	}

	if m.adding {
		return m.updateAdding(msg)
	}

	// keys belong to the filter input while typing a filter
	if k, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch {
		case key.Matches(k, quitBind):
			return m, tea.Quit
		case key.Matches(k, toggleBind):
			if it, ok := m.selected(); ok {
				if err := todo.Toggle(m.state, it.Name); err == nil {
					m.changed = true
					cmd := m.refresh(it.Name)
					return m, cmd
				}
			}
			return m, nil
		case key.Matches(k, removeBind):
			if it, ok := m.selected(); ok {
				if err := todo.Remove(m.state, it.Name); err == nil {
					m.changed = true
					cmd := m.refresh("")
					return m, cmd
				}
			}
			return m, nil
		case key.Matches(k, addBind):
			m.adding = true
			m.addErr = ""
			m.ti.SetValue("")
			return m, m.ti.Focus()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	if _, ok := msg.(list.FilterMatchesMsg); ok {
		m.placeCursor()
	}
	return m, cmd
}

func (m Model) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter":
			name := strings.TrimSpace(m.ti.Value())
			if name == "" {
				m.addErr = "Name cannot be empty"
				return m, nil
			}
			todo.Add(m.state, name)
			m.changed = true
			m.closeInput()
			cmd := m.refresh(name)
			return m, cmd
		case "esc":
			m.closeInput()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *Model) closeInput() {
	m.adding = false
	m.addErr = ""
	m.ti.SetValue("")
	m.ti.Blur()
}

func (m Model) View() string {
	listHeight := m.height - 4
	if m.adding {
		listHeight = m.height - 8
	}
	m.list.SetSize(m.width-4, max(listHeight, 1))

	content := m.list.View()
	if m.adding {
		title := "Add entry"
		if m.addErr != "" {
			title += "  " + m.styles.Error.Render(m.addErr)
		}
		content += "\n" + m.styles.Frame.Render(title+"\n"+m.ti.View())
	}
	checked, unchecked := m.state.Counts()
	content += "\n" + m.styles.Muted.Render(ui.ProgressBar(checked, checked+unchecked, 28))
	return m.styles.Frame.Render(content)
}

// Run loads the state, lets the user edit it and saves once on exit if
// anything changed.
func Run(st store.Store, p *ui.Printer, noColor bool, opts ...tea.ProgramOption) error {
	logger := logging.GetLogger("tui")

	s, err := st.Load()
	if err != nil {
		p.Warn(err.Error())
	}

	m := New(s, ui.NewStyles(ui.NewRenderer(p.Out, noColor)))
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithOutput(p.Out)}, opts...)
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	fm, ok := final.(Model)
	if !ok || !fm.Changed() {
		logger.Debug().Msg("No changes to save")
		return nil
	}
	if err := st.Save(fm.State()); err != nil {
		return err
	}
	p.OK("saved")
	return nil
}
