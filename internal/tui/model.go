// Package tui provides a read-only viewer that shows a file next to its
// transformed form before anything is written.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mcdonaldj/filemod/internal/fileio"
	"github.com/mcdonaldj/filemod/internal/filename"
	"github.com/mcdonaldj/filemod/internal/ports"
	"github.com/mcdonaldj/filemod/internal/transform"
)

// View represents which content is on screen
type View int

const (
	OriginalView View = iota
	TransformedView
)

func (v View) String() string {
	if v == TransformedView {
		return "Transformed"
	}
	return "Original"
}

// Model is the review TUI model
type Model struct {
	name     string
	view     View
	width    int
	height   int
	quitting bool

	original    []string
	transformed []string
	scroll      int
}

// Key bindings
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Top: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("g", "top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("G", "bottom"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "original/transformed"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// NewModel creates a model for content read from name.
func NewModel(name, content string) *Model {
	return &Model{
		name:        name,
		original:    strings.Split(content, "\n"),
		transformed: strings.Split(transform.Transform(content), "\n"),
		width:       80,
		height:      24,
	}
}

// Load reads name through fsys and builds a model for it.
func Load(fsys ports.FileSystem, name string) (*Model, error) {
	content, err := fileio.Read(fsys, name)
	if err != nil {
		return nil, err
	}
	return NewModel(name, content), nil
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampScroll()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.Up):
			m.scroll--

		case key.Matches(msg, keys.Down):
			m.scroll++

		case key.Matches(msg, keys.Top):
			m.scroll = 0

		case key.Matches(msg, keys.Bottom):
			m.scroll = len(m.lines())

		case key.Matches(msg, keys.Toggle):
			if m.view == OriginalView {
				m.view = TransformedView
			} else {
				m.view = OriginalView
			}
		}
		m.clampScroll()
	}

	return m, nil
}

func (m *Model) lines() []string {
	if m.view == TransformedView {
		return m.transformed
	}
	return m.original
}

// visibleLines is the number of content rows left after title, tabs and help.
func (m *Model) visibleLines() int {
	n := m.height - 8
	if n < 1 {
		n = 1
	}
	return n
}

func (m *Model) clampScroll() {
	maxScroll := len(m.lines()) - m.visibleLines()
	if m.scroll > maxScroll {
		m.scroll = maxScroll
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("filemod review: " + filename.Sanitize(m.name)))
	b.WriteString("\n\n")

	for _, v := range []View{OriginalView, TransformedView} {
		label := fmt.Sprintf("[%s]", v)
		if v == m.view {
			b.WriteString(activeTabStyle.Render(label))
		} else {
			b.WriteString(inactiveTabStyle.Render(label))
		}
		b.WriteString(" ")
	}
	b.WriteString("\n\n")

	lines := m.lines()
	end := m.scroll + m.visibleLines()
	if end > len(lines) {
		end = len(lines)
	}
	for _, line := range lines[m.scroll:end] {
		b.WriteString(normalStyle.Render(truncate(line, m.width-4)))
		b.WriteString("\n")
	}

	b.WriteString(dimStyle.Render(fmt.Sprintf("lines %d-%d of %d", m.scroll+1, end, len(lines))))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ scroll • g/G top/bottom • tab switch view • q quit"))

	return appStyle.Render(b.String())
}

// Run loads name and starts the review program.
func Run(fsys ports.FileSystem, name string) error {
	m, err := Load(fsys, name)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// truncate shortens s to max characters, marking the cut with "…".
func truncate(s string, max int) string {
	runes := []rune(s)
	if max <= 1 || len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
