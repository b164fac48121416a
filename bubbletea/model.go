// Package bubbletea provides an interactive terminal search palette over the
// document index, built on github.com/charmbracelet/bubbletea.
package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/docnav"
)

// MaxVisible is the number of results shown at once.
const MaxVisible = 8

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	sectionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	snippetStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	matchStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is a search palette: ctrl+k or / opens it, typing re-runs the query,
// up and down move the selection, enter chooses a result and esc closes.
// Choosing a result hands its address to the session's navigation function
// and quits the program.
type Model struct {
	session *docnav.Session
	input   textinput.Model
	width   int
	height  int
}

// NewModel returns a closed palette over entries. Chosen addresses are
// built under prefix and passed to navigate.
func NewModel(entries []*docnav.SearchEntry, prefix string, navigate docnav.NavigateFunc) Model {
	input := textinput.New()
	input.Placeholder = "Search the docs..."
	input.Prompt = "› "

	return Model{
		session: docnav.NewSession(entries, prefix, navigate),
		input:   input,
	}
}

// Session returns the underlying search session.
func (m Model) Session() *docnav.Session {
	return m.session
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = max(0, msg.Width-6)
	case tea.KeyMsg:
		if m.session.State() == docnav.SessionOpen {
			return m.updateOpen(msg)
		}
		return m.updateClosed(msg)
	}
	return m, nil
}

func (m Model) updateClosed(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+k", "/":
		m.session.Handle(docnav.TriggerOpen)
		m.input.SetValue("")
		return m, m.input.Focus()
	case "q", "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateOpen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.session.Handle(docnav.TriggerEscape)
		m.input.SetValue("")
		m.input.Blur()
		return m, nil
	case "up", "ctrl+p":
		m.session.Handle(docnav.TriggerUp)
		return m, nil
	case "down", "ctrl+n":
		m.session.Handle(docnav.TriggerDown)
		return m, nil
	case "enter":
		if _, ok := m.session.Handle(docnav.TriggerCommit); ok {
			m.input.SetValue("")
			m.input.Blur()
			return m, tea.Quit
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if q := m.input.Value(); q != m.session.Query() {
		m.session.SetQuery(q)
	}
	return m, cmd
}

func (m Model) View() string {
	if m.session.State() != docnav.SessionOpen {
		return helpStyle.Render("/ or ctrl+k search • q quit") + "\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Search"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	m.renderResults(&b)
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ navigate • enter open • esc close"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderResults(b *strings.Builder) {
	results := m.session.Results()
	if len(results) == 0 {
		if strings.TrimSpace(m.session.Query()) != "" {
			b.WriteString(helpStyle.Render("No results"))
			b.WriteString("\n")
		}
		return
	}

	policy := m.session.Policy()
	start, end := visibleRange(len(results), m.session.Cursor(), MaxVisible)
	for i := start; i < end; i++ {
		r := results[i]
		label := r.PageTitle
		if !r.IsPage() {
			label += " › " + sectionStyle.Render(r.Section)
		}
		if i == m.session.Cursor() {
			b.WriteString(selectedStyle.Render("▶ ") + label)
		} else {
			b.WriteString("  " + label)
		}
		b.WriteString("\n")
		if s := policy.BuildSnippet(r.Text, m.session.Query()); s != nil {
			b.WriteString("    ")
			b.WriteString(snippetStyle.Render(s.Before) + matchStyle.Render(s.Match) + snippetStyle.Render(s.After))
			b.WriteString("\n")
		}
	}
	if len(results) > MaxVisible {
		b.WriteString(helpStyle.Render(fmt.Sprintf("  %d-%d of %d", start+1, end, len(results))))
		b.WriteString("\n")
	}
}

// visibleRange returns the window of at most size items that keeps cursor
// in view.
func visibleRange(n, cursor, size int) (start, end int) {
	if n <= size {
		return 0, n
	}
	start = max(0, cursor-size/2)
	end = start + size
	if end > n {
		end = n
		start = n - size
	}
	return start, end
}
