package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/feather-lang/plume"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const (
	promptFirst    = ">>> "
	promptContinue = "... "
	maxScrollback  = 200
)

type replModel struct {
	session  *session
	input    textinput.Model
	lines    []string // rendered scrollback
	history  []string // submitted lines, oldest first
	histIdx  int
	quitting bool
}

func newReplModel(interp *plume.Interp) *replModel {
	ti := textinput.New()
	ti.Prompt = promptFirst
	ti.Width = 80
	ti.Focus()
	return &replModel{
		session: &session{interp: interp},
		input:   ti,
	}
}

func (m *replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "ctrl+d":
			m.quitting = true
			return m, tea.Quit

		case "up":
			if m.histIdx > 0 {
				m.histIdx--
				m.input.SetValue(m.history[m.histIdx])
				m.input.CursorEnd()
			}
			return m, nil

		case "down":
			if m.histIdx < len(m.history)-1 {
				m.histIdx++
				m.input.SetValue(m.history[m.histIdx])
			} else {
				m.histIdx = len(m.history)
				m.input.SetValue("")
			}
			m.input.CursorEnd()
			return m, nil

		case "enter":
			m.submit(m.input.Value())
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *replModel) submit(line string) {
	m.appendLines(inputStyle.Render(m.input.Prompt + line))
	if strings.TrimSpace(line) != "" {
		m.history = append(m.history, line)
	}
	m.histIdx = len(m.history)
	m.input.SetValue("")

	o, done := m.session.feed(line)
	if !done {
		m.input.Prompt = promptContinue
		return
	}
	m.input.Prompt = promptFirst
	if out := strings.TrimRight(o.output, "\n"); out != "" {
		m.appendLines(strings.Split(out, "\n")...)
	}
	switch {
	case o.err != nil:
		m.appendLines(errorStyle.Render(fmt.Sprintf("error: %v", o.err)))
	case o.result != "":
		m.appendLines(resultStyle.Render(o.result))
	}
}

func (m *replModel) appendLines(lines ...string) {
	m.lines = append(m.lines, lines...)
	if n := len(m.lines) - maxScrollback; n > 0 {
		m.lines = m.lines[n:]
	}
}

func (m *replModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("plume"))
	b.WriteString(" ")
	b.WriteString(helpStyle.Render(fmt.Sprintf("modules: %s", strings.Join(m.session.interp.Modules(), ", "))))
	b.WriteString("\n\n")

	for _, l := range m.lines {
		b.WriteString(l)
		b.WriteString("\n")
	}
	if m.quitting {
		return b.String()
	}
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("enter evaluate • ↑/↓ history • ctrl+d quit"))
	return b.String()
}

// runTUI runs the interactive session on the terminal.
func runTUI(interp *plume.Interp) error {
	_, err := tea.NewProgram(newReplModel(interp)).Run()
	return err
}
