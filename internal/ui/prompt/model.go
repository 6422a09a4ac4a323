package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type outcome int

const (
	editing outcome = iota
	submitted
	interrupted
	closed
)

// model edits one line. Up and Down walk the history; the line being typed
// is kept aside while browsing and restored when walking past the newest entry.
type model struct {
	input    textinput.Model
	history  []string
	cursor   int
	draft    string
	outcome  outcome
	complete func(string) []string
}

func newModel(input textinput.Model, history []string, complete func(string) []string) model {
	if complete != nil {
		input.ShowSuggestions = true
	}
	return model{
		input:    input,
		history:  history,
		cursor:   len(history),
		complete: complete,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch key.Type {
	case tea.KeyEnter:
		m.outcome = submitted
		return m, tea.Quit

	case tea.KeyCtrlC:
		m.outcome = interrupted
		return m, tea.Quit

	case tea.KeyCtrlD:
		if m.input.Value() == "" {
			m.outcome = closed
			return m, tea.Quit
		}

	case tea.KeyUp:
		if m.cursor > 0 {
			if m.cursor == len(m.history) {
				m.draft = m.input.Value()
			}
			m.cursor--
			m.show(m.history[m.cursor])
		}
		return m, nil

	case tea.KeyDown:
		if m.cursor < len(m.history) {
			m.cursor++
			if m.cursor == len(m.history) {
				m.show(m.draft)
			} else {
				m.show(m.history[m.cursor])
			}
		}
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.complete != nil && m.input.Value() != before {
		m.input.SetSuggestions(m.complete(m.input.Value()))
	}
	return m, cmd
}

func (m *model) show(line string) {
	m.input.SetValue(line)
	m.input.CursorEnd()
}

func (m model) View() string {
	switch m.outcome {
	case submitted, closed:
		return m.input.Prompt + m.echoed() + "\n"
	case interrupted:
		return m.input.Prompt + m.echoed() + "^C\n"
	default:
		return m.input.View()
	}
}

// echoed is the value as left on screen once the line is done.
func (m model) echoed() string {
	switch m.input.EchoMode {
	case textinput.EchoNone:
		return ""
	case textinput.EchoPassword:
		return strings.Repeat(string(m.input.EchoCharacter), len([]rune(m.input.Value())))
	default:
		return m.input.Value()
	}
}
