package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"kbridge/internal/wizard"
)

// inputModel is a titled free-text prompt with synchronous validation.
// A rejected value re-prompts in place with the validator's message.
type inputModel struct {
	prompt   wizard.StepPrompt
	validate func(string) string

	input     textinput.Model
	violation string
	submitted bool
	canceled  bool
}

func newInputModel(prompt wizard.StepPrompt, validate func(string) string) *inputModel {
	input := textinput.New()
	input.Placeholder = prompt.Placeholder
	input.Focus()
	input.CharLimit = 64
	return &inputModel{prompt: prompt, validate: validate, input: input}
}

func (m *inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c", "esc":
			m.canceled = true
			return m, tea.Quit
		case "enter":
			if m.validate != nil {
				if msg := m.validate(m.input.Value()); msg != "" {
					m.violation = msg
					return m, nil
				}
			}
			m.submitted = true
			return m, tea.Quit
		default:
			m.violation = ""
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *inputModel) View() string {
	if m.submitted || m.canceled {
		return ""
	}
	var b strings.Builder
	b.WriteString(headingStyle.Render(m.prompt.Heading()))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.violation != "" {
		b.WriteString(errorStyle.Render(m.violation))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: confirm • esc: cancel"))
	b.WriteString("\n")
	return b.String()
}

// Value returns the accepted input, or wizard.ErrCanceled.
func (m *inputModel) Value() (string, error) {
	if m.canceled || !m.submitted {
		return "", wizard.ErrCanceled
	}
	return m.input.Value(), nil
}
