package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"kbridge/internal/wizard"
)

// pickerModel is a titled, steppable single-choice list.
type pickerModel struct {
	prompt   wizard.StepPrompt
	cursor   int
	width    int
	chosen   bool
	canceled bool
}

func newPickerModel(prompt wizard.StepPrompt) *pickerModel {
	cursor := prompt.DefaultChoice
	if cursor < 0 || cursor >= len(prompt.Choices) {
		cursor = 0
	}
	return &pickerModel{prompt: prompt, cursor: cursor, width: 80}
}

func (m *pickerModel) Init() tea.Cmd {
	return nil
}

func (m *pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.canceled = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.prompt.Choices)-1 {
				m.cursor++
			}
		case "enter":
			m.chosen = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *pickerModel) View() string {
	if m.chosen || m.canceled {
		return ""
	}
	var b strings.Builder
	b.WriteString(headingStyle.Render(m.prompt.Heading()))
	b.WriteString("\n\n")
	for i, choice := range m.prompt.Choices {
		label := truncate(choice, m.width-4)
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> "))
			b.WriteString(selectedStyle.Render(label))
		} else {
			b.WriteString("  ")
			b.WriteString(label)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: select • esc: cancel"))
	b.WriteString("\n")
	return b.String()
}

// Choice returns the selected label, or wizard.ErrCanceled.
func (m *pickerModel) Choice() (string, error) {
	if m.canceled || !m.chosen {
		return "", wizard.ErrCanceled
	}
	if m.cursor < 0 || m.cursor >= len(m.prompt.Choices) {
		return "", fmt.Errorf("picker cursor out of range")
	}
	return m.prompt.Choices[m.cursor], nil
}

func truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	if runewidth.StringWidth(s) <= max {
		return s
	}
	return runewidth.Truncate(s, max, "…")
}
