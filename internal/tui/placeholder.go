package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"kbridge/internal/wizard"
)

// placeholderModel is the ephemeral "working" indicator shown before a
// blocking discovery call. It renders until it receives hideMsg.
type placeholderModel struct {
	prompt  wizard.StepPrompt
	spinner spinner.Model
	done    bool
}

type hideMsg struct{}

func newPlaceholderModel(prompt wizard.StepPrompt) *placeholderModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = cursorStyle
	return &placeholderModel{prompt: prompt, spinner: sp}
}

func (m *placeholderModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *placeholderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case hideMsg:
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		// The placeholder is not interactive; ignore keys entirely so
		// a stray Ctrl+C during discovery does not tear down the
		// terminal out from under the flow.
		return m, nil
	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m *placeholderModel) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(placeholderStyle.Render(m.prompt.Placeholder))
	b.WriteString("\n")
	return b.String()
}
