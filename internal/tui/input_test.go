package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kbridge/internal/wizard"
)

func typeInput(m *inputModel, text string) {
	for _, r := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestInputAcceptsValidValue(t *testing.T) {
	m := newInputModel(wizard.StepPrompt{Title: "Enter the local port"}, func(s string) string {
		if s == "" {
			return "A value is required"
		}
		return ""
	})

	typeInput(m, "8080")
	_, cmd := m.Update(keyMsg("enter"))
	require.NotNil(t, cmd, "enter quits after a valid value")

	value, err := m.Value()
	require.NoError(t, err)
	assert.Equal(t, "8080", value)
}

func TestInputRepromptsOnViolation(t *testing.T) {
	m := newInputModel(wizard.StepPrompt{Title: "Enter the local port"}, func(s string) string {
		if s != "8080" {
			return "Port must be between 0 and 65535"
		}
		return ""
	})

	typeInput(m, "abc")
	_, cmd := m.Update(keyMsg("enter"))
	assert.Nil(t, cmd, "a rejected value does not quit")
	assert.Equal(t, "Port must be between 0 and 65535", m.violation)
	assert.Contains(t, m.View(), "Port must be between 0 and 65535")

	// The violation clears as soon as the user edits the value.
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Empty(t, m.violation)

	_, err := m.Value()
	assert.True(t, errors.Is(err, wizard.ErrCanceled), "no value before submit")
}

func TestInputCancellation(t *testing.T) {
	m := newInputModel(wizard.StepPrompt{Title: "Enter the local port"}, nil)

	typeInput(m, "80")
	_, cmd := m.Update(keyMsg("esc"))
	require.NotNil(t, cmd)

	_, err := m.Value()
	assert.True(t, errors.Is(err, wizard.ErrCanceled))
}
