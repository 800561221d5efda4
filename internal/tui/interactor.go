package tui

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"kbridge/internal/wizard"
	"kbridge/pkg/logging"
)

// Prompter is the terminal implementation of wizard.Interactor. Each
// prompt runs its own short-lived bubbletea program; log output is
// diverted to a buffer while a program owns the terminal and flushed
// afterwards.
type Prompter struct {
	mu          sync.Mutex
	placeholder *tea.Program
	logBuf      bytes.Buffer
}

// NewPrompter returns a ready-to-use Prompter.
func NewPrompter() *Prompter {
	return &Prompter{}
}

func (p *Prompter) divertLogs() {
	p.logBuf.Reset()
	logging.Divert(&p.logBuf)
}

func (p *Prompter) restoreLogs() {
	logging.Restore()
	if p.logBuf.Len() > 0 {
		fmt.Fprint(os.Stderr, p.logBuf.String())
		p.logBuf.Reset()
	}
}

// ShowChoice presents a single-choice picker and returns the selected
// label.
func (p *Prompter) ShowChoice(ctx context.Context, prompt wizard.StepPrompt) (string, error) {
	p.HidePlaceholder()
	p.divertLogs()
	defer p.restoreLogs()

	model := newPickerModel(prompt)
	program := tea.NewProgram(model, tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return "", fmt.Errorf("choice prompt failed: %w", err)
	}
	return model.Choice()
}

// ShowTextInput presents a validated free-text prompt.
func (p *Prompter) ShowTextInput(ctx context.Context, prompt wizard.StepPrompt, validate func(string) string) (string, error) {
	p.HidePlaceholder()
	p.divertLogs()
	defer p.restoreLogs()

	model := newInputModel(prompt, validate)
	program := tea.NewProgram(model, tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return "", fmt.Errorf("text prompt failed: %w", err)
	}
	return model.Value()
}

// ShowPlaceholder starts the ephemeral spinner indicator. It runs in
// the background until HidePlaceholder or the next prompt.
func (p *Prompter) ShowPlaceholder(prompt wizard.StepPrompt) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.placeholder != nil {
		return
	}

	program := tea.NewProgram(newPlaceholderModel(prompt))
	p.placeholder = program
	go func() {
		_, _ = program.Run()
	}()
}

// HidePlaceholder stops a running placeholder, if any.
func (p *Prompter) HidePlaceholder() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.placeholder == nil {
		return
	}
	p.placeholder.Send(hideMsg{})
	p.placeholder.Wait()
	p.placeholder = nil
}

// Notify prints a consolidated user-facing message.
func (p *Prompter) Notify(message string) {
	p.HidePlaceholder()
	fmt.Fprintln(os.Stderr, message)
}
