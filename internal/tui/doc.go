// Package tui renders the connection wizard's prompts in the
// terminal: a titled steppable picker, a validated text input, and an
// ephemeral placeholder spinner. It implements wizard.Interactor; all
// decision logic stays in the wizard package.
package tui
