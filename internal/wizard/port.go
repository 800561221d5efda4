package wizard

import (
	"context"
	"strconv"
	"strings"
)

const (
	// NoRedirectPort is the explicit "no redirection" sentinel.
	NoRedirectPort = 0

	maxPort = 65535

	msgPortRequired = "A value is required (enter 0 to skip redirection)"
	msgPortRange    = "Port must be between 0 and 65535"
)

// ValidatePortInput checks a raw port string. It returns an empty
// string when the input is acceptable and a re-prompt message
// otherwise; validation never fails the run.
func ValidatePortInput(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return msgPortRequired
	}
	port, err := strconv.Atoi(trimmed)
	if err != nil || port < 0 || port > maxPort {
		return msgPortRange
	}
	return ""
}

// stepCollectPort prompts for the local port to redirect to. An
// accepted value of 0 means the session is prepared without a local
// redirection.
func (f *Flow) stepCollectPort(ctx context.Context, st *runState) (stepResult, error) {
	input, err := f.deps.Interactor.ShowTextInput(ctx, StepPrompt{
		Title:       "Enter the local port to redirect traffic to",
		StepIndex:   st.nextStep(),
		TotalSteps:  st.totalSteps,
		Placeholder: "e.g. 8080, or 0 for no redirection",
	}, ValidatePortInput)
	if err != nil {
		return stepResult{}, err
	}

	port, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		// The validator guarantees a parseable value; this is a
		// misbehaving interaction surface.
		return stepResult{}, err
	}

	// Multi-port redirection is not supported by this flow.
	st.request.Ports = []int{port}

	return continueWith(f.stepSelectLaunchConfig), nil
}
