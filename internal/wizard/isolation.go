package wizard

import (
	"context"

	"kbridge/pkg/logging"
)

const (
	choiceIsolationNo        = "No"
	choiceIsolationYes       = "Yes"
	choiceIsolationLearnMore = "Learn more"

	isolationDocsURL = "https://kbridge.dev/docs/isolation"
)

// stepSelectIsolation is the sole terminal step. For a pod target
// isolation is inapplicable and the run completes immediately with the
// decision left unset; for a service target the user chooses whether
// redirected traffic is scoped to their per-developer routing
// subdomain.
func (f *Flow) stepSelectIsolation(ctx context.Context, st *runState) (stepResult, error) {
	if st.request.ResourceType == ResourceTypePod {
		st.complete = true
		return finish(OutcomeCompleted), nil
	}

	prompt := StepPrompt{
		Title:         "Isolate your traffic from other developers?",
		StepIndex:     st.nextStep(),
		TotalSteps:    st.totalSteps,
		Choices:       []string{choiceIsolationNo, choiceIsolationYes, choiceIsolationLearnMore},
		DefaultChoice: 0,
	}

	for {
		choice, err := f.deps.Interactor.ShowChoice(ctx, prompt)
		if err != nil {
			return stepResult{}, err
		}
		switch choice {
		case choiceIsolationLearnMore:
			// Side effect only; re-prompt without consuming a step or
			// mutating state.
			if err := f.deps.OpenURL(isolationDocsURL); err != nil {
				logging.Warn(logSubsystem, "Could not open isolation documentation: %v", err)
			}
			continue
		case choiceIsolationYes:
			st.request.Isolation = IsolationEnabled
			st.request.IsolateAs = st.routingToken
		default:
			// Explicit opt-out, distinguishable from "not applicable".
			st.request.Isolation = IsolationNone
			st.request.IsolateAs = ""
		}
		st.complete = true
		return finish(OutcomeCompleted), nil
	}
}
