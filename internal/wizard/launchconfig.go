package wizard

import (
	"context"
	"fmt"

	"kbridge/pkg/logging"
)

const (
	choiceCreateConfig  = "Create a new run configuration"
	choiceWithoutConfig = "Proceed without a run configuration"
)

// stepSelectLaunchConfig offers the existing run configurations,
// excluding ones this flow (or a legacy variant of it) generated
// itself, plus the two synthetic choices. Choosing to create a new
// configuration ends the run without a descriptor, as a distinct
// outcome from cancellation.
func (f *Flow) stepSelectLaunchConfig(ctx context.Context, st *runState) (stepResult, error) {
	existing, err := f.deps.Configs.List()
	if err != nil {
		return stepResult{}, fmt.Errorf("failed to read run configurations: %w", err)
	}

	choices := make([]string, 0, len(existing)+2)
	for _, cfg := range existing {
		if cfg.GeneratedByConnect() {
			// Never let the user chain an already-generated
			// configuration back into the flow.
			continue
		}
		choices = append(choices, cfg.Name)
	}
	choices = append(choices, choiceCreateConfig, choiceWithoutConfig)

	choice, err := f.deps.Interactor.ShowChoice(ctx, StepPrompt{
		Title:         "Choose a run configuration to launch with the connection",
		StepIndex:     st.nextStep(),
		TotalSteps:    st.totalSteps,
		Choices:       choices,
		DefaultChoice: 0,
	})
	if err != nil {
		return stepResult{}, err
	}

	switch choice {
	case choiceCreateConfig:
		if err := f.deps.Configs.CreateNew(); err != nil {
			return stepResult{}, fmt.Errorf("failed to trigger configuration creation: %w", err)
		}
		logging.Info(logSubsystem, "Awaiting externally created run configuration, ending run")
		return finish(OutcomeAwaitingConfig), nil
	case choiceWithoutConfig:
		st.request.LaunchConfigurationName = ""
	default:
		st.request.LaunchConfigurationName = choice
	}

	username, err := f.deps.Username()
	if err != nil {
		return stepResult{}, fmt.Errorf("failed to resolve local username: %w", err)
	}
	st.routingToken = f.deps.DeriveToken(username)

	return continueWith(f.stepSelectIsolation), nil
}
