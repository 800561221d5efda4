package wizard

import (
	"context"
	"sort"

	"kbridge/pkg/logging"
)

// resolveContainers determines whether container disambiguation is
// needed for the given pod and presents a choice if so. It degrades
// gracefully on every missing precondition and always continues to
// port collection; it never terminates the run. Safe to re-enter: the
// container name is reset before anything else.
func (f *Flow) resolveContainers(ctx context.Context, st *runState, podName string) (stepResult, error) {
	st.request.ContainerName = ""

	if podName == "" {
		logging.Debug(logSubsystem, "No pod name available, skipping container selection")
		return continueWith(f.stepCollectPort), nil
	}
	if st.request.TargetNamespace == "" {
		logging.Debug(logSubsystem, "Target namespace not set, skipping container selection")
		return continueWith(f.stepCollectPort), nil
	}

	resources := f.deps.Resources()
	containers, err := resources.GetContainerNames(ctx, podName, st.request.TargetNamespace)
	if err != nil {
		logging.Warn(logSubsystem, "Could not list containers of pod %q: %v", podName, err)
		return continueWith(f.stepCollectPort), nil
	}
	if len(containers) == 0 {
		logging.Debug(logSubsystem, "Container query for pod %q returned nothing, skipping selection", podName)
		return continueWith(f.stepCollectPort), nil
	}

	if len(containers) == 1 {
		st.request.ContainerName = containers[0]
		if st.request.ResourceType == ResourceTypePod {
			// The pod path budgets a step for disambiguation; it is
			// not needed, so later prompts renumber.
			st.totalSteps--
		}
		return continueWith(f.stepCollectPort), nil
	}

	sorted := make([]string, len(containers))
	copy(sorted, containers)
	sort.Strings(sorted)

	if st.request.ResourceType == ResourceTypeService {
		// The service path budgets no disambiguation step; recompute
		// the total before presenting one.
		st.totalSteps++
	}

	choice, err := f.deps.Interactor.ShowChoice(ctx, StepPrompt{
		Title:         "Choose a container",
		StepIndex:     st.nextStep(),
		TotalSteps:    st.totalSteps,
		Choices:       sorted,
		DefaultChoice: 0,
	})
	if err != nil {
		return stepResult{}, err
	}
	st.request.ContainerName = choice

	return continueWith(f.stepCollectPort), nil
}
