package wizard

import (
	"context"
	"fmt"
	"slices"
	"sort"

	"kbridge/pkg/logging"
)

// excludedInfraService is the routing-manager's own service, which is
// infrastructure and never offered as a redirect target.
const excludedInfraService = "routingmanager-service"

// stepPickService resolves the service target and its backing pods
// before delegating to container resolution. A non-empty preselected
// name (already prevalidated against the active context) is accepted
// directly after confirming it exists; otherwise the user picks from
// the services in the active namespace.
func (f *Flow) stepPickService(ctx context.Context, st *runState, preselected string) (stepResult, error) {
	// Re-fetch the handle; the provider may cache it.
	resources := f.deps.Resources()
	if resources == nil {
		return stepResult{}, fmt.Errorf("resource client became unavailable")
	}

	st.request.ResourceType = ResourceTypeService
	st.request.TargetCluster = st.cluster.Cluster
	st.request.TargetNamespace = st.cluster.Namespace

	services, err := resources.ListServices(ctx, st.cluster.Namespace)
	if err != nil {
		return stepResult{}, fmt.Errorf("failed to list services in namespace %q: %w", st.cluster.Namespace, err)
	}

	names := make([]string, 0, len(services))
	for _, svc := range services {
		if svc.Name == excludedInfraService {
			continue
		}
		names = append(names, svc.Name)
	}
	if len(names) == 0 {
		return stepResult{}, fmt.Errorf("no services found in namespace %q of cluster %q", st.cluster.Namespace, st.cluster.Cluster)
	}
	sort.Strings(names)

	choice := preselected
	if choice == "" {
		choice, err = f.deps.Interactor.ShowChoice(ctx, StepPrompt{
			Title:         "Choose a service to redirect to your machine",
			StepIndex:     st.nextStep(),
			TotalSteps:    st.totalSteps,
			Choices:       names,
			DefaultChoice: 0,
		})
		if err != nil {
			return stepResult{}, err
		}
	} else {
		if !slices.Contains(names, choice) {
			return stepResult{}, fmt.Errorf("service %q not found in namespace %q of cluster %q", choice, st.cluster.Namespace, st.cluster.Cluster)
		}
		// The selection prompt is skipped, so later prompts renumber.
		st.totalSteps--
	}
	st.request.ResourceName = choice

	podNames, err := resources.GetPodNames(ctx, choice, st.cluster.Namespace)
	if err != nil {
		logging.Warn(logSubsystem, "Could not resolve pods backing service %q: %v", choice, err)
		podNames = nil
	}
	if len(podNames) == 0 {
		logging.Debug(logSubsystem, "Service %q has no backing pods, skipping container selection", choice)
		st.request.ContainerName = ""
		return continueWith(f.stepCollectPort), nil
	}

	// Multiple pods backing one service are assumed
	// container-homogeneous, so the first element stands in for all of
	// them even though the list order is not defined. Inherited
	// assumption, preserved as-is.
	podName := podNames[0]

	return continueWith(func(ctx context.Context, st *runState) (stepResult, error) {
		return f.resolveContainers(ctx, st, podName)
	}), nil
}
