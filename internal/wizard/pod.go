package wizard

import (
	"context"
	"fmt"
	"strings"
)

// enterPodPath is the entry point for an explicit pod target. Pods are
// never selected interactively; a missing name is a configuration
// error.
func (f *Flow) enterPodPath(ctx context.Context, st *runState, targetName string) (stepResult, error) {
	if targetName == "" {
		return stepResult{}, fmt.Errorf("a pod target requires an explicit pod name; interactive pod discovery is not supported")
	}

	// Isolation never applies to a pod target.
	st.totalSteps = totalStepsPod

	st.request.ResourceType = ResourceTypePod
	st.request.ResourceName = stableWorkloadName(targetName)
	st.request.TargetCluster = st.cluster.Cluster
	st.request.TargetNamespace = st.cluster.Namespace

	return continueWith(func(ctx context.Context, st *runState) (stepResult, error) {
		// Container lookup still uses the ephemeral pod name; only the
		// persisted identity is normalized.
		return f.resolveContainers(ctx, st, targetName)
	}), nil
}

// stableWorkloadName strips the last hyphen-delimited segment from a
// pod name, so the identity tracked across pod restarts is the owning
// workload's stable prefix (for example
// "myapp-7d9f8c6b5-abcde" -> "myapp-7d9f8c6b5"). A name without a
// hyphen is returned unchanged.
func stableWorkloadName(podName string) string {
	idx := strings.LastIndex(podName, "-")
	if idx <= 0 {
		return podName
	}
	return podName[:idx]
}
