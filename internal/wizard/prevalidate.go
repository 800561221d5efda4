package wizard

import (
	"context"
	"fmt"
	"slices"

	"kbridge/pkg/logging"
)

// prevalidate reconciles a caller-supplied target against the active
// cluster context before the interactive chain starts. It returns
// errAbortRun for the silent "user must fix kubeconfig" case and a
// regular error for fatal mismatches.
func (f *Flow) prevalidate(ctx context.Context, st *runState, targetName, targetNamespace string, resources ResourceClient, tunnel TunnelCapabilityClient) error {
	// Instant feedback before the first blocking call.
	f.deps.Interactor.ShowPlaceholder(StepPrompt{
		Title:       "Preparing connection",
		Placeholder: fmt.Sprintf("Contacting cluster %s...", st.cluster.Cluster),
	})
	defer f.deps.Interactor.HidePlaceholder()

	if !f.deps.RefreshCredentials(ctx, st.cluster, tunnel) {
		logging.Info(logSubsystem, "Credential refresh failed for cluster %q, aborting", st.cluster.Cluster)
		return errAbortRun
	}

	if targetName == "" {
		// No preselection; the caller picks interactively.
		return nil
	}

	if targetNamespace != "" && targetNamespace != st.cluster.Namespace {
		return fmt.Errorf("target namespace %q conflicts with the active context namespace %q; switch your kubeconfig context first",
			targetNamespace, st.cluster.Namespace)
	}

	// Best-effort cross-check: unknown namespaces are tolerated, a
	// confirmed-absent one is not.
	if targetNamespace != "" {
		namespaces, err := resources.ListNamespaces(ctx)
		if err != nil {
			logging.Warn(logSubsystem, "Could not list namespaces to validate target %q: %v", targetNamespace, err)
			return nil
		}
		if !slices.Contains(namespaces, targetNamespace) {
			return fmt.Errorf("namespace %q does not exist in cluster %q; the target cannot belong to the active cluster",
				targetNamespace, st.cluster.Cluster)
		}
	}
	return nil
}
