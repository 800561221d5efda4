// Package capability gates the connection wizard on environment
// prerequisites and probes whether the active cluster context can
// carry a debug tunnel at all.
package capability

import (
	"fmt"
	"os"

	"k8s.io/client-go/tools/clientcmd"

	"kbridge/pkg/logging"
)

// TunnelClient is the tunnel-capability handle. The wizard only
// observes its presence; the session launcher uses the REST
// configuration it was probed with.
type TunnelClient struct {
	contextName string
}

// Describe returns a short human-readable description of the probed
// capability.
func (t *TunnelClient) Describe() string {
	return fmt.Sprintf("port-forward tunnel via context %q", t.contextName)
}

// DetectTunnel probes the active kubeconfig context for tunnel
// capability. It returns nil when no usable client configuration can
// be built; the wizard treats a nil handle as "flow may not start".
func DetectTunnel() *TunnelClient {
	loadingRules := clientcmd.NewDefaultClientConfigLoadingRules()
	kubeConfig := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(loadingRules, &clientcmd.ConfigOverrides{})

	rawConfig, err := kubeConfig.RawConfig()
	if err != nil || rawConfig.CurrentContext == "" {
		logging.Debug("Capability", "No usable kubeconfig context for tunnel probe: %v", err)
		return nil
	}
	if _, err := kubeConfig.ClientConfig(); err != nil {
		logging.Debug("Capability", "Could not build REST config for context %q: %v", rawConfig.CurrentContext, err)
		return nil
	}
	return &TunnelClient{contextName: rawConfig.CurrentContext}
}

// CheckPrerequisites verifies the environment before any interactive
// step runs. It returns nil when all prerequisites hold, else a
// callback that tells the user what to fix.
func CheckPrerequisites(notify func(message string)) func() {
	loadingRules := clientcmd.NewDefaultClientConfigLoadingRules()
	kubeconfigPath := loadingRules.GetDefaultFilename()

	if _, err := os.Stat(kubeconfigPath); err != nil {
		return func() {
			notify(fmt.Sprintf("No kubeconfig found at %s. Configure cluster access before connecting.", kubeconfigPath))
		}
	}

	kubeConfig := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(loadingRules, &clientcmd.ConfigOverrides{})
	rawConfig, err := kubeConfig.RawConfig()
	if err != nil {
		return func() {
			notify(fmt.Sprintf("Could not read kubeconfig at %s: %v", kubeconfigPath, err))
		}
	}
	if rawConfig.CurrentContext == "" {
		return func() {
			notify("No current kubeconfig context is set. Select one with 'kubectl config use-context'.")
		}
	}
	return nil
}
