package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"os/user"
	"runtime"
	"syscall"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"kbridge/internal/capability"
	"kbridge/internal/config"
	"kbridge/internal/kube"
	"kbridge/internal/routing"
	"kbridge/internal/session"
	"kbridge/internal/telemetry"
	"kbridge/internal/tui"
	"kbridge/internal/wizard"
)

var (
	connectNamespace string
	connectPod       bool
	connectCopy      bool
	connectNoFwd     bool
)

func newConnectCmd() *cobra.Command {
	connectCmd := &cobra.Command{
		Use:   "connect [target-name]",
		Short: "Resolve a workload and redirect it to your local machine",
		Long: `Resolves the workload to redirect through an interactive wizard and
prepares the connection descriptor for the local debug session.

Without arguments, the wizard lists the services in the active
namespace and walks through container selection, local port, run
configuration, and traffic isolation. With --pod, the (required)
target-name argument names the pod to connect to directly; pod targets
skip the isolation step.

The resulting connection descriptor is printed as JSON. Unless
--no-forward is given (or the chosen port is 0), kbridge then keeps a
port-forward open from the chosen local port to the resolved workload
until interrupted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runConnect,
	}

	connectCmd.Flags().StringVarP(&connectNamespace, "namespace", "n", "", "Namespace of the target workload (must match the active context)")
	connectCmd.Flags().BoolVar(&connectPod, "pod", false, "Treat target-name as a pod instead of a service")
	connectCmd.Flags().BoolVar(&connectCopy, "copy", false, "Copy the connection descriptor JSON to the clipboard")
	connectCmd.Flags().BoolVar(&connectNoFwd, "no-forward", false, "Print the descriptor without starting a port-forward")
	return connectCmd
}

func runConnect(cmd *cobra.Command, args []string) error {
	targetName := ""
	if len(args) == 1 {
		targetName = args[0]
	}
	targetType := wizard.ResourceTypeService
	if connectPod {
		targetType = wizard.ResourceTypePod
	}

	store, err := config.NewStore("")
	if err != nil {
		return fmt.Errorf("failed to open configuration store: %w", err)
	}

	kubeClient := kube.NewClient()
	prompter := tui.NewPrompter()

	deps := wizard.Dependencies{
		CheckPrerequisites: func() func() {
			return capability.CheckPrerequisites(prompter.Notify)
		},
		Resources: func() wizard.ResourceClient {
			return kubeClient
		},
		Tunnel: func() wizard.TunnelCapabilityClient {
			if tunnel := capability.DetectTunnel(); tunnel != nil {
				return tunnel
			}
			return nil
		},
		CurrentContext: kube.CurrentContext,
		RefreshCredentials: func(ctx context.Context, cc kube.ClusterContext, _ wizard.TunnelCapabilityClient) bool {
			return kubeClient.RefreshCredentials(ctx, cc)
		},
		Configs: store,
		Username: func() (string, error) {
			current, err := user.Current()
			if err != nil {
				return "", fmt.Errorf("failed to resolve current user: %w", err)
			}
			return current.Username, nil
		},
		DeriveToken: routing.DeriveToken,
		OpenURL:     openURL,
		Interactor:  prompter,
		Reporter:    telemetry.NewLogReporter(),
	}

	desc := wizard.NewFlow(deps).Run(cmd.Context(), "cli", targetName, connectNamespace, targetType)
	if desc == nil {
		// The wizard already surfaced whatever there was to say.
		return nil
	}

	encoded, err := json.MarshalIndent(desc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode connection descriptor: %w", err)
	}
	fmt.Println(string(encoded))

	if connectCopy {
		if err := clipboard.WriteAll(string(encoded)); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not copy descriptor to clipboard: %v\n", err)
		} else {
			fmt.Fprintln(os.Stderr, "Connection descriptor copied to clipboard.")
		}
	}

	if connectNoFwd || len(desc.Ports) == 0 || desc.Ports[0] == wizard.NoRedirectPort {
		return nil
	}

	clientset, err := kubeClient.Clientset()
	if err != nil {
		return fmt.Errorf("failed to build Kubernetes client for port-forward: %w", err)
	}
	restConfig, err := kubeClient.RESTConfig()
	if err != nil {
		return fmt.Errorf("failed to get REST config for port-forward: %w", err)
	}

	stopChan, err := session.NewForwarder(clientset, restConfig).Start(cmd.Context(), desc)
	if err != nil {
		return fmt.Errorf("failed to start port-forward: %w", err)
	}

	fmt.Printf("Forwarding 127.0.0.1:%d to %s/%s. Press Ctrl+C to stop.\n", desc.Ports[0], desc.TargetNamespace, desc.ResourceName)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	fmt.Println("\nStopping port-forward...")
	close(stopChan)
	return nil
}

// openURL opens url in the default browser.
func openURL(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}
