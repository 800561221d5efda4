package kube

import (
	"fmt"

	"k8s.io/client-go/tools/clientcmd"
)

// CurrentContext reads the active kubeconfig context and returns its
// cluster and namespace. An empty namespace in the kubeconfig entry is
// normalized to "default".
var CurrentContext = func() (ClusterContext, error) {
	pathOptions := clientcmd.NewDefaultPathOptions()
	if pathOptions == nil {
		return ClusterContext{}, fmt.Errorf("failed to get default kubeconfig path options")
	}
	config, err := pathOptions.GetStartingConfig()
	if err != nil {
		return ClusterContext{}, fmt.Errorf("failed to get starting kubeconfig: %w", err)
	}
	if config.CurrentContext == "" {
		return ClusterContext{}, fmt.Errorf("current kubeconfig context is not set")
	}
	ctxEntry, ok := config.Contexts[config.CurrentContext]
	if !ok {
		return ClusterContext{}, fmt.Errorf("context %q not found in kubeconfig", config.CurrentContext)
	}

	namespace := ctxEntry.Namespace
	if namespace == "" {
		namespace = "default"
	}

	kubeconfigFilePath := pathOptions.GetDefaultFilename()
	if pathOptions.IsExplicitFile() {
		kubeconfigFilePath = pathOptions.GetExplicitFile()
	}

	return ClusterContext{
		KubeconfigPath: kubeconfigFilePath,
		Cluster:        ctxEntry.Cluster,
		Namespace:      namespace,
	}, nil
}
