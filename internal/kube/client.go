package kube

import (
	"context"
	"fmt"
	"sync"
	"time"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/client-go/kubernetes"
	_ "k8s.io/client-go/plugin/pkg/client/auth" // Important for various auth providers
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"

	"kbridge/pkg/logging"
)

// Client wraps a client-go clientset for the discovery calls the
// connection wizard needs. The clientset is built lazily from the
// active kubeconfig context and cached for the lifetime of the Client.
type Client struct {
	mu        sync.Mutex
	clientset kubernetes.Interface
	config    *rest.Config
}

// NewClient returns a Client bound to the active kubeconfig context.
// The clientset is not built until the first API call.
func NewClient() *Client {
	return &Client{}
}

// NewClientForClientset returns a Client backed by an existing
// clientset. Used by tests and by callers that already hold one.
func NewClientForClientset(cs kubernetes.Interface) *Client {
	return &Client{clientset: cs}
}

func (c *Client) getClientset() (kubernetes.Interface, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.clientset != nil {
		return c.clientset, nil
	}

	loadingRules := clientcmd.NewDefaultClientConfigLoadingRules()
	kubeConfig := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(loadingRules, &clientcmd.ConfigOverrides{})

	restConfig, err := kubeConfig.ClientConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to get REST config for active context: %w", err)
	}
	restConfig.Timeout = 30 * time.Second

	clientset, err := kubernetes.NewForConfig(restConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kubernetes clientset: %w", err)
	}
	c.config = restConfig
	c.clientset = clientset
	return c.clientset, nil
}

// Clientset returns the underlying clientset, building it on first
// use.
func (c *Client) Clientset() (kubernetes.Interface, error) {
	return c.getClientset()
}

// RESTConfig returns the rest.Config the client was built from, or an
// error if the clientset has not been constructed yet.
func (c *Client) RESTConfig() (*rest.Config, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.config == nil {
		return nil, fmt.Errorf("kubernetes client not initialized")
	}
	return c.config, nil
}

// ListNamespaces returns the names of all namespaces in the active
// cluster.
func (c *Client) ListNamespaces(ctx context.Context) ([]string, error) {
	clientset, err := c.getClientset()
	if err != nil {
		return nil, err
	}
	nsList, err := clientset.CoreV1().Namespaces().List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list namespaces: %w", err)
	}
	names := make([]string, 0, len(nsList.Items))
	for _, ns := range nsList.Items {
		names = append(names, ns.Name)
	}
	return names, nil
}

// ListServices returns the services in the given namespace.
func (c *Client) ListServices(ctx context.Context, namespace string) ([]ServiceInfo, error) {
	clientset, err := c.getClientset()
	if err != nil {
		return nil, err
	}
	svcList, err := clientset.CoreV1().Services(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list services in namespace %q: %w", namespace, err)
	}
	services := make([]ServiceInfo, 0, len(svcList.Items))
	for _, svc := range svcList.Items {
		services = append(services, ServiceInfo{Name: svc.Name})
	}
	return services, nil
}

// GetPodNames returns the names of the pods backing the given service,
// resolved through the service's label selector. A service without a
// selector yields no pods.
func (c *Client) GetPodNames(ctx context.Context, serviceName, namespace string) ([]string, error) {
	clientset, err := c.getClientset()
	if err != nil {
		return nil, err
	}
	svc, err := clientset.CoreV1().Services(namespace).Get(ctx, serviceName, metav1.GetOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get service %s/%s: %w", namespace, serviceName, err)
	}
	if len(svc.Spec.Selector) == 0 {
		logging.Debug("Kube", "Service %s/%s has no selector, no backing pods", namespace, serviceName)
		return nil, nil
	}

	selector := labels.SelectorFromSet(svc.Spec.Selector)
	podList, err := clientset.CoreV1().Pods(namespace).List(ctx, metav1.ListOptions{LabelSelector: selector.String()})
	if err != nil {
		return nil, fmt.Errorf("failed to list pods for service %s/%s: %w", namespace, serviceName, err)
	}
	names := make([]string, 0, len(podList.Items))
	for _, pod := range podList.Items {
		names = append(names, pod.Name)
	}
	return names, nil
}

// GetContainerNames returns the container names of the given workload.
// The name is tried as a pod first; if no such pod exists it is treated
// as a service name and resolved through its first backing pod.
func (c *Client) GetContainerNames(ctx context.Context, name, namespace string) ([]string, error) {
	clientset, err := c.getClientset()
	if err != nil {
		return nil, err
	}

	pod, err := clientset.CoreV1().Pods(namespace).Get(ctx, name, metav1.GetOptions{})
	if err == nil {
		containers := make([]string, 0, len(pod.Spec.Containers))
		for _, container := range pod.Spec.Containers {
			containers = append(containers, container.Name)
		}
		return containers, nil
	}
	if !apierrors.IsNotFound(err) {
		return nil, fmt.Errorf("failed to get pod %s/%s: %w", namespace, name, err)
	}

	podNames, err := c.GetPodNames(ctx, name, namespace)
	if err != nil {
		return nil, err
	}
	if len(podNames) == 0 {
		return nil, nil
	}
	return c.GetContainerNames(ctx, podNames[0], namespace)
}

// RefreshCredentials verifies that the cluster behind the given context
// is reachable with the current credentials. It returns false instead
// of an error so callers can treat an expired kubeconfig as a
// user-recoverable condition rather than a failure.
func (c *Client) RefreshCredentials(ctx context.Context, cc ClusterContext) bool {
	clientset, err := c.getClientset()
	if err != nil {
		logging.Warn("Kube", "Credential refresh failed to build client for %s: %v", cc.Cluster, err)
		return false
	}

	pingCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	_, err = clientset.CoreV1().Pods(cc.Namespace).List(pingCtx, metav1.ListOptions{Limit: 1})
	if err != nil {
		logging.Warn("Kube", "Credential refresh ping against %s/%s failed: %v", cc.Cluster, cc.Namespace, err)
		return false
	}
	return true
}
