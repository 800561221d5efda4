package session

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/portforward"
	"k8s.io/client-go/transport/spdy"

	"kbridge/internal/wizard"
	"kbridge/pkg/logging"
)

const logSubsystem = "Session"

// Forwarder runs the local debug session for a completed connection:
// a port-forward from 127.0.0.1:<port> to the resolved workload pod.
type Forwarder struct {
	clientset kubernetes.Interface
	config    *rest.Config
}

// NewForwarder returns a Forwarder over an existing clientset and its
// REST config.
func NewForwarder(clientset kubernetes.Interface, config *rest.Config) *Forwarder {
	return &Forwarder{clientset: clientset, config: config}
}

// Start resolves the descriptor's workload to a concrete pod and
// forwards the descriptor's port to it. It returns a stop channel;
// closing it terminates the forward. A descriptor with the
// no-redirection sentinel port is rejected by the caller, not here.
func (f *Forwarder) Start(ctx context.Context, desc *wizard.ConnectionDescriptor) (chan struct{}, error) {
	if len(desc.Ports) == 0 {
		return nil, fmt.Errorf("descriptor has no port to forward")
	}
	port := desc.Ports[0]

	podName, err := f.resolvePod(ctx, desc)
	if err != nil {
		return nil, err
	}

	reqURL := f.clientset.CoreV1().RESTClient().Post().
		Resource("pods").
		Namespace(desc.TargetNamespace).
		Name(podName).
		SubResource("portforward").
		URL()

	transport, upgrader, err := spdy.RoundTripperFor(f.config)
	if err != nil {
		return nil, fmt.Errorf("failed to create SPDY round tripper: %w", err)
	}
	dialer := spdy.NewDialer(upgrader, &http.Client{Transport: transport}, http.MethodPost, reqURL)

	stopChan := make(chan struct{}, 1)
	readyChan := make(chan struct{})

	ports := []string{fmt.Sprintf("%d:%d", port, port)}
	addresses := []string{"127.0.0.1"}

	forwarder, err := portforward.NewOnAddresses(dialer, addresses, ports, stopChan, readyChan, logWriter{}, logWriter{asError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to create port forwarder: %w", err)
	}

	logging.Info(logSubsystem, "Forwarding 127.0.0.1:%d -> %s/%s (pod %s)", port, desc.TargetNamespace, desc.ResourceName, podName)

	errChan := make(chan error, 1)
	go func() {
		errChan <- forwarder.ForwardPorts()
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return nil, fmt.Errorf("port forward to pod %q failed: %w", podName, err)
		}
		return nil, fmt.Errorf("port forward to pod %q closed before becoming ready", podName)
	case <-readyChan:
		logging.Info(logSubsystem, "Port forward ready on 127.0.0.1:%d", port)
	case <-ctx.Done():
		close(stopChan)
		return nil, ctx.Err()
	case <-time.After(60 * time.Second):
		close(stopChan)
		return nil, fmt.Errorf("timed out waiting for port forward to pod %q", podName)
	}

	go func() {
		if err := <-errChan; err != nil {
			logging.Error(logSubsystem, err, "Port forward to pod %q terminated", podName)
		}
	}()

	return stopChan, nil
}

// resolvePod maps the descriptor's workload identity to a concrete,
// preferably ready, pod name.
func (f *Forwarder) resolvePod(ctx context.Context, desc *wizard.ConnectionDescriptor) (string, error) {
	switch desc.ResourceType {
	case wizard.ResourceTypeService:
		return f.resolveServicePod(ctx, desc.ResourceName, desc.TargetNamespace)
	case wizard.ResourceTypePod:
		return f.resolveWorkloadPod(ctx, desc.ResourceName, desc.TargetNamespace)
	default:
		return "", fmt.Errorf("unsupported resource type %q", desc.ResourceType)
	}
}

// resolveServicePod finds a ready pod behind the service's label
// selector.
func (f *Forwarder) resolveServicePod(ctx context.Context, serviceName, namespace string) (string, error) {
	svc, err := f.clientset.CoreV1().Services(namespace).Get(ctx, serviceName, metav1.GetOptions{})
	if err != nil {
		return "", fmt.Errorf("failed to get service %s/%s: %w", namespace, serviceName, err)
	}
	if len(svc.Spec.Selector) == 0 {
		return "", fmt.Errorf("service %s/%s has no selector, cannot find backing pods", namespace, serviceName)
	}

	selector := labels.SelectorFromSet(svc.Spec.Selector)
	podList, err := f.clientset.CoreV1().Pods(namespace).List(ctx, metav1.ListOptions{LabelSelector: selector.String()})
	if err != nil {
		return "", fmt.Errorf("failed to list pods for service %s/%s: %w", namespace, serviceName, err)
	}
	pod := PickReadyPod(podList.Items)
	if pod == "" {
		return "", fmt.Errorf("no ready pods found for service %s/%s (selector: %s)", namespace, serviceName, selector.String())
	}
	return pod, nil
}

// resolveWorkloadPod finds a ready pod whose name matches the stable
// workload prefix the wizard persisted. Pod restarts change the final
// hyphen segment only, so matching the prefix tracks the workload
// across restarts.
func (f *Forwarder) resolveWorkloadPod(ctx context.Context, workloadName, namespace string) (string, error) {
	podList, err := f.clientset.CoreV1().Pods(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return "", fmt.Errorf("failed to list pods in namespace %q: %w", namespace, err)
	}
	var candidates []corev1.Pod
	for _, pod := range podList.Items {
		if pod.Name == workloadName || strings.HasPrefix(pod.Name, workloadName+"-") {
			candidates = append(candidates, pod)
		}
	}
	if len(candidates) == 0 {
		return "", fmt.Errorf("no pods matching workload %q found in namespace %q", workloadName, namespace)
	}
	pod := PickReadyPod(candidates)
	if pod == "" {
		return "", fmt.Errorf("no ready pods matching workload %q in namespace %q", workloadName, namespace)
	}
	return pod, nil
}

// PickReadyPod returns the name of the first running pod whose
// containers are all ready, or "" if there is none.
func PickReadyPod(pods []corev1.Pod) string {
	for _, pod := range pods {
		if pod.Status.Phase != corev1.PodRunning {
			continue
		}
		ready := false
		for _, cond := range pod.Status.Conditions {
			if cond.Type == corev1.PodReady && cond.Status == corev1.ConditionTrue {
				ready = true
				break
			}
		}
		if !ready {
			continue
		}
		allContainersReady := true
		if len(pod.Status.ContainerStatuses) == 0 && len(pod.Spec.Containers) > 0 {
			// Running but container statuses not reported yet.
			allContainersReady = false
		}
		for _, cs := range pod.Status.ContainerStatuses {
			if !cs.Ready {
				allContainersReady = false
				break
			}
		}
		if allContainersReady {
			return pod.Name
		}
	}
	return ""
}

// logWriter relays client-go's port-forward output into the logging
// package.
type logWriter struct {
	asError bool
}

func (w logWriter) Write(p []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimSuffix(string(p), "\n"), "\n") {
		if line == "" {
			continue
		}
		if w.asError {
			logging.Warn(logSubsystem, "%s", line)
		} else {
			logging.Debug(logSubsystem, "%s", line)
		}
	}
	return len(p), nil
}
