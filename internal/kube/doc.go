// Package kube provides the Kubernetes discovery layer for kbridge.
//
// It wraps a client-go clientset with the narrow set of calls the
// connection wizard needs: reading the active kubeconfig context,
// listing namespaces and services, resolving the pods backing a
// service through its label selector, and enumerating a workload's
// container names. It also exposes a credential-refresh ping used by
// the wizard's prevalidation step.
//
// All listing calls take a context.Context and return wrapped errors;
// RefreshCredentials deliberately returns a bool instead, because an
// unreachable cluster is a user-recoverable kubeconfig problem, not a
// program failure.
package kube
