package kube

// ClusterContext is a read-only snapshot of the active kubeconfig
// context, fetched once per wizard run. Steps observe a consistent
// cluster/namespace pair because the snapshot is never refetched
// mid-run.
type ClusterContext struct {
	KubeconfigPath string
	Cluster        string
	Namespace      string
}

// ServiceInfo describes a service offered for selection.
type ServiceInfo struct {
	Name string
}
