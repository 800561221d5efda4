package capability

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/client-go/tools/clientcmd/api"
)

func writeKubeconfig(t *testing.T, config api.Config) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kubeconfig")
	if err := clientcmd.WriteToFile(config, path); err != nil {
		t.Fatalf("Failed to write temp kubeconfig: %v", err)
	}
	return path
}

func validKubeconfig() api.Config {
	return api.Config{
		CurrentContext: "dev-context",
		Contexts: map[string]*api.Context{
			"dev-context": {Cluster: "dev-cluster"},
		},
		Clusters: map[string]*api.Cluster{
			"dev-cluster": {Server: "https://localhost:8080"},
		},
	}
}

func TestCheckPrerequisitesPasses(t *testing.T) {
	t.Setenv("KUBECONFIG", writeKubeconfig(t, validKubeconfig()))

	notify := CheckPrerequisites(func(string) { t.Error("no notification expected") })
	assert.Nil(t, notify)
}

func TestCheckPrerequisitesMissingKubeconfig(t *testing.T) {
	t.Setenv("KUBECONFIG", filepath.Join(t.TempDir(), "does-not-exist"))

	var message string
	notify := CheckPrerequisites(func(m string) { message = m })
	require.NotNil(t, notify)

	notify()
	assert.Contains(t, message, "No kubeconfig found")
}

func TestCheckPrerequisitesNoCurrentContext(t *testing.T) {
	config := validKubeconfig()
	config.CurrentContext = ""
	t.Setenv("KUBECONFIG", writeKubeconfig(t, config))

	var message string
	notify := CheckPrerequisites(func(m string) { message = m })
	require.NotNil(t, notify)

	notify()
	assert.Contains(t, message, "No current kubeconfig context")
}

func TestDetectTunnel(t *testing.T) {
	t.Setenv("KUBECONFIG", writeKubeconfig(t, validKubeconfig()))

	tunnel := DetectTunnel()
	require.NotNil(t, tunnel)
	assert.Contains(t, tunnel.Describe(), "dev-context")
}

func TestDetectTunnelWithoutContext(t *testing.T) {
	config := validKubeconfig()
	config.CurrentContext = ""
	t.Setenv("KUBECONFIG", writeKubeconfig(t, config))

	assert.Nil(t, DetectTunnel())
}
