package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStableWorkloadName(t *testing.T) {
	tests := []struct {
		name    string
		podName string
		want    string
	}{
		{name: "replicaset pod", podName: "myapp-7d9f8c6b5-abcde", want: "myapp-7d9f8c6b5"},
		{name: "statefulset pod", podName: "db-0", want: "db"},
		{name: "no hyphen", podName: "standalone", want: "standalone"},
		{name: "leading hyphen only", podName: "-abcde", want: "-abcde"},
		{name: "trailing hyphen", podName: "myapp-", want: "myapp"},
		{name: "empty", podName: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stableWorkloadName(tt.podName))
		})
	}
}

func TestStepPromptHeading(t *testing.T) {
	numbered := StepPrompt{Title: "Choose a container", StepIndex: 2, TotalSteps: 5}
	assert.Equal(t, "Step 2 of 5: Choose a container", numbered.Heading())

	unnumbered := StepPrompt{Title: "Preparing connection"}
	assert.Equal(t, "Preparing connection", unnumbered.Heading())
}
