package wizard

import "fmt"

// ResourceType identifies the kind of workload a connection targets.
type ResourceType string

const (
	ResourceTypePod     ResourceType = "pod"
	ResourceTypeService ResourceType = "service"
)

// IsolationMode records the outcome of the isolation step.
//
// IsolationUndecided covers both "not yet decided" and "not
// applicable" (the pod path never presents the step). IsolationNone is
// an explicit opt-out and is distinguishable from undecided.
type IsolationMode int

const (
	IsolationUndecided IsolationMode = iota
	IsolationNone
	IsolationEnabled
)

func (m IsolationMode) String() string {
	switch m {
	case IsolationNone:
		return "none"
	case IsolationEnabled:
		return "enabled"
	default:
		return "undecided"
	}
}

// ConnectionRequest is the accumulator threaded through the step
// chain. It is exclusively owned by the running flow and mutated in
// place by the currently executing step; on successful completion it
// is promoted to an immutable ConnectionDescriptor.
type ConnectionRequest struct {
	ResourceName            string
	ResourceType            ResourceType
	TargetCluster           string
	TargetNamespace         string
	ContainerName           string
	Ports                   []int
	LaunchConfigurationName string
	Isolation               IsolationMode
	IsolateAs               string
}

// ConnectionDescriptor is the immutable result of a completed run,
// handed to the downstream debug-session launcher.
type ConnectionDescriptor struct {
	ResourceName            string        `json:"resourceName"`
	ResourceType            ResourceType  `json:"resourceType"`
	TargetCluster           string        `json:"targetCluster"`
	TargetNamespace         string        `json:"targetNamespace"`
	ContainerName           string        `json:"containerName,omitempty"`
	Ports                   []int         `json:"ports"`
	LaunchConfigurationName string        `json:"launchConfigurationName,omitempty"`
	Isolation               IsolationMode `json:"-"`
	IsolateAs               string        `json:"isolateAs,omitempty"`
}

// StepPrompt is the presentation-facing metadata for one interaction.
// It is recomputed before each prompt so step indices stay correct
// when a branch is skipped.
type StepPrompt struct {
	Title       string
	StepIndex   int
	TotalSteps  int
	Placeholder string
	Choices     []string
	// DefaultChoice is the index pre-highlighted in a choice prompt.
	DefaultChoice int
}

// Heading renders the "Step N of M: Title" form used by the
// interaction surface. Prompts outside the numbered sequence (index 0)
// render the bare title.
func (p StepPrompt) Heading() string {
	if p.StepIndex <= 0 {
		return p.Title
	}
	return fmt.Sprintf("Step %d of %d: %s", p.StepIndex, p.TotalSteps, p.Title)
}

// Outcome classifies how a run ended.
type Outcome string

const (
	OutcomeCompleted      Outcome = "completed"
	OutcomeCanceled       Outcome = "canceled"
	OutcomeAborted        Outcome = "aborted"
	OutcomeAwaitingConfig Outcome = "awaiting-configuration"
	OutcomeFailed         Outcome = "failed"
)
