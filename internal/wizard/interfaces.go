package wizard

import (
	"context"
	"errors"

	"kbridge/internal/config"
	"kbridge/internal/kube"
)

// ErrCanceled is returned by an Interactor when the user dismisses a
// prompt. Cancellation aborts the run without entering the
// failure-reporting path.
var ErrCanceled = errors.New("wizard: prompt canceled")

// ResourceClient is the cluster-discovery collaborator. Implemented by
// kube.Client in production and by fakes in tests. A nil slice from
// GetPodNames or GetContainerNames means the query yielded nothing.
type ResourceClient interface {
	ListNamespaces(ctx context.Context) ([]string, error)
	ListServices(ctx context.Context, namespace string) ([]kube.ServiceInfo, error)
	GetPodNames(ctx context.Context, serviceName, namespace string) ([]string, error)
	GetContainerNames(ctx context.Context, name, namespace string) ([]string, error)
}

// TunnelCapabilityClient is the opaque tunnel-capability handle. The
// wizard only observes its presence; the downstream session launcher
// is the actual consumer.
type TunnelCapabilityClient interface {
	Describe() string
}

// Interactor is the interaction surface the wizard drives. It owns
// rendering; the wizard owns all decision logic, which keeps the step
// chain testable with a scripted fake.
type Interactor interface {
	// ShowChoice presents a choice prompt and returns the selected
	// label, or ErrCanceled.
	ShowChoice(ctx context.Context, prompt StepPrompt) (string, error)
	// ShowTextInput presents a free-text prompt. validate returns an
	// empty string to accept the input or a message to re-prompt in
	// place; it never terminates the run.
	ShowTextInput(ctx context.Context, prompt StepPrompt, validate func(string) string) (string, error)
	// ShowPlaceholder displays an ephemeral "working" indicator before
	// a blocking call; HidePlaceholder removes it.
	ShowPlaceholder(prompt StepPrompt)
	HidePlaceholder()
	// Notify surfaces a consolidated user-facing message.
	Notify(message string)
}

// ConfigurationStore exposes the persisted run configurations,
// consumed read-only by the launch-configuration step, plus the
// external configuration-creation command.
type ConfigurationStore interface {
	List() ([]config.RunConfiguration, error)
	CreateNew() error
}

// Dependencies collects the external collaborators a Flow consumes.
// The Resources and Tunnel fields are provider functions because the
// orchestrator must fetch both handles at run start and may re-fetch
// the resource handle later; providers may return nil when the
// collaborator is unavailable.
type Dependencies struct {
	// CheckPrerequisites returns a user-notification callback if the
	// environment prerequisites fail, else nil.
	CheckPrerequisites func() func()

	Resources func() ResourceClient
	Tunnel    func() TunnelCapabilityClient

	CurrentContext func() (kube.ClusterContext, error)

	// RefreshCredentials reports whether cluster credentials are
	// usable. A false return aborts the run silently: the user must
	// fix their kubeconfig, which is not a program failure.
	RefreshCredentials func(ctx context.Context, cc kube.ClusterContext, tunnel TunnelCapabilityClient) bool

	Configs ConfigurationStore

	// Username resolves the local username used for routing-token
	// derivation.
	Username func() (string, error)
	// DeriveToken maps a local username to its per-developer routing
	// subdomain token. Deterministic per user, not per run.
	DeriveToken func(username string) string

	// OpenURL performs the external navigation side effect behind the
	// isolation step's "Learn more" choice.
	OpenURL func(url string) error

	Interactor Interactor
	Reporter   Reporter
}

// Reporter receives run lifecycle telemetry. A completion emission
// always occurs, whether the run succeeded, aborted, or failed.
type Reporter interface {
	FlowStarted(reason string)
	FlowFinished(outcome Outcome, err error)
}
