package wizard

import (
	"context"
	"fmt"

	"kbridge/internal/config"
	"kbridge/internal/kube"
)

// fakeResources is a scriptable ResourceClient that records its calls.
type fakeResources struct {
	namespaces    []string
	namespacesErr error

	services    []kube.ServiceInfo
	servicesErr error

	pods    map[string][]string
	podsErr error

	containers    map[string][]string
	containersErr error

	calls []string
}

func (f *fakeResources) ListNamespaces(ctx context.Context) ([]string, error) {
	f.calls = append(f.calls, "ListNamespaces")
	return f.namespaces, f.namespacesErr
}

func (f *fakeResources) ListServices(ctx context.Context, namespace string) ([]kube.ServiceInfo, error) {
	f.calls = append(f.calls, "ListServices:"+namespace)
	return f.services, f.servicesErr
}

func (f *fakeResources) GetPodNames(ctx context.Context, serviceName, namespace string) ([]string, error) {
	f.calls = append(f.calls, "GetPodNames:"+serviceName)
	return f.pods[serviceName], f.podsErr
}

func (f *fakeResources) GetContainerNames(ctx context.Context, name, namespace string) ([]string, error) {
	f.calls = append(f.calls, "GetContainerNames:"+name)
	return f.containers[name], f.containersErr
}

// scriptedInteractor replays queued prompt responses and records every
// prompt it was shown.
type scriptedInteractor struct {
	choiceResponses []func(StepPrompt) (string, error)
	textResponses   []func(StepPrompt) (string, error)

	choicePrompts []StepPrompt
	textPrompts   []StepPrompt
	notifications []string
	placeholders  int
}

func respondWith(label string) func(StepPrompt) (string, error) {
	return func(StepPrompt) (string, error) { return label, nil }
}

func respondCancel() func(StepPrompt) (string, error) {
	return func(StepPrompt) (string, error) { return "", ErrCanceled }
}

// respondDefault picks whatever choice is pre-highlighted.
func respondDefault() func(StepPrompt) (string, error) {
	return func(p StepPrompt) (string, error) {
		if p.DefaultChoice < 0 || p.DefaultChoice >= len(p.Choices) {
			return "", fmt.Errorf("default choice out of range")
		}
		return p.Choices[p.DefaultChoice], nil
	}
}

func (s *scriptedInteractor) ShowChoice(ctx context.Context, prompt StepPrompt) (string, error) {
	s.choicePrompts = append(s.choicePrompts, prompt)
	if len(s.choiceResponses) == 0 {
		return "", fmt.Errorf("unexpected choice prompt %q", prompt.Title)
	}
	next := s.choiceResponses[0]
	s.choiceResponses = s.choiceResponses[1:]
	return next(prompt)
}

func (s *scriptedInteractor) ShowTextInput(ctx context.Context, prompt StepPrompt, validate func(string) string) (string, error) {
	s.textPrompts = append(s.textPrompts, prompt)
	if len(s.textResponses) == 0 {
		return "", fmt.Errorf("unexpected text prompt %q", prompt.Title)
	}
	next := s.textResponses[0]
	s.textResponses = s.textResponses[1:]
	input, err := next(prompt)
	if err != nil {
		return "", err
	}
	if validate != nil {
		if msg := validate(input); msg != "" {
			return "", fmt.Errorf("scripted input %q rejected: %s", input, msg)
		}
	}
	return input, nil
}

func (s *scriptedInteractor) ShowPlaceholder(prompt StepPrompt) { s.placeholders++ }
func (s *scriptedInteractor) HidePlaceholder()                  {}
func (s *scriptedInteractor) Notify(message string) {
	s.notifications = append(s.notifications, message)
}

// fakeConfigStore is an in-memory ConfigurationStore.
type fakeConfigStore struct {
	configs       []config.RunConfiguration
	listErr       error
	createCalled  bool
	createFailure error
}

func (f *fakeConfigStore) List() ([]config.RunConfiguration, error) {
	return f.configs, f.listErr
}

func (f *fakeConfigStore) CreateNew() error {
	f.createCalled = true
	return f.createFailure
}

type fakeTunnel struct{}

func (fakeTunnel) Describe() string { return "fake tunnel" }

// recordingReporter captures the run lifecycle emissions.
type recordingReporter struct {
	started  []string
	outcomes []Outcome
	errs     []error
}

func (r *recordingReporter) FlowStarted(reason string) {
	r.started = append(r.started, reason)
}

func (r *recordingReporter) FlowFinished(outcome Outcome, err error) {
	r.outcomes = append(r.outcomes, outcome)
	r.errs = append(r.errs, err)
}

// testHarness bundles a Flow with its fakes, preconfigured for the
// happy path.
type testHarness struct {
	resources  *fakeResources
	interactor *scriptedInteractor
	configs    *fakeConfigStore
	reporter   *recordingReporter
	urlsOpened []string

	deps Dependencies
}

func newHarness() *testHarness {
	h := &testHarness{
		resources:  &fakeResources{},
		interactor: &scriptedInteractor{},
		configs:    &fakeConfigStore{},
		reporter:   &recordingReporter{},
	}
	h.deps = Dependencies{
		CheckPrerequisites: func() func() { return nil },
		Resources:          func() ResourceClient { return h.resources },
		Tunnel:             func() TunnelCapabilityClient { return fakeTunnel{} },
		CurrentContext: func() (kube.ClusterContext, error) {
			return kube.ClusterContext{
				KubeconfigPath: "/home/dev/.kube/config",
				Cluster:        "test-cluster",
				Namespace:      "dev",
			}, nil
		},
		RefreshCredentials: func(ctx context.Context, cc kube.ClusterContext, tunnel TunnelCapabilityClient) bool {
			return true
		},
		Configs:     h.configs,
		Username:    func() (string, error) { return "jane", nil },
		DeriveToken: func(username string) string { return username + "-ab12" },
		OpenURL: func(url string) error {
			h.urlsOpened = append(h.urlsOpened, url)
			return nil
		},
		Interactor: h.interactor,
		Reporter:   h.reporter,
	}
	return h
}

func (h *testHarness) flow() *Flow {
	return NewFlow(h.deps)
}
