package wizard

import (
	"context"
	"errors"
	"fmt"

	"kbridge/internal/kube"
	"kbridge/pkg/logging"
)

const logSubsystem = "Wizard"

// Total prompt counts per path, assuming the common container layout:
// the service path usually has a single container (disambiguation
// skipped), the pod path usually needs it. The container resolver
// recomputes the total before its prompt when the run deviates.
const (
	totalStepsService = 4
	totalStepsPod     = 3
)

// Flow runs the connection wizard: a chain of steps that accumulates a
// ConnectionRequest across interaction rounds and promotes it to a
// ConnectionDescriptor at the terminal step.
type Flow struct {
	deps Dependencies
}

// NewFlow returns a Flow over the given collaborators.
func NewFlow(deps Dependencies) *Flow {
	return &Flow{deps: deps}
}

// runState is the mutable state threaded through the step chain. It is
// owned by exactly one step at a time; the chain is single-threaded
// cooperative, so no locking is needed.
type runState struct {
	request ConnectionRequest
	cluster kube.ClusterContext

	stepIndex  int
	totalSteps int

	routingToken string

	// complete is set only by the terminal step. Run promotes the
	// accumulator iff it is set, guarding against a chain that unwound
	// without reaching a defined terminal state.
	complete bool
}

// nextStep advances the presented-prompt counter and returns the new
// index. Skipped branches never call it, so later steps renumber
// automatically.
func (st *runState) nextStep() int {
	st.stepIndex++
	return st.stepIndex
}

// promote copies the accumulator into an immutable descriptor.
func (st *runState) promote() *ConnectionDescriptor {
	ports := make([]int, len(st.request.Ports))
	copy(ports, st.request.Ports)
	return &ConnectionDescriptor{
		ResourceName:            st.request.ResourceName,
		ResourceType:            st.request.ResourceType,
		TargetCluster:           st.request.TargetCluster,
		TargetNamespace:         st.request.TargetNamespace,
		ContainerName:           st.request.ContainerName,
		Ports:                   ports,
		LaunchConfigurationName: st.request.LaunchConfigurationName,
		Isolation:               st.request.Isolation,
		IsolateAs:               st.request.IsolateAs,
	}
}

// stepFunc is one deferred unit of work in the chain.
type stepFunc func(ctx context.Context, st *runState) (stepResult, error)

// stepResult is the tagged outcome of a step: either a continuation
// (next != nil) or a terminal outcome. At most one continuation is
// pending at a time. Fatal conditions travel as the error return and
// are caught exactly once at the Run boundary.
type stepResult struct {
	next    stepFunc
	outcome Outcome
}

func continueWith(next stepFunc) stepResult {
	return stepResult{next: next}
}

func finish(outcome Outcome) stepResult {
	return stepResult{outcome: outcome}
}

// errAbortRun signals a silent, user-recoverable abort (for example a
// failed credential refresh). It is not reported as a failure.
var errAbortRun = errors.New("wizard: run aborted")

// Run executes the wizard for the given target. It returns the
// promoted descriptor on successful completion and nil on early exit,
// cancellation, or error; fatal errors are reported at this boundary
// and never propagated to the caller.
func (f *Flow) Run(ctx context.Context, reason string, targetName, targetNamespace string, targetType ResourceType) *ConnectionDescriptor {
	f.deps.Reporter.FlowStarted(reason)

	outcome := OutcomeAborted
	var runErr error
	defer func() {
		f.deps.Reporter.FlowFinished(outcome, runErr)
	}()

	// Fail closed before any interactive step.
	if notify := f.deps.CheckPrerequisites(); notify != nil {
		logging.Info(logSubsystem, "Prerequisite check rejected the run")
		notify()
		return nil
	}

	resources := f.deps.Resources()
	tunnel := f.deps.Tunnel()
	if resources == nil || tunnel == nil {
		logging.Warn(logSubsystem, "Required client unavailable (resources=%t, tunnel=%t)", resources != nil, tunnel != nil)
		return nil
	}

	cluster, err := f.deps.CurrentContext()
	if err != nil {
		runErr = fmt.Errorf("failed to read active cluster context: %w", err)
		outcome = OutcomeFailed
		f.reportFailure(nil, runErr)
		return nil
	}

	st := &runState{cluster: cluster}

	var entry stepFunc
	switch targetType {
	case ResourceTypeService:
		st.totalSteps = totalStepsService
		entry = func(ctx context.Context, st *runState) (stepResult, error) {
			return f.stepPickService(ctx, st, targetName)
		}
	case ResourceTypePod:
		st.totalSteps = totalStepsPod
		entry = func(ctx context.Context, st *runState) (stepResult, error) {
			return f.enterPodPath(ctx, st, targetName)
		}
	default:
		runErr = fmt.Errorf("unknown resource type %q", targetType)
		outcome = OutcomeFailed
		f.reportFailure(st, runErr)
		return nil
	}

	if err := f.prevalidate(ctx, st, targetName, targetNamespace, resources, tunnel); err != nil {
		if errors.Is(err, errAbortRun) {
			logging.Info(logSubsystem, "Run aborted during prevalidation")
			return nil
		}
		if errors.Is(err, ErrCanceled) {
			outcome = OutcomeCanceled
			return nil
		}
		runErr = err
		outcome = OutcomeFailed
		f.reportFailure(st, err)
		return nil
	}

	step := entry
	for step != nil {
		result, err := step(ctx, st)
		if err != nil {
			if errors.Is(err, ErrCanceled) {
				outcome = OutcomeCanceled
				return nil
			}
			runErr = err
			outcome = OutcomeFailed
			f.reportFailure(st, err)
			return nil
		}
		if result.next != nil {
			step = result.next
			continue
		}
		step = nil
		outcome = result.outcome
	}

	if !st.complete || outcome != OutcomeCompleted {
		logging.Debug(logSubsystem, "Run ended without completion (outcome: %s)", outcome)
		return nil
	}
	return st.promote()
}

// reportFailure logs full diagnostic context, including the partial
// accumulator, and shows a single consolidated user-facing message.
func (f *Flow) reportFailure(st *runState, err error) {
	if st != nil {
		logging.Error(logSubsystem, err, "Connection wizard failed (partial request: %+v)", st.request)
	} else {
		logging.Error(logSubsystem, err, "Connection wizard failed")
	}
	f.deps.Interactor.Notify(fmt.Sprintf("Failed to prepare the connection: %v", err))
}
