// Package wizard implements the connection wizard: the step
// orchestration engine that resolves a Kubernetes workload for local
// redirection and produces the ConnectionDescriptor consumed by the
// downstream debug session.
//
// The engine is a continuation-style step chain. Each step mutates the
// exclusively-owned ConnectionRequest accumulator and returns either
// the next step or a terminal outcome; fatal conditions travel as
// errors and are caught exactly once at the Flow.Run boundary, while
// recoverable conditions are logged and the chain continues with
// degraded state. All interaction goes through the Interactor
// interface, so the decision logic is testable without any UI.
//
// The number, order, and numbering of steps depend on runtime
// discovery: the service path adds a service-selection step, container
// disambiguation appears only when a workload has more than one
// container, and the isolation step is skipped entirely for pod
// targets.
package wizard
