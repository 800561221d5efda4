// Package session consumes a completed ConnectionDescriptor and runs
// the local debug session: a client-go SPDY port-forward from the
// chosen local port to a ready pod backing the resolved workload.
package session
