// Package telemetry records connection-wizard run lifecycle events.
package telemetry

import (
	"time"

	"kbridge/internal/wizard"
	"kbridge/pkg/logging"
)

// LogReporter emits run lifecycle events through the logging package.
// It is the default wizard.Reporter.
type LogReporter struct {
	started time.Time
	reason  string
}

// NewLogReporter returns a ready-to-use LogReporter.
func NewLogReporter() *LogReporter {
	return &LogReporter{}
}

func (r *LogReporter) FlowStarted(reason string) {
	r.started = time.Now()
	r.reason = reason
	logging.Info("Telemetry", "Connection wizard started (reason: %s)", reason)
}

func (r *LogReporter) FlowFinished(outcome wizard.Outcome, err error) {
	elapsed := time.Since(r.started).Round(time.Millisecond)
	if err != nil {
		logging.Error("Telemetry", err, "Connection wizard finished: %s (reason: %s, elapsed: %s)", outcome, r.reason, elapsed)
		return
	}
	logging.Info("Telemetry", "Connection wizard finished: %s (reason: %s, elapsed: %s)", outcome, r.reason, elapsed)
}
