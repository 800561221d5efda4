package telemetry

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"kbridge/internal/wizard"
	"kbridge/pkg/logging"
)

func TestLogReporterSuccessfulRun(t *testing.T) {
	var buf bytes.Buffer
	logging.Init(logging.LevelInfo, &buf)

	r := NewLogReporter()
	r.FlowStarted("cli")
	r.FlowFinished(wizard.OutcomeCompleted, nil)

	output := buf.String()
	assert.Contains(t, output, "Connection wizard started (reason: cli)")
	assert.Contains(t, output, "Connection wizard finished: completed")
	assert.Contains(t, output, "reason: cli")
	assert.Contains(t, output, "elapsed:")
	assert.NotContains(t, output, "level=ERROR")
}

func TestLogReporterFailedRun(t *testing.T) {
	var buf bytes.Buffer
	logging.Init(logging.LevelInfo, &buf)

	r := NewLogReporter()
	r.FlowStarted("cli")
	r.FlowFinished(wizard.OutcomeFailed, assert.AnError)

	output := buf.String()
	assert.Contains(t, output, "Connection wizard finished: failed")
	assert.Contains(t, output, "level=ERROR")
	assert.Contains(t, output, assert.AnError.Error())
}
