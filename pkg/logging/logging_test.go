package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "INFO", LevelInfo.String())
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "UNKNOWN", LogLevel(42).String())
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	Init(LevelInfo, &buf)

	Debug("Test", "below threshold")
	Info("Test", "at threshold")

	output := buf.String()
	assert.NotContains(t, output, "below threshold")
	assert.Contains(t, output, "at threshold")
	assert.Contains(t, output, "subsystem=Test")
}

func TestErrorCarriesErrorAttr(t *testing.T) {
	var buf bytes.Buffer
	Init(LevelInfo, &buf)

	Error("Test", assert.AnError, "something broke with %s", "cluster")

	output := buf.String()
	assert.Contains(t, output, "something broke with cluster")
	assert.Contains(t, output, assert.AnError.Error())
}

func TestDivertAndRestore(t *testing.T) {
	var terminal, diverted bytes.Buffer
	Init(LevelInfo, &terminal)

	Info("Test", "before divert")

	Divert(&diverted)
	Info("Test", "while diverted")
	Restore()

	Info("Test", "after restore")

	assert.Contains(t, terminal.String(), "before divert")
	assert.NotContains(t, terminal.String(), "while diverted")
	assert.Contains(t, diverted.String(), "while diverted")
	assert.Contains(t, terminal.String(), "after restore")
}
