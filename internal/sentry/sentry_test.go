package sentry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInit_Disabled(t *testing.T) {
	err := Init(Options{DSN: "https://key@example.invalid/1", Version: "1.0.0"})
	assert.NoError(t, err)
	assert.False(t, IsEnabled())
	// Flush and SetNavContext should be safe no-ops
	Flush()
	SetNavContext("slim", true, "nav.toml")
}

func TestInit_EmptyDSN(t *testing.T) {
	err := Init(Options{Version: "1.0.0", TelemetryEnabled: true})
	assert.NoError(t, err)
	assert.False(t, IsEnabled())
	Flush()
}

func TestIsEnabled(t *testing.T) {
	enabled = false
	assert.False(t, IsEnabled())
	enabled = true
	assert.True(t, IsEnabled())
	enabled = false // reset
}

func TestRecoverPanic_DisabledIsNoop(t *testing.T) {
	enabled = false
	assert.NotPanics(t, func() {
		defer RecoverPanic()
	})
}

func TestSetNavContext_DisabledIsNoop(t *testing.T) {
	assert.NotPanics(t, func() { SetNavContext("slim", true, "nav.toml") })
}
