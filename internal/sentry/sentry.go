package sentry

import (
	"runtime"
	"strconv"
	"time"

	gosentry "github.com/getsentry/sentry-go"
)

// flushTimeout bounds how long shutdown waits on buffered events.
const flushTimeout = 2 * time.Second

// enabled tracks whether sentry was successfully initialized.
var enabled bool

// Options configures telemetry. The DSN comes from the user's config; there
// is no built-in project.
type Options struct {
	DSN              string
	Version          string
	TelemetryEnabled bool
	Environment      string
}

// Init initializes the Sentry SDK. When telemetry is off or no DSN is
// configured it does nothing and every other function here is a no-op.
func Init(opts Options) error {
	if !opts.TelemetryEnabled || opts.DSN == "" {
		enabled = false
		return nil
	}

	err := gosentry.Init(gosentry.ClientOptions{
		Dsn:              opts.DSN,
		Release:          "navrail@" + opts.Version,
		Environment:      opts.Environment,
		AttachStacktrace: true,
		SampleRate:       1.0,
	})
	if err != nil {
		return err
	}

	gosentry.ConfigureScope(func(scope *gosentry.Scope) {
		scope.SetTag("os", runtime.GOOS)
		scope.SetTag("arch", runtime.GOARCH)
		scope.SetTag("go_version", runtime.Version())
		scope.SetTag("version", opts.Version)
	})

	enabled = true
	return nil
}

// IsEnabled returns whether sentry is active.
func IsEnabled() bool {
	return enabled
}

// Flush waits for buffered events to be sent.
func Flush() {
	if !enabled {
		return
	}
	gosentry.Flush(flushTimeout)
}

// RecoverPanic captures a panic to Sentry, flushes, then re-panics.
// Usage: defer sentry.RecoverPanic()
func RecoverPanic() {
	if !enabled {
		return
	}
	if err := recover(); err != nil {
		gosentry.CurrentHub().Recover(err)
		gosentry.Flush(flushTimeout)
		panic(err)
	}
}

// SetNavContext tags the scope with the sidebar state so reports show which
// mode the user was in.
func SetNavContext(mode string, showMore bool, treeFile string) {
	if !enabled {
		return
	}
	gosentry.ConfigureScope(func(scope *gosentry.Scope) {
		scope.SetTag("nav_mode", mode)
		scope.SetTag("show_more", strconv.FormatBool(showMore))
		scope.SetContext("nav", map[string]interface{}{
			"mode":      mode,
			"show_more": showMore,
			"tree_file": treeFile,
		})
	})
}

