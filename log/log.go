package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/kastheco/navrail/internal/sentry"
)

var (
	WarningLog = log.New(io.Discard, "", 0)
	InfoLog    = log.New(io.Discard, "", 0)
	ErrorLog   = log.New(io.Discard, "", 0)
)

var logFileName = filepath.Join(os.TempDir(), "navrail.log")

var globalLogFile *os.File

// FileName returns the path logs are written to.
func FileName() string {
	return logFileName
}

// Initialize should be called once at the beginning of the program to set up
// logging. With telemetry on, warnings and errors are also forwarded to
// Sentry. defer Close() after calling this function.
func Initialize(daemon bool, telemetry ...bool) {
	f, err := os.OpenFile(logFileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		panic(fmt.Sprintf("could not open log file: %s", err))
	}

	fmtS := "%s"
	if daemon {
		fmtS = "[WATCH] %s"
	}

	var infoW, warnW, errW io.Writer = f, f, f
	if len(telemetry) > 0 && telemetry[0] {
		infoW = sentry.NewWriter(f, sentry.LevelInfo)
		warnW = sentry.NewWriter(f, sentry.LevelWarning)
		errW = sentry.NewWriter(f, sentry.LevelError)
	}

	flags := log.Ldate | log.Ltime | log.Lshortfile
	InfoLog = log.New(infoW, fmt.Sprintf(fmtS, "INFO:"), flags)
	WarningLog = log.New(warnW, fmt.Sprintf(fmtS, "WARNING:"), flags)
	ErrorLog = log.New(errW, fmt.Sprintf(fmtS, "ERROR:"), flags)

	globalLogFile = f
}

// Close flushes and closes the log file and resets the loggers to discard.
func Close() {
	if globalLogFile == nil {
		return
	}
	_ = globalLogFile.Close()
	globalLogFile = nil
	WarningLog.SetOutput(io.Discard)
	InfoLog.SetOutput(io.Discard)
	ErrorLog.SetOutput(io.Discard)
	// TODO: print this only when something was logged at warning or above.
	fmt.Println("wrote logs to " + logFileName)
}

// Every is used to log at most once every timeout duration.
type Every struct {
	mu      sync.Mutex
	timeout time.Duration
	timer   *time.Timer
}

func NewEvery(timeout time.Duration) *Every {
	return &Every{timeout: timeout}
}

// ShouldLog returns true if the timeout has passed since the last log.
func (e *Every) ShouldLog() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.timer == nil {
		e.timer = time.NewTimer(e.timeout)
		return true
	}

	select {
	case <-e.timer.C:
		e.timer.Reset(e.timeout)
		return true
	default:
		return false
	}
}
