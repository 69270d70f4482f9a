package sentry

import (
	"io"
	"strings"

	gosentry "github.com/getsentry/sentry-go"
)

// Level represents the severity level for the sentry writer.
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
)

// Writer tees log output to Sentry. Errors become events; warnings and info
// become breadcrumbs so they show up as the trail leading to the next error.
type Writer struct {
	inner    io.Writer
	level    Level
	category string
}

// NewWriter creates a Writer that tees to inner and forwards to Sentry.
func NewWriter(inner io.Writer, level Level) *Writer {
	return &Writer{inner: inner, level: level, category: "log"}
}

// WithCategory sets the breadcrumb category.
func (w *Writer) WithCategory(category string) *Writer {
	w.category = category
	return w
}

func (w *Writer) Write(p []byte) (int, error) {
	// Always write to the original destination first.
	n, err := w.inner.Write(p)

	if !enabled {
		return n, err
	}

	msg := strings.TrimSpace(string(p))
	if msg == "" {
		return n, err
	}

	if w.level == LevelError {
		gosentry.CaptureMessage(msg)
		return n, err
	}
	gosentry.AddBreadcrumb(&gosentry.Breadcrumb{
		Level:    breadcrumbLevel(w.level),
		Category: w.category,
		Message:  msg,
	})
	return n, err
}

func breadcrumbLevel(l Level) gosentry.Level {
	if l == LevelWarning {
		return gosentry.LevelWarning
	}
	return gosentry.LevelInfo
}
