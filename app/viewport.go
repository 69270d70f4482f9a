package app

import (
	"time"

	"github.com/kastheco/navrail/log"
	"golang.org/x/term"
)

// fallbackColumns is assumed when the terminal size cannot be read.
const fallbackColumns = 80

var sizeWarning = log.NewEvery(time.Minute)

// TerminalViewport reports the terminal width in logical pixels: columns
// times the configured cell width.
type TerminalViewport struct {
	Fd        int
	CellWidth int
}

func (v TerminalViewport) Width() int {
	cols, _, err := term.GetSize(v.Fd)
	if err != nil || cols <= 0 {
		if sizeWarning.ShouldLog() {
			log.WarningLog.Printf("terminal size unavailable, assuming %d columns: %v", fallbackColumns, err)
		}
		cols = fallbackColumns
	}
	return columnsToPixels(cols, v.CellWidth)
}

func columnsToPixels(cols, cellWidth int) int {
	if cellWidth <= 0 {
		cellWidth = 8
	}
	return cols * cellWidth
}
