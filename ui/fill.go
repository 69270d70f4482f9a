package ui

import "strings"

// FillHeight pads s with blank lines up to height so the alt screen keeps no
// stale rows below a view that shrank. Taller content is left alone.
func FillHeight(s string, height int) string {
	if height <= 0 {
		return s
	}
	n := strings.Count(s, "\n") + 1
	if n >= height {
		return s
	}
	return s + strings.Repeat("\n", height-n)
}
