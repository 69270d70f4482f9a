package ui

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Icon sets, matching config.Icons values.
const (
	IconSetNerd    = "nerd"
	IconSetUnicode = "unicode"
	IconSetNone    = "none"
)

// IconMap resolves icon identifiers from the tree file to glyphs.
type IconMap struct {
	set    string
	glyphs map[string]string
}

var nerdGlyphs = map[string]string{
	"menu":   "",
	"home":   "",
	"folder": "",
	"inbox":  "",
	"gear":   "",
	"list":   "",
	"more":   "",
	"file":   "",
	"user":   "",
	"search": "",
	"chart":  "",
	"link":   "",
}

var unicodeGlyphs = map[string]string{
	"menu":   "☰",
	"home":   "⌂",
	"folder": "▣",
	"inbox":  "✉",
	"gear":   "⚙",
	"list":   "≡",
	"more":   "…",
	"file":   "▤",
	"user":   "☺",
	"search": "⌕",
	"chart":  "▥",
	"link":   "↗",
}

// Icons returns the icon map for set. Unknown sets behave like "none".
func Icons(set string) IconMap {
	switch set {
	case IconSetNerd:
		return IconMap{set: set, glyphs: nerdGlyphs}
	case IconSetUnicode:
		return IconMap{set: set, glyphs: unicodeGlyphs}
	default:
		return IconMap{set: IconSetNone}
	}
}

func (m IconMap) Set() string { return m.set }

// Glyph returns the glyph for name. Without one it falls back to the first
// letter of label, so icon-only rail entries stay distinguishable.
func (m IconMap) Glyph(name, label string) string {
	if g, ok := m.glyphs[name]; ok {
		return g
	}
	if name != "" && utf8.RuneCountInString(name) == 1 {
		// a literal glyph in the tree file
		return name
	}
	label = strings.TrimSpace(label)
	if label == "" {
		return "·"
	}
	r, _ := utf8.DecodeRuneInString(label)
	return string(unicode.ToUpper(r))
}
