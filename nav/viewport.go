package nav

// NarrowViewportWidth is the width, in logical pixels, below which the
// sidebar starts collapsed when no preference is stored.
const NarrowViewportWidth = 720

// Viewport reports the current viewport width in logical pixels. It is read
// once, at toggler creation, and only when no collapse preference exists.
type Viewport interface {
	Width() int
}

// FixedViewport is a Viewport of constant width.
type FixedViewport int

func (v FixedViewport) Width() int { return int(v) }

// ViewportFunc adapts a function to Viewport.
type ViewportFunc func() int

func (f ViewportFunc) Width() int { return f() }
