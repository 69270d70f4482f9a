package nav

// FloatingController tracks the one floating submenu that may carry the
// visible-open marking. The anchor is the key of the rail entry that owns the
// submenu.
type FloatingController struct {
	anchor  string
	visible bool
}

// Activate applies one Enter activation on the entry anchor:
//   - nothing recorded: anchor opens;
//   - same anchor: visibility flips (close, then reopen on the next call);
//   - other anchor: the old one closes and anchor opens.
func (c *FloatingController) Activate(anchor string) {
	if anchor == "" {
		return
	}
	if c.anchor == anchor {
		c.visible = !c.visible
		return
	}
	c.anchor = anchor
	c.visible = true
}

// IsOpen reports whether anchor's submenu carries the visible-open marking.
func (c *FloatingController) IsOpen(anchor string) bool {
	return c.visible && anchor != "" && c.anchor == anchor
}

// OpenAnchor returns the visibly open anchor, if any.
func (c *FloatingController) OpenAnchor() (string, bool) {
	if !c.visible {
		return "", false
	}
	return c.anchor, true
}

// LastAnchor returns the most recently activated anchor whether or not it is
// currently visible.
func (c *FloatingController) LastAnchor() string {
	return c.anchor
}

// Close clears the visible-open marking and forgets the anchor.
func (c *FloatingController) Close() {
	c.anchor = ""
	c.visible = false
}
