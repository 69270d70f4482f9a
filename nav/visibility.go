package nav

// VisibilityFilter decides, link by link and in list order, whether a link is
// shown. Use one filter per link list per render: the show-more affordance
// only sees hidden links that came before it in the same list.
type VisibilityFilter struct {
	showMore      bool
	hasHiddenLink bool
}

// NewVisibilityFilter starts a filter for one link list.
func NewVisibilityFilter(showMore bool) *VisibilityFilter {
	return &VisibilityFilter{showMore: showMore}
}

// Show reports whether link is rendered. Call it for every link of the list
// in order, including the ones that end up omitted.
func (f *VisibilityFilter) Show(link *Link) bool {
	if link.IsHidden && !f.showMore {
		f.hasHiddenLink = true
		return false
	}
	// An affordance with nothing hidden before it has nothing to reveal.
	if link.IsShowMoreLink && !f.hasHiddenLink && !f.showMore {
		return false
	}
	return true
}

// HasHiddenLink reports whether a hidden link has been seen so far.
func (f *VisibilityFilter) HasHiddenLink() bool {
	return f.hasHiddenLink
}

// VisibleLinks filters links in order and returns the visible ones.
func VisibleLinks(links []Link, showMore bool) []Link {
	f := NewVisibilityFilter(showMore)
	out := make([]Link, 0, len(links))
	for i := range links {
		if f.Show(&links[i]) {
			out = append(out, links[i])
		}
	}
	return out
}

// GroupHeaderVisible reports whether the separator header of the group at
// index is rendered. The first group never has one; later groups have one
// when at least one link could be shown. This is an existence check only and
// ignores the affordance ordering rule.
func GroupHeaderVisible(index int, group Group, showMore bool) bool {
	if index == 0 {
		return false
	}
	for i := range group.Links {
		if !group.Links[i].IsHidden || showMore {
			return true
		}
	}
	return false
}
