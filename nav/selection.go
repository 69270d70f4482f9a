package nav

// IsSelected reports whether link counts as selected for selectedKey. With
// includeDescendants the whole subtree is searched, at any depth. An empty
// selectedKey selects nothing.
func IsSelected(link *Link, includeDescendants bool, selectedKey string) bool {
	if link == nil || selectedKey == "" {
		return false
	}
	if link.Key == selectedKey {
		return true
	}
	if !includeDescendants {
		return false
	}
	for i := range link.Children {
		if IsSelected(&link.Children[i], true, selectedKey) {
			return true
		}
	}
	return false
}
