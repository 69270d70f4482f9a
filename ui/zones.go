package ui

import "strings"

// Zone IDs for bubblezone hit detection. They are used both in render paths
// (zone.Mark) and input paths (zone.Get().InBounds). Keyboard focus is kept
// as a zone ID too, so a rail entry and the title link of its floating
// submenu stay distinct even though they share a link key.
const (
	ZoneToggle = "navrail-toggle"

	zoneEntryPrefix = "navrail-entry-"
	zoneLinkPrefix  = "navrail-link-"
)

// EntryZoneID is the zone of a top-level entry.
func EntryZoneID(key string) string {
	return zoneEntryPrefix + key
}

// LinkZoneID is the zone of a nested link: an inline child in wide mode or a
// floating submenu item in slim mode.
func LinkZoneID(key string) string {
	return zoneLinkPrefix + key
}

// ZoneKey returns the link key a zone ID refers to and whether the zone is a
// floating/inline link rather than an entry. The toggle reports an empty key.
func ZoneKey(id string) (key string, nested bool) {
	switch {
	case strings.HasPrefix(id, zoneEntryPrefix):
		return strings.TrimPrefix(id, zoneEntryPrefix), false
	case strings.HasPrefix(id, zoneLinkPrefix):
		return strings.TrimPrefix(id, zoneLinkPrefix), true
	}
	return "", false
}
