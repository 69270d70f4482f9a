package nav

import "strconv"

// Preference keys. The stored values are the literal strings "true" and
// "false".
const (
	PrefCollapsed = "NavToggler.isNavCollapsed"
	PrefShowMore  = "NavToggler.showMore"
)

// Preferences is the persisted key-value store the toggler reads at creation
// and writes on every toggle. Implementations must be synchronous.
type Preferences interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// readBool returns the stored boolean and true only when the value is exactly
// "true" or "false". Anything else is treated as absent.
func readBool(p Preferences, key string) (bool, bool) {
	if p == nil {
		return false, false
	}
	v, ok := p.Get(key)
	if !ok {
		return false, false
	}
	switch v {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}

func writeBool(p Preferences, key string, v bool) {
	if p == nil {
		return
	}
	p.Set(key, strconv.FormatBool(v))
}

// MemoryPreferences is an in-process Preferences used by tests and by hosts
// that do not persist anything.
type MemoryPreferences struct {
	values map[string]string
	writes int
}

// NewMemoryPreferences returns a store seeded with kv pairs.
func NewMemoryPreferences(kv ...string) *MemoryPreferences {
	m := &MemoryPreferences{values: make(map[string]string)}
	for i := 0; i+1 < len(kv); i += 2 {
		m.values[kv[i]] = kv[i+1]
	}
	return m
}

func (m *MemoryPreferences) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *MemoryPreferences) Set(key, value string) {
	m.values[key] = value
	m.writes++
}

// Writes returns how many times Set was called.
func (m *MemoryPreferences) Writes() int { return m.writes }

// Verify MemoryPreferences implements Preferences at compile time.
var _ Preferences = (*MemoryPreferences)(nil)
