package i18n

import (
	"regexp"
	"strings"
)

// Table is a complete translation table for one language: nested string keys with string leaves.
type Table map[string]any

// Snapshot is an immutable view of one language and its table.
// Lookups through a snapshot never observe a concurrent switch.
type Snapshot struct {
	Lang  string
	Dir   string
	table Table
	miss  func(keyPath string)
}

// T resolves keyPath. On a miss it returns the first non-empty fallback,
// or keyPath itself so the UI never shows empty text.
func (s Snapshot) T(keyPath string, fallback ...string) string {
	if value, ok := lookup(s.table, keyPath); ok {
		return value
	}
	if s.miss != nil {
		s.miss(keyPath)
	}
	for _, fb := range fallback {
		if fb != "" {
			return fb
		}
	}
	return keyPath
}

var placeholderRe = regexp.MustCompile(`\{([^{}]+)\}`)

// Format resolves keyPath and replaces every {name} placeholder found in vars.
// Unknown placeholders are left untouched.
func (s Snapshot) Format(keyPath string, vars map[string]string) string {
	message := s.T(keyPath)
	if len(vars) == 0 {
		return message
	}
	return placeholderRe.ReplaceAllStringFunc(message, func(m string) string {
		if v, ok := vars[m[1:len(m)-1]]; ok {
			return v
		}
		return m
	})
}

// lookup walks the table along the dot separated key path.
// Sub-tables, non-string and empty leaves count as misses.
func lookup(t Table, keyPath string) (string, bool) {
	if len(t) == 0 || keyPath == "" {
		return "", false
	}

	var cur any = map[string]any(t)
	for _, key := range strings.Split(keyPath, ".") {
		var m map[string]any
		switch v := cur.(type) {
		case map[string]any:
			m = v
		case Table:
			m = v
		default:
			return "", false
		}
		var ok bool
		if cur, ok = m[key]; !ok {
			return "", false
		}
	}

	s, ok := cur.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
