// Package memory implements the per-session fragment cache: translation
// memory scoped to one session's lifetime, never persisted.
package memory

import "github.com/dangehub/dualtext/internal/dom"

// Memory maps normalized source text to a previously obtained translation.
// Whitespace-only variants of the same fragment collapse to one entry. There
// is no eviction: a session's vocabulary is bounded by one document's visible
// text.
type Memory struct {
	entries map[string]string
}

func New() *Memory {
	return &Memory{entries: make(map[string]string)}
}

// Lookup returns the cached translation for text, if any.
func (m *Memory) Lookup(text string) (string, bool) {
	translated, ok := m.entries[dom.Normalize(text)]
	return translated, ok
}

// Store records a translation for text.
func (m *Memory) Store(text, translated string) {
	m.entries[dom.Normalize(text)] = translated
}

// Len returns the number of cached fragments.
func (m *Memory) Len() int {
	return len(m.entries)
}

// Reset drops every entry. Used when a session's settings change in a way
// that would make cached translations stale.
func (m *Memory) Reset() {
	m.entries = make(map[string]string)
}
