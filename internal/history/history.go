// Package history keeps the session's navigation stack: an ordered
// list of visited entries with a current-position index, like a
// browser history. Navigation either pushes a new entry (truncating
// any stale forward branch first) or moves the index within existing
// bounds, so no cycles are possible.
package history

import (
	"github.com/studiowebux/burrow/internal/types"
)

// Entry is one visited resource. Scroll and Selected mutate in place
// while the entry is current; everything else is immutable.
type Entry struct {
	Addr types.Address
	Doc  *types.Document

	// Channel markers for the status bar indicator.
	TLS bool
	Tor bool

	Scroll   int // vertical offset into the rendered frame
	Selected int // 1-based selected link for menus, 0 for none
}

// Stack is the indexed history list. The zero value is empty and
// usable.
type Stack struct {
	entries []*Entry
	current int
}

// Push drops every entry beyond the current index, appends e, and
// makes it current.
func (s *Stack) Push(e *Entry) {
	if len(s.entries) > 0 {
		s.entries = s.entries[:s.current+1]
	}
	s.entries = append(s.entries, e)
	s.current = len(s.entries) - 1
}

// Current returns the entry at the index, or nil when empty.
func (s *Stack) Current() *Entry {
	if len(s.entries) == 0 {
		return nil
	}
	return s.entries[s.current]
}

// Back moves the index one entry toward the start. Clamped, never
// wraps, no fetch; reports whether it moved.
func (s *Stack) Back() bool {
	if s.current == 0 || len(s.entries) == 0 {
		return false
	}
	s.current--
	return true
}

// Forward moves the index one entry toward the tip. Clamped, never
// wraps; reports whether it moved.
func (s *Stack) Forward() bool {
	if s.current >= len(s.entries)-1 {
		return false
	}
	s.current++
	return true
}

// Len returns the number of entries.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Index returns the current position, 0-based.
func (s *Stack) Index() int {
	return s.current
}

// Entries returns the entries oldest-first, for the session history
// menu.
func (s *Stack) Entries() []*Entry {
	return s.entries
}
