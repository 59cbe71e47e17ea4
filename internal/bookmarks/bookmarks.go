// Package bookmarks persists the user's saved addresses as an
// append-only gophermap file. The same tab-delimited line format the
// protocol uses on the wire serves as the storage format, so the
// bookmarks menu is rendered by the normal menu parser.
package bookmarks

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/studiowebux/burrow/internal/parser"
	"github.com/studiowebux/burrow/internal/types"
)

// Bookmark is one saved record: a display label plus the address it
// opens.
type Bookmark struct {
	Label string
	Addr  types.Address
}

// Store holds the in-memory bookmark list backed by an on-disk file.
type Store struct {
	path  string
	marks []Bookmark
}

// Open loads the bookmark file at path. A missing file is an empty
// list, not an error.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read bookmarks file %s: %w", path, err)
	}

	// The file is gophermap source; parse it with the same tolerant
	// menu parser used for remote responses.
	doc := parser.Parse(data, types.TypeMenu)
	for _, it := range doc.Items {
		if !it.Type.IsNavigable() {
			continue
		}
		s.marks = append(s.marks, Bookmark{Label: it.Display, Addr: it.Addr})
	}
	return s, nil
}

// Add appends one record to the list and the file. De-duplication is
// deliberately not done; saving twice records twice.
func (s *Store) Add(label string, addr types.Address) error {
	label = strings.TrimSpace(label)
	if label == "" {
		label = addr.URL()
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create bookmarks directory: %w", err)
	}
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open bookmarks file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(record(label, addr)); err != nil {
		return fmt.Errorf("failed to append bookmark: %w", err)
	}

	s.marks = append(s.marks, Bookmark{Label: label, Addr: addr})
	return nil
}

// All returns the bookmarks in saved order.
func (s *Store) All() []Bookmark {
	return s.marks
}

// MenuSource renders the list as gophermap source for the synthetic
// bookmarks menu.
func (s *Store) MenuSource() []byte {
	var b strings.Builder
	b.WriteString("i~/.config/burrow/bookmarks.gph\t\t" + types.InternalHost + "\t70\r\n")
	b.WriteString("i\t\t" + types.InternalHost + "\t70\r\n")
	if len(s.marks) == 0 {
		b.WriteString("iNo bookmarks yet. Press s to save the current page.\t\t" + types.InternalHost + "\t70\r\n")
	}
	for _, m := range s.marks {
		b.WriteString(record(m.Label, m.Addr))
	}
	return []byte(b.String())
}

// record renders one gophermap line for addr. Tabs in the label would
// corrupt the format, so they are squashed.
func record(label string, addr types.Address) string {
	label = strings.ReplaceAll(label, "\t", " ")
	return fmt.Sprintf("%c%s\t%s\t%s\t%d\r\n", addr.Type.Char(), label, addr.Selector, addr.Host, addr.Port)
}
