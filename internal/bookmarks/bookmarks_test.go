package bookmarks

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/studiowebux/burrow/internal/parser"
	"github.com/studiowebux/burrow/internal/types"
)

func testAddr(host, selector string) types.Address {
	return types.Address{Host: host, Port: 70, Selector: selector, Type: types.TypeMenu}
}

func TestOpenMissingFile(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "none", "bookmarks.gph"))
	if err != nil {
		t.Fatalf("Expected missing file to be an empty list, got error: %v", err)
	}
	if len(s.All()) != 0 {
		t.Errorf("Expected 0 bookmarks, got %d", len(s.All()))
	}
}

func TestAddAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookmarks.gph")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if err := s.Add("Floodgap", testAddr("gopher.floodgap.com", "/")); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if err := s.Add("SDF", testAddr("sdf.org", "/")); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	// Append-only: the same record twice stays twice.
	if err := s.Add("Floodgap", testAddr("gopher.floodgap.com", "/")); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if len(s.All()) != 3 {
		t.Errorf("Expected 3 bookmarks in memory, got %d", len(s.All()))
	}

	reloaded, err := Open(path)
	if err != nil {
		t.Fatalf("Reload returned error: %v", err)
	}
	got := reloaded.All()
	if len(got) != 3 {
		t.Fatalf("Expected 3 bookmarks after reload, got %d", len(got))
	}
	if got[0].Label != "Floodgap" || got[0].Addr.Host != "gopher.floodgap.com" {
		t.Errorf("Unexpected first bookmark: %+v", got[0])
	}
	if got[1].Label != "SDF" {
		t.Errorf("Expected saved order preserved, got %+v", got[1])
	}
}

func TestRecordFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookmarks.gph")
	s, _ := Open(path)
	if err := s.Add("label\twith tab", testAddr("example.org", "/sel")); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}
	want := "1label with tab\t/sel\texample.org\t70\r\n"
	if string(data) != want {
		t.Errorf("Expected record %q, got %q", want, data)
	}
}

func TestMenuSource(t *testing.T) {
	s, _ := Open(filepath.Join(t.TempDir(), "bookmarks.gph"))
	s.Add("One", testAddr("one.example", "/"))
	s.Add("Two", testAddr("two.example", "/stuff"))

	doc := parser.Parse(s.MenuSource(), types.TypeMenu)
	if doc.LinkCount() != 2 {
		t.Fatalf("Expected 2 links in bookmarks menu, got %d", doc.LinkCount())
	}
	if it := doc.Link(2); it == nil || it.Addr.Host != "two.example" {
		t.Errorf("Unexpected link 2: %+v", it)
	}
}

func TestMenuSourceEmpty(t *testing.T) {
	s, _ := Open(filepath.Join(t.TempDir(), "bookmarks.gph"))
	doc := parser.Parse(s.MenuSource(), types.TypeMenu)
	if doc.LinkCount() != 0 {
		t.Errorf("Expected no links in empty bookmarks menu, got %d", doc.LinkCount())
	}
	joined := strings.Join([]string{doc.Items[len(doc.Items)-1].Display}, "")
	if !strings.Contains(joined, "No bookmarks yet") {
		t.Errorf("Expected placeholder line, got %q", joined)
	}
}
