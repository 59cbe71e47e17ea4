package tui

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/burrow/internal/bookmarks"
	"github.com/studiowebux/burrow/internal/config"
	"github.com/studiowebux/burrow/internal/keybinds"
	"github.com/studiowebux/burrow/internal/transport"
	"github.com/studiowebux/burrow/internal/types"
)

func testModel(t *testing.T) *Model {
	t.Helper()
	cfg := config.Default()
	cfg.DownloadDir = t.TempDir()

	marks, err := bookmarks.Open(filepath.Join(t.TempDir(), "bookmarks.gph"))
	if err != nil {
		t.Fatalf("failed to open bookmarks: %v", err)
	}

	m := New(cfg, keybinds.NewDefaultRegistry(), marks, "")
	m.width = 80
	m.height = 24
	return &m
}

func menuAddr(host string) types.Address {
	return types.Address{Host: host, Port: 70, Selector: "/", Type: types.TypeMenu}
}

func menuDoc(links int) *types.Document {
	doc := &types.Document{Kind: types.DocMenu}
	for i := 0; i < links; i++ {
		doc.Items = append(doc.Items, types.Item{
			Type:    types.TypeMenu,
			Display: fmt.Sprintf("link %d", i+1),
			Addr:    types.Address{Host: "x", Port: 70, Selector: fmt.Sprintf("/%d", i+1), Type: types.TypeMenu},
		})
	}
	return doc
}

func textDoc(lines int) *types.Document {
	doc := &types.Document{Kind: types.DocText}
	for i := 0; i < lines; i++ {
		doc.Lines = append(doc.Lines, fmt.Sprintf("line %d", i+1))
	}
	return doc
}

// visit simulates a completed navigation: start the fetch, then feed
// its result message through Update at the current generation.
func visit(m *Model, addr types.Address, doc *types.Document) {
	m.startFetch(addr, "")
	m.Update(fetchDoneMsg{gen: m.fetchGen, addr: addr, doc: doc})
}

func key(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	panic("unknown test key " + s)
}

func TestNavigationPushesHistory(t *testing.T) {
	m := testModel(t)
	visit(m, menuAddr("a"), menuDoc(3))

	if m.stack.Len() != 1 {
		t.Fatalf("Expected 1 history entry, got %d", m.stack.Len())
	}
	if m.mode != ModeNormal {
		t.Errorf("Expected ModeNormal after successful fetch, got %d", m.mode)
	}
	if m.stack.Current().Selected != 1 {
		t.Errorf("Expected first link selected, got %d", m.stack.Current().Selected)
	}
	if m.fetching {
		t.Error("Expected fetching cleared after result")
	}
}

func TestBackRestoresScrollOffset(t *testing.T) {
	m := testModel(t)
	visit(m, menuAddr("a"), textDoc(100))
	m.scrollTo(40)

	visit(m, menuAddr("b"), menuDoc(2))
	m.Update(key("left"))

	cur := m.stack.Current()
	if cur.Addr.Host != "a" {
		t.Fatalf("Expected back to restore entry a, got %s", cur.Addr.Host)
	}
	if cur.Scroll != 40 {
		t.Errorf("Expected scroll offset 40 restored, got %d", cur.Scroll)
	}
}

func TestForwardDoesNotResurrectTruncatedEntry(t *testing.T) {
	m := testModel(t)
	visit(m, menuAddr("a"), menuDoc(1))
	visit(m, menuAddr("b"), menuDoc(1))
	m.Update(key("left"))
	visit(m, menuAddr("c"), menuDoc(1))

	if m.stack.Len() != 2 {
		t.Fatalf("Expected b truncated, stack len %d", m.stack.Len())
	}
	m.Update(key("right"))
	if m.stack.Current().Addr.Host != "c" {
		t.Errorf("Forward resurrected a stale entry: %s", m.stack.Current().Addr.Host)
	}
}

func TestStaleFetchResultDiscarded(t *testing.T) {
	m := testModel(t)
	visit(m, menuAddr("a"), menuDoc(1))

	m.startFetch(menuAddr("slow"), "")
	staleGen := m.fetchGen
	m.startFetch(menuAddr("fast"), "")

	// The superseded fetch lands first; it must not touch the session.
	m.Update(fetchDoneMsg{gen: staleGen, addr: menuAddr("slow"), doc: menuDoc(1)})
	if m.stack.Current().Addr.Host != "a" {
		t.Fatalf("Stale result mutated the session: %s", m.stack.Current().Addr.Host)
	}
	if !m.fetching {
		t.Error("Expected the current fetch to still be in flight")
	}

	m.Update(fetchDoneMsg{gen: m.fetchGen, addr: menuAddr("fast"), doc: menuDoc(1)})
	if m.stack.Current().Addr.Host != "fast" {
		t.Errorf("Expected current fetch to land, got %s", m.stack.Current().Addr.Host)
	}
}

func TestFetchTimeoutEntersErrorMode(t *testing.T) {
	m := testModel(t)
	visit(m, menuAddr("a"), menuDoc(1))

	m.startFetch(menuAddr("dead"), "")
	err := fmt.Errorf("%w: dead: connection timed out", transport.ErrConnect)
	m.Update(fetchDoneMsg{gen: m.fetchGen, addr: menuAddr("dead"), err: err})

	if m.mode != ModeError {
		t.Errorf("Expected ModeError, got %d", m.mode)
	}
	if m.status.text == "" {
		t.Error("Expected a non-empty error message")
	}
	if m.stack.Current().Addr.Host != "a" {
		t.Errorf("Expected current entry unchanged, got %s", m.stack.Current().Addr.Host)
	}
	if m.stack.Len() != 1 {
		t.Errorf("Expected no entry pushed on failure, len %d", m.stack.Len())
	}
}

func TestErrorModeDismissedByKey(t *testing.T) {
	m := testModel(t)
	visit(m, menuAddr("a"), menuDoc(1))
	m.startFetch(menuAddr("dead"), "")
	m.Update(fetchDoneMsg{gen: m.fetchGen, addr: menuAddr("dead"), err: errors.New("boom")})

	m.Update(key("esc"))
	if m.mode != ModeNormal {
		t.Errorf("Expected esc to dismiss the error banner, mode %d", m.mode)
	}
	if m.status.text != "" {
		t.Errorf("Expected status cleared, got %q", m.status.text)
	}
}

func TestStatusLastWriteWins(t *testing.T) {
	m := testModel(t)
	m.setStatus(statusInfo, "fetching...", true)
	m.setStatus(statusSuccess, "done", false)

	if m.status.text != "done" {
		t.Errorf("Expected only the last status visible, got %q", m.status.text)
	}
	if m.status.persistent {
		t.Error("Expected the replacement status to carry its own persistence")
	}
}

func TestStatusClearedOnUnrelatedKeypress(t *testing.T) {
	m := testModel(t)
	visit(m, menuAddr("a"), textDoc(100))

	m.setStatus(statusSuccess, "bookmarked", false)
	m.Update(key("j"))
	if m.status.text != "" {
		t.Errorf("Expected keypress to clear the status, got %q", m.status.text)
	}

	m.setStatus(statusInfo, "downloading file", true)
	m.Update(key("j"))
	if m.status.text != "downloading file" {
		t.Errorf("Expected persistent status to survive keypresses, got %q", m.status.text)
	}
}

func TestScrollClamped(t *testing.T) {
	m := testModel(t)
	visit(m, menuAddr("a"), textDoc(100))

	m.scrollBy(-10)
	if got := m.currentScroll(); got != 0 {
		t.Errorf("Expected scroll clamped at 0, got %d", got)
	}

	m.scrollBy(10000)
	want := 100 - m.viewHeight()
	if got := m.currentScroll(); got != want {
		t.Errorf("Expected scroll clamped at %d, got %d", want, got)
	}
}

func TestScrollClampWithShortDocument(t *testing.T) {
	m := testModel(t)
	visit(m, menuAddr("a"), textDoc(3))
	m.scrollBy(50)
	if got := m.currentScroll(); got != 0 {
		t.Errorf("Expected no scrolling on a short document, got %d", got)
	}
}

func TestSelectionMovesAndClamps(t *testing.T) {
	m := testModel(t)
	visit(m, menuAddr("a"), menuDoc(3))

	m.Update(key("j"))
	m.Update(key("j"))
	if got := m.stack.Current().Selected; got != 3 {
		t.Fatalf("Expected selection 3, got %d", got)
	}
	m.Update(key("j"))
	if got := m.stack.Current().Selected; got != 3 {
		t.Errorf("Expected selection clamped at 3, got %d", got)
	}
	m.Update(key("k"))
	if got := m.stack.Current().Selected; got != 2 {
		t.Errorf("Expected selection 2, got %d", got)
	}
}

func TestOpenSelectedStartsFetch(t *testing.T) {
	m := testModel(t)
	visit(m, menuAddr("a"), menuDoc(3))

	gen := m.fetchGen
	_, cmd := m.Update(key("enter"))
	if cmd == nil {
		t.Fatal("Expected a fetch command from enter")
	}
	if m.fetchGen != gen+1 {
		t.Errorf("Expected a new fetch generation, got %d", m.fetchGen)
	}
	if !m.fetching {
		t.Error("Expected fetching flag set")
	}
	if !m.status.persistent {
		t.Error("Expected persistent in-progress banner")
	}
}

func TestDigitEntryOpensUnambiguousLink(t *testing.T) {
	m := testModel(t)
	visit(m, menuAddr("a"), menuDoc(3))

	// 3 links: "2" cannot be extended, so it opens immediately.
	_, cmd := m.Update(key("2"))
	if cmd == nil {
		t.Fatal("Expected digit 2 to open the link")
	}
	if m.digits != "" {
		t.Errorf("Expected digit buffer cleared, got %q", m.digits)
	}
}

func TestDigitEntryBuffersAmbiguousNumber(t *testing.T) {
	m := testModel(t)
	visit(m, menuAddr("a"), menuDoc(12))

	// 12 links: "1" could become 10..12, so it buffers.
	_, cmd := m.Update(key("1"))
	if cmd != nil {
		t.Fatal("Expected digit 1 to buffer, not open")
	}
	if m.digits != "1" {
		t.Errorf("Expected digit buffer %q, got %q", "1", m.digits)
	}
	if m.stack.Current().Selected != 1 {
		t.Errorf("Expected link 1 selected while buffering, got %d", m.stack.Current().Selected)
	}

	_, cmd = m.Update(key("2"))
	if cmd == nil {
		t.Fatal("Expected 12 to open")
	}
}

func TestGotoPromptFlow(t *testing.T) {
	m := testModel(t)
	visit(m, menuAddr("a"), menuDoc(1))

	m.Update(key("g"))
	if m.mode != ModeInput {
		t.Fatalf("Expected ModeInput after g, got %d", m.mode)
	}

	for _, r := range "gopher://example.org" {
		m.Update(key(string(r)))
	}
	_, cmd := m.Update(key("enter"))
	if cmd == nil {
		t.Fatal("Expected submit to dispatch a fetch")
	}
	if m.mode != ModeNormal {
		t.Errorf("Expected ModeNormal after submit, got %d", m.mode)
	}
}

func TestGotoPromptBadURLStaysInInput(t *testing.T) {
	m := testModel(t)
	m.Update(key("g"))
	for _, r := range "http://nope" {
		m.Update(key(string(r)))
	}
	_, cmd := m.Update(key("enter"))
	if cmd != nil {
		t.Fatal("Expected no fetch for a bad URL")
	}
	if m.mode != ModeInput {
		t.Errorf("Expected to remain in ModeInput, got %d", m.mode)
	}
	if m.status.level != statusError || m.status.text == "" {
		t.Errorf("Expected an input error status, got %+v", m.status)
	}
}

func TestInputCancel(t *testing.T) {
	m := testModel(t)
	m.Update(key("g"))
	m.Update(key("x"))
	m.Update(key("esc"))
	if m.mode != ModeNormal {
		t.Errorf("Expected esc to cancel input, got mode %d", m.mode)
	}
}

func TestSearchLinkPromptsForQuery(t *testing.T) {
	m := testModel(t)
	doc := &types.Document{Kind: types.DocMenu, Items: []types.Item{{
		Type:    types.TypeSearch,
		Display: "Veronica",
		Addr:    types.Address{Host: "v", Port: 70, Selector: "/v2/vs", Type: types.TypeSearch},
	}}}
	visit(m, menuAddr("a"), doc)

	m.Update(key("enter"))
	if m.mode != ModeInput || m.inputKind != InputSearch {
		t.Fatalf("Expected search prompt, mode=%d kind=%d", m.mode, m.inputKind)
	}
	if m.searchTarget.Host != "v" {
		t.Errorf("Expected search target recorded, got %+v", m.searchTarget)
	}
}

func TestHelpModeRoundTrip(t *testing.T) {
	m := testModel(t)
	visit(m, menuAddr("a"), menuDoc(1))

	m.Update(key("h"))
	if m.mode != ModeHelp {
		t.Fatalf("Expected ModeHelp, got %d", m.mode)
	}
	// An unbound key returns to the prior mode.
	m.Update(key("z"))
	if m.mode != ModeNormal {
		t.Errorf("Expected return to ModeNormal, got %d", m.mode)
	}
	if m.stack.Current().Addr.Host != "a" {
		t.Errorf("Help must not disturb history, got %s", m.stack.Current().Addr.Host)
	}
}

func TestCtrlCHintsInsteadOfQuitting(t *testing.T) {
	m := testModel(t)
	visit(m, menuAddr("a"), menuDoc(1))

	_, cmd := m.Update(key("ctrl+c"))
	if cmd != nil {
		t.Error("Expected ctrl+c to not quit")
	}
	if !strings.Contains(m.status.text, "q to quit") {
		t.Errorf("Expected quit hint, got %q", m.status.text)
	}
}

func TestQuit(t *testing.T) {
	m := testModel(t)
	visit(m, menuAddr("a"), menuDoc(1))

	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("Expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected tea.QuitMsg from q")
	}
}

func TestInternalBookmarksPage(t *testing.T) {
	m := testModel(t)
	m.marks.Add("Floodgap", menuAddr("gopher.floodgap.com"))

	m.Update(key("b"))
	cur := m.stack.Current()
	if cur == nil || !cur.Addr.IsInternal() {
		t.Fatal("Expected internal bookmarks entry")
	}
	if cur.Doc.LinkCount() != 1 {
		t.Errorf("Expected 1 bookmark link, got %d", cur.Doc.LinkCount())
	}
}

func TestInternalHistoryPage(t *testing.T) {
	m := testModel(t)
	visit(m, menuAddr("a"), menuDoc(1))
	visit(m, menuAddr("b"), menuDoc(1))

	m.Update(key("a"))
	cur := m.stack.Current()
	if cur == nil || !cur.Addr.IsInternal() {
		t.Fatal("Expected internal history entry")
	}
	if cur.Doc.LinkCount() != 2 {
		t.Errorf("Expected 2 history links, got %d", cur.Doc.LinkCount())
	}
}

func TestSaveBookmarkReportsStatus(t *testing.T) {
	m := testModel(t)
	visit(m, menuAddr("gopher.floodgap.com"), menuDoc(1))

	m.Update(key("s"))
	if m.status.level != statusSuccess {
		t.Errorf("Expected success status, got %+v", m.status)
	}
	if len(m.marks.All()) != 1 {
		t.Errorf("Expected 1 bookmark saved, got %d", len(m.marks.All()))
	}
}

func TestRawViewToggle(t *testing.T) {
	m := testModel(t)
	doc := menuDoc(2)
	doc.Raw = []byte("1link 1\t/1\tx\t70\r\n1link 2\t/2\tx\t70\r\n")
	visit(m, menuAddr("a"), doc)

	m.Update(key("r"))
	if !m.rawView {
		t.Fatal("Expected raw view on")
	}
	m.Update(key("r"))
	if m.rawView {
		t.Error("Expected raw view off")
	}
}

func TestViewRendersWithoutPanic(t *testing.T) {
	m := testModel(t)
	if out := m.View(); out == "" {
		t.Error("Expected non-empty view before first fetch")
	}

	visit(m, menuAddr("a"), menuDoc(3))
	if out := m.View(); !strings.Contains(out, "link 1") {
		t.Errorf("Expected menu content in view, got %q", out)
	}

	m.Update(key("h"))
	if out := m.View(); !strings.Contains(out, "help") {
		t.Errorf("Expected help view, got %q", out)
	}
}
