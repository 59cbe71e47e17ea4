package tui

import (
	"context"
	"errors"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/burrow/internal/gopher"
	"github.com/studiowebux/burrow/internal/history"
	"github.com/studiowebux/burrow/internal/parser"
	"github.com/studiowebux/burrow/internal/render"
	"github.com/studiowebux/burrow/internal/transport"
	"github.com/studiowebux/burrow/internal/types"
)

// openURL parses and navigates to a typed or configured URL.
func (m *Model) openURL(raw string) tea.Cmd {
	addr, err := types.ParseURL(raw)
	if err != nil {
		m.setStatus(statusError, "bad URL: "+err.Error(), false)
		return nil
	}
	return m.navigateTo(addr, "")
}

// navigateTo opens an address: internal pages resolve synchronously,
// everything else dispatches a fetch.
func (m *Model) navigateTo(addr types.Address, query string) tea.Cmd {
	if addr.IsInternal() {
		doc := m.internalPage(addr)
		if doc == nil {
			m.setStatus(statusError, "no such page: "+addr.URL(), false)
			return nil
		}
		m.pushEntry(&history.Entry{Addr: addr, Doc: doc})
		return nil
	}
	return m.startFetch(addr, query)
}

// openInternal navigates to one of the client's own pages.
func (m *Model) openInternal(selector string) tea.Cmd {
	return m.navigateTo(types.Address{
		Host:     types.InternalHost,
		Port:     types.DefaultPort,
		Selector: selector,
		Type:     types.TypeMenu,
	}, "")
}

// transportOptions applies the selection policy: session flags
// override address hints, and Tor and TLS never combine.
func (m *Model) transportOptions(addr types.Address) transport.Options {
	opts := transport.Options{
		Timeout:   m.cfg.Timeout(),
		ProxyAddr: m.cfg.Proxy,
	}
	if m.cfg.Tor {
		opts.Tor = true
	} else if m.cfg.TLS || addr.TLSHint {
		opts.TLS = true
	}
	return opts
}

// startFetch supersedes any in-flight fetch and dispatches a new one
// as a bubbletea command. The generation number stamped on the result
// lets Update discard anything stale.
func (m *Model) startFetch(addr types.Address, query string) tea.Cmd {
	m.cancelFetch()
	m.fetchGen++
	gen := m.fetchGen

	ctx, cancel := context.WithCancel(context.Background())
	m.fetchCancel = cancel
	m.fetching = true
	m.setStatus(statusInfo, "fetching "+addr.URL(), true)
	slog.Debug("fetch start", "url", addr.URL(), "gen", gen)

	opts := m.transportOptions(addr)
	fetch := func() tea.Msg {
		resp, err := gopher.Fetch(ctx, addr, query, opts)
		if err != nil {
			return fetchDoneMsg{gen: gen, addr: addr, err: err}
		}
		doc := parser.Parse(resp.Body, addr.Type)
		return fetchDoneMsg{gen: gen, addr: addr, doc: doc, tls: resp.TLS, tor: resp.Tor}
	}
	return tea.Batch(m.spin.Tick, fetch)
}

// cancelFetch abandons the in-flight fetch, if any.
func (m *Model) cancelFetch() {
	if m.fetchCancel != nil {
		m.fetchCancel()
		m.fetchCancel = nil
	}
	m.fetching = false
}

// openSelected follows the currently selected link, or the buffered
// numeric link entry.
func (m *Model) openSelected() tea.Cmd {
	if m.digits != "" {
		n, err := strconv.Atoi(m.digits)
		m.digits = ""
		if err == nil {
			return m.followLink(n)
		}
		return nil
	}
	cur := m.stack.Current()
	if cur == nil || cur.Doc.Kind != types.DocMenu || cur.Selected == 0 {
		return nil
	}
	return m.followLink(cur.Selected)
}

// followLink opens link index in the current menu, dispatching on the
// item type.
func (m *Model) followLink(index int) tea.Cmd {
	cur := m.stack.Current()
	if cur == nil {
		return nil
	}
	item := cur.Doc.Link(index)
	if item == nil {
		m.setStatus(statusError, "no link "+strconv.Itoa(index), false)
		return nil
	}

	switch {
	case !item.Type.IsSupported():
		m.setStatus(statusError, item.Type.String()+" items are not supported", false)
		return nil
	case item.Type == types.TypeSearch:
		m.searchTarget = item.Addr
		m.startInput(InputSearch, "")
		return nil
	case item.Type == types.TypeHTML:
		return m.openHTMLItem(item)
	case item.Type == types.TypeTelnet:
		return m.openTelnetItem(item)
	case item.Type.IsDownload():
		return m.startDownload(item.Addr)
	default:
		return m.navigateTo(item.Addr, "")
	}
}

// openHTMLItem handles h-type items. Their selector carries the web
// URL after a "URL:" prefix; there is no browser here, so the URL goes
// to the clipboard.
func (m *Model) openHTMLItem(item *types.Item) tea.Cmd {
	url := strings.TrimPrefix(strings.TrimPrefix(item.Addr.Selector, "/"), "URL:")
	if url == item.Addr.Selector || url == "" {
		m.setStatus(statusError, "HTML item carries no URL", false)
		return nil
	}
	if err := clipboard.WriteAll(url); err != nil {
		m.setStatus(statusError, "clipboard unavailable: "+url, false)
		return nil
	}
	m.setStatus(statusSuccess, "copied to clipboard: "+url, false)
	return nil
}

// openTelnetItem hands the terminal to the system telnet client for
// the duration of the session.
func (m *Model) openTelnetItem(item *types.Item) tea.Cmd {
	c := exec.Command("telnet", item.Addr.Host, strconv.Itoa(item.Addr.Port))
	return tea.ExecProcess(c, func(err error) tea.Msg {
		return telnetDoneMsg{err: err}
	})
}

// startDownload fetches addr as binary and writes it to the download
// directory. The persistent status slot holds the in-progress banner
// until the result replaces it.
func (m *Model) startDownload(addr types.Address) tea.Cmd {
	m.cancelFetch()
	m.fetchGen++
	gen := m.fetchGen

	ctx, cancel := context.WithCancel(context.Background())
	m.fetchCancel = cancel
	m.fetching = true
	m.setStatus(statusInfo, "downloading "+addr.DownloadFilename(), true)

	opts := m.transportOptions(addr)
	dir := m.cfg.DownloadDir
	dl := func() tea.Msg {
		resp, err := gopher.Fetch(ctx, addr, "", opts)
		if err != nil {
			return downloadDoneMsg{gen: gen, err: err}
		}
		path, n, err := gopher.Download(resp, dir, addr)
		if err != nil {
			return downloadDoneMsg{gen: gen, err: err}
		}
		return downloadDoneMsg{gen: gen, path: path, sizeHuman: render.HumanSize(n)}
	}
	return tea.Batch(m.spin.Tick, dl)
}

// downloadCurrent saves the current document's exact received bytes.
// No re-fetch: Raw already holds them.
func (m *Model) downloadCurrent() {
	cur := m.stack.Current()
	if cur == nil {
		return
	}
	if cur.Addr.IsInternal() {
		m.setStatus(statusError, "nothing to download here", false)
		return
	}
	path, n, err := gopher.Download(&gopher.Response{Body: cur.Doc.Raw}, m.cfg.DownloadDir, cur.Addr)
	if err != nil {
		m.setStatus(statusError, err.Error(), false)
		return
	}
	m.setStatus(statusSuccess, "Download complete! "+render.HumanSize(n)+" saved to "+path, false)
}

// goBack moves within existing history: no fetch, scroll and
// selection restore from the entry.
func (m *Model) goBack() {
	if !m.stack.Back() {
		m.setStatus(statusInfo, "start of history", false)
		return
	}
	m.rawView = false
}

func (m *Model) goForward() {
	if !m.stack.Forward() {
		m.setStatus(statusInfo, "end of history", false)
		return
	}
	m.rawView = false
}

// moveSelection moves the selected link on menus, or scrolls by one
// line on text documents.
func (m *Model) moveSelection(delta int) {
	cur := m.stack.Current()
	if cur == nil {
		return
	}
	if cur.Doc.Kind != types.DocMenu || m.rawView {
		m.scrollBy(delta)
		return
	}
	links := cur.Doc.LinkCount()
	if links == 0 {
		m.scrollBy(delta)
		return
	}
	cur.Selected = clamp(cur.Selected+delta, 1, links)
	m.ensureSelectionVisible()
}

// ensureSelectionVisible scrolls just enough to keep the selected
// link's line inside the viewport.
func (m *Model) ensureSelectionVisible() {
	cur := m.stack.Current()
	if cur == nil || cur.Selected == 0 {
		return
	}
	frame := m.currentFrame()
	for _, link := range frame.Links {
		if link.Index != cur.Selected {
			continue
		}
		if link.Line < cur.Scroll {
			cur.Scroll = link.Line
		} else if link.Line >= cur.Scroll+m.viewHeight() {
			cur.Scroll = link.Line - m.viewHeight() + 1
		}
		return
	}
}

func (m *Model) scrollBy(delta int) {
	m.scrollTo(m.currentScroll() + delta)
}

// scrollTo clamps the per-entry scroll offset to the content.
func (m *Model) scrollTo(offset int) {
	cur := m.stack.Current()
	if cur == nil {
		return
	}
	cur.Scroll = clamp(offset, 0, m.maxScroll())
}

func (m *Model) currentScroll() int {
	if cur := m.stack.Current(); cur != nil {
		return cur.Scroll
	}
	return 0
}

// clampView re-clamps scroll after a resize or layout toggle.
func (m *Model) clampView() {
	if cur := m.stack.Current(); cur != nil {
		cur.Scroll = clamp(cur.Scroll, 0, m.maxScroll())
	}
}

func (m *Model) startInput(kind InputKind, prefill string) {
	m.inputKind = kind
	m.input.SetValue(prefill)
	m.input.CursorEnd()
	m.input.Focus()
	m.mode = ModeInput
}

func (m *Model) cancelInput() {
	m.input.Blur()
	m.input.SetValue("")
	m.mode = ModeNormal
}

// submitInput resolves the prompt. A malformed URL reports and stays
// in input mode so the user can fix the typo in place.
func (m *Model) submitInput() tea.Cmd {
	value := strings.TrimSpace(m.input.Value())

	switch m.inputKind {
	case InputSearch:
		target := m.searchTarget
		m.cancelInput()
		if value == "" {
			return nil
		}
		return m.navigateTo(target, value)
	default:
		if value == "" {
			m.cancelInput()
			return nil
		}
		addr, err := types.ParseURL(value)
		if err != nil {
			m.setStatus(statusError, "bad URL: "+err.Error(), false)
			return nil
		}
		m.cancelInput()
		return m.navigateTo(addr, "")
	}
}

func (m *Model) copyCurrentURL() {
	cur := m.stack.Current()
	if cur == nil {
		return
	}
	url := cur.Addr.URL()
	if err := clipboard.WriteAll(url); err != nil {
		m.setStatus(statusError, "clipboard unavailable: "+url, false)
		return
	}
	m.setStatus(statusSuccess, "copied "+url, false)
}

// saveBookmark appends the current page to the bookmarks file. Write
// failures report and never abort the session.
func (m *Model) saveBookmark() {
	cur := m.stack.Current()
	if cur == nil {
		return
	}
	if cur.Addr.IsInternal() {
		m.setStatus(statusError, "internal pages cannot be bookmarked", false)
		return
	}
	label := cur.Addr.Host + cur.Addr.Selector
	if err := m.marks.Add(label, cur.Addr); err != nil {
		m.setStatus(statusError, "bookmark not saved: "+err.Error(), false)
		return
	}
	m.setStatus(statusSuccess, "bookmarked "+cur.Addr.URL(), false)
}

func (m *Model) toggleRawView() {
	cur := m.stack.Current()
	if cur == nil || len(cur.Doc.Raw) == 0 {
		return
	}
	m.rawView = !m.rawView
	m.clampView()
}

// fetchErrorMessage maps the transport error taxonomy to the status
// line, with a recovery hint where one exists.
func fetchErrorMessage(err error) string {
	switch {
	case errors.Is(err, transport.ErrTLSHandshake):
		return err.Error() + " (try again without TLS)"
	case errors.Is(err, transport.ErrProxy):
		return err.Error() + " (is Tor running?)"
	case errors.Is(err, context.Canceled):
		return "fetch canceled"
	default:
		return err.Error()
	}
}
