package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/burrow/internal/bookmarks"
	"github.com/studiowebux/burrow/internal/config"
	"github.com/studiowebux/burrow/internal/history"
	"github.com/studiowebux/burrow/internal/keybinds"
	"github.com/studiowebux/burrow/internal/types"
	"github.com/studiowebux/burrow/internal/version"
)

// Mode represents the current TUI mode
type Mode int

const (
	ModeNormal Mode = iota // keys navigate, select, scroll
	ModeInput              // single-line prompt active
	ModeHelp               // help screen shown
	ModeError              // error banner supersedes the status line
)

// InputKind says what the active prompt submits to
type InputKind int

const (
	InputGoto   InputKind = iota // go to typed URL
	InputSearch                  // query for a type-7 item
)

// statusLevel classifies the single status slot for styling
type statusLevel int

const (
	statusInfo statusLevel = iota
	statusSuccess
	statusError
)

// statusSlot is the single-slot status message: any new status
// unconditionally replaces the previous one. Persistent statuses
// (in-progress fetch or download banners) survive keypresses until
// explicitly replaced.
type statusSlot struct {
	text       string
	level      statusLevel
	persistent bool
}

// Model owns the whole session: history, mode, status slot, and the
// at-most-one in-flight fetch. All mutation happens in Update on the
// bubbletea loop; fetch results are marshaled back in as messages and
// stale generations are discarded.
type Model struct {
	cfg   config.Config
	keys  *keybinds.Registry
	stack *history.Stack
	marks *bookmarks.Store

	mode     Mode
	prevMode Mode // mode to restore when help is dismissed

	inputKind    InputKind
	input        textinput.Model
	searchTarget types.Address // type-7 item awaiting its query

	status statusSlot

	// Fetch state: the generation counter supersedes older fetches,
	// the cancel func frees their sockets.
	fetchGen    int
	fetchCancel context.CancelFunc
	fetching    bool
	spin        spinner.Model

	rawView    bool // current entry shows raw source
	helpScroll int
	digits     string // numeric link entry buffer

	width  int
	height int

	startURL        string
	updateAvailable string // non-empty: newer version string
}

// New creates the session model. startURL overrides the configured
// start page when non-empty.
func New(cfg config.Config, keys *keybinds.Registry, marks *bookmarks.Store, startURL string) Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 512

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	if startURL == "" {
		startURL = cfg.Start
	}

	return Model{
		cfg:      cfg,
		keys:     keys,
		stack:    &history.Stack{},
		marks:    marks,
		mode:     ModeNormal,
		input:    ti,
		spin:     sp,
		startURL: startURL,
	}
}

// Init opens the start page and kicks off the background update check.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.openURL(m.startURL)}
	if !m.cfg.Tor {
		cmds = append(cmds, checkUpdateCmd())
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampView()

	case spinner.TickMsg:
		if m.fetching {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}

	case fetchDoneMsg:
		return m, m.handleFetchDone(msg)

	case downloadDoneMsg:
		return m, m.handleDownloadDone(msg)

	case telnetDoneMsg:
		if msg.err != nil {
			m.setStatus(statusError, "telnet session failed: "+msg.err.Error(), false)
		}

	case updateCheckMsg:
		if msg.err == nil && msg.available {
			m.updateAvailable = msg.latest
			m.setStatus(statusInfo, "burrow v"+msg.latest+" is available", false)
		}
	}

	return m, nil
}

// handleFetchDone folds a finished fetch back into the session. The
// generation check is the cancellation mechanism: a result from a
// superseded fetch never touches the session.
func (m *Model) handleFetchDone(msg fetchDoneMsg) tea.Cmd {
	if msg.gen != m.fetchGen {
		slog.Debug("discarding stale fetch result", "gen", msg.gen, "current", m.fetchGen)
		return nil
	}
	m.fetching = false
	m.fetchCancel = nil

	if msg.err != nil {
		slog.Debug("fetch failed", "url", msg.addr.URL(), "err", msg.err)
		m.mode = ModeError
		m.setStatus(statusError, fetchErrorMessage(msg.err), false)
		return nil
	}

	slog.Debug("fetch complete", "url", msg.addr.URL(), "bytes", len(msg.doc.Raw))
	m.pushEntry(&history.Entry{Addr: msg.addr, Doc: msg.doc, TLS: msg.tls, Tor: msg.tor})
	return nil
}

// handleDownloadDone resolves the persistent download banner.
func (m *Model) handleDownloadDone(msg downloadDoneMsg) tea.Cmd {
	if msg.gen != m.fetchGen {
		return nil
	}
	m.fetching = false
	m.fetchCancel = nil

	if msg.err != nil {
		m.mode = ModeError
		m.setStatus(statusError, fetchErrorMessage(msg.err), false)
		return nil
	}
	m.setStatus(statusSuccess, "Download complete! "+msg.sizeHuman+" saved to "+msg.path, false)
	return nil
}

// pushEntry appends a new history entry, truncating any forward
// branch, and resets per-document view state.
func (m *Model) pushEntry(e *history.Entry) {
	if e.Doc.Kind == types.DocMenu && e.Doc.LinkCount() > 0 {
		e.Selected = 1
	}
	m.stack.Push(e)
	m.rawView = false
	m.digits = ""
	m.mode = ModeNormal
	m.clearStatus()
}

// setStatus replaces the single status slot: last write wins, no
// merging or stacking of messages.
func (m *Model) setStatus(level statusLevel, text string, persistent bool) {
	m.status = statusSlot{text: text, level: level, persistent: persistent}
}

func (m *Model) clearStatus() {
	m.status = statusSlot{}
}

// View renders the TUI
func (m *Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}
	if m.mode == ModeHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// Custom message types
type fetchDoneMsg struct {
	gen  int
	addr types.Address
	doc  *types.Document
	tls  bool
	tor  bool
	err  error
}

type downloadDoneMsg struct {
	gen       int
	path      string
	sizeHuman string
	err       error
}

type telnetDoneMsg struct {
	err error
}

type updateCheckMsg struct {
	available bool
	latest    string
	err       error
}

// checkUpdateCmd checks the release feed in the background.
func checkUpdateCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		available, latest, err := version.CheckForUpdate(ctx, version.Version)
		return updateCheckMsg{available: available, latest: latest, err: err}
	}
}
