package tui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/burrow/internal/keybinds"
	"github.com/studiowebux/burrow/internal/types"
)

// handleKeyPress is the input dispatcher: it turns a key event into an
// action for the current mode and applies it. A non-persistent status
// is cleared by any keypress; persistent banners (in-flight fetch or
// download) survive until their result replaces them.
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()

	switch m.mode {
	case ModeInput:
		return m.handleInputKey(msg, key)
	case ModeHelp:
		return m.handleHelpKey(key)
	case ModeError:
		// Any key dismisses the banner; keys bound in the error
		// context only dismiss, everything else falls through to
		// normal handling afterwards.
		m.mode = ModeNormal
		m.clearStatus()
		if _, ok := m.keys.Match(keybinds.ContextError, key); ok {
			return nil
		}
		return m.handleNormalKey(key)
	default:
		return m.handleNormalKey(key)
	}
}

func (m *Model) handleNormalKey(key string) tea.Cmd {
	if !m.status.persistent {
		m.clearStatus()
	}

	// Numeric link entry: digits accumulate; the link opens as soon
	// as no further digit could still name a link.
	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		return m.handleDigit(key)
	}
	if key == "esc" && m.digits != "" {
		m.digits = ""
		return nil
	}

	action, ok := m.keys.Match(keybinds.ContextNormal, key)
	if !ok {
		return nil
	}
	if action != keybinds.ActionOpenSelected {
		m.digits = ""
	}

	switch action {
	case keybinds.ActionQuit:
		m.cancelFetch()
		return tea.Quit
	case keybinds.ActionQuitHint:
		m.setStatus(statusInfo, "(press q to quit)", false)
	case keybinds.ActionBack:
		m.goBack()
	case keybinds.ActionForward:
		m.goForward()
	case keybinds.ActionSelectPrev:
		m.moveSelection(-1)
	case keybinds.ActionSelectNext:
		m.moveSelection(1)
	case keybinds.ActionPageUp:
		m.scrollBy(-m.viewHeight())
	case keybinds.ActionPageDown:
		m.scrollBy(m.viewHeight())
	case keybinds.ActionGoToTop:
		m.scrollTo(0)
	case keybinds.ActionGoToBottom:
		m.scrollTo(m.maxScroll())
	case keybinds.ActionOpenSelected:
		return m.openSelected()
	case keybinds.ActionPromptGoto:
		m.startInput(InputGoto, "")
	case keybinds.ActionPromptEditURL:
		if cur := m.stack.Current(); cur != nil {
			m.startInput(InputGoto, cur.Addr.URL())
		} else {
			m.startInput(InputGoto, "")
		}
	case keybinds.ActionCopyURL:
		m.copyCurrentURL()
	case keybinds.ActionSaveBookmark:
		m.saveBookmark()
	case keybinds.ActionDownload:
		m.downloadCurrent()
	case keybinds.ActionRawView:
		m.toggleRawView()
	case keybinds.ActionToggleWide:
		m.cfg.Wide = !m.cfg.Wide
		m.clampView()
	case keybinds.ActionShowBookmarks:
		return m.openInternal("/bookmarks")
	case keybinds.ActionShowHistory:
		return m.openInternal("/history")
	case keybinds.ActionShowHelp:
		m.prevMode = m.mode
		m.mode = ModeHelp
		m.helpScroll = 0
	}
	return nil
}

// handleDigit accumulates numeric link entry and opens the link once
// the buffered number is unambiguous (appending any digit would
// exceed the link count).
func (m *Model) handleDigit(key string) tea.Cmd {
	cur := m.stack.Current()
	if cur == nil || cur.Doc.Kind != types.DocMenu {
		return nil
	}
	links := cur.Doc.LinkCount()

	buf := m.digits + key
	n, err := strconv.Atoi(buf)
	if err != nil || n < 1 || n > links {
		m.digits = ""
		m.setStatus(statusError, "no link "+buf, false)
		return nil
	}

	cur.Selected = n
	m.ensureSelectionVisible()
	if n*10 > links {
		m.digits = ""
		return m.followLink(n)
	}
	m.digits += key
	m.setStatus(statusInfo, "link "+m.digits+" (enter to open)", false)
	return nil
}

func (m *Model) handleInputKey(msg tea.KeyMsg, key string) tea.Cmd {
	if action, ok := m.keys.Match(keybinds.ContextInput, key); ok {
		switch action {
		case keybinds.ActionInputSubmit:
			return m.submitInput()
		case keybinds.ActionInputCancel:
			m.cancelInput()
			return nil
		case keybinds.ActionQuitHint:
			m.setStatus(statusInfo, "(press q to quit)", false)
			return nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) handleHelpKey(key string) tea.Cmd {
	action, ok := m.keys.Match(keybinds.ContextHelp, key)
	if !ok {
		// Any unbound key leaves help.
		m.mode = m.prevMode
		return nil
	}

	page := m.height - 1
	switch action {
	case keybinds.ActionSelectPrev:
		m.helpScroll = clamp(m.helpScroll-1, 0, m.helpMaxScroll())
	case keybinds.ActionSelectNext:
		m.helpScroll = clamp(m.helpScroll+1, 0, m.helpMaxScroll())
	case keybinds.ActionPageUp:
		m.helpScroll = clamp(m.helpScroll-page, 0, m.helpMaxScroll())
	case keybinds.ActionPageDown:
		m.helpScroll = clamp(m.helpScroll+page, 0, m.helpMaxScroll())
	case keybinds.ActionDismiss:
		m.mode = m.prevMode
	case keybinds.ActionQuitHint:
		m.setStatus(statusInfo, "(press q to quit)", false)
	default:
		m.mode = m.prevMode
	}
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
