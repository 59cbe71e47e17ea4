package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/studiowebux/burrow/internal/render"
	"github.com/studiowebux/burrow/internal/types"
)

// Adaptive color definitions for light/dark terminal support
var (
	colorRed    = lipgloss.AdaptiveColor{Light: "#8b0000", Dark: "#ff5f5f"}
	colorGreen  = lipgloss.AdaptiveColor{Light: "#006400", Dark: "#00ff00"}
	colorYellow = lipgloss.AdaptiveColor{Light: "#b8860b", Dark: "#ffff00"}
	colorGray   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"}
)

// Status bar styles
var (
	styleStatusInfo    = lipgloss.NewStyle().Foreground(colorYellow)
	styleStatusSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleStatusError   = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	styleIndicator     = lipgloss.NewStyle().Foreground(colorGray)
	stylePrompt        = lipgloss.NewStyle().Bold(true)
)

// viewHeight is the document area: everything above the status row.
func (m *Model) viewHeight() int {
	if m.height <= 1 {
		return 1
	}
	return m.height - 1
}

// currentFrame lays out the current document for the present terminal
// size. Pure recomputation; the frame holds no state.
func (m *Model) currentFrame() render.Frame {
	cur := m.stack.Current()
	if cur == nil {
		return render.Frame{}
	}

	doc := cur.Doc
	wide := m.cfg.Wide
	selected := cur.Selected
	if m.rawView {
		doc = &types.Document{Kind: types.DocText, Lines: rawLines(cur.Doc.Raw)}
		wide = true
		selected = 0
	}
	return render.Layout(doc, render.Options{
		Width:    m.width,
		Height:   m.viewHeight(),
		Selected: selected,
		Wide:     wide,
	})
}

// rawLines splits the received bytes for the raw source view, with no
// dot-termination or escape handling.
func rawLines(raw []byte) []string {
	lines := strings.Split(string(raw), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func (m *Model) maxScroll() int {
	n := len(m.currentFrame().Lines) - m.viewHeight()
	if n < 0 {
		return 0
	}
	return n
}

// renderMain renders the document area plus the status row.
func (m *Model) renderMain() string {
	frame := m.currentFrame()
	scroll := clamp(m.currentScroll(), 0, m.maxScroll())

	var b strings.Builder
	for i := 0; i < m.viewHeight(); i++ {
		idx := scroll + i
		if idx < len(frame.Lines) {
			b.WriteString(frame.Lines[idx])
		}
		b.WriteByte('\n')
	}
	b.WriteString(m.renderStatusBar())
	return b.String()
}

// renderStatusBar composes the bottom row: prompt, error banner, fetch
// spinner, or plain status on the left; channel indicator and history
// position on the right.
func (m *Model) renderStatusBar() string {
	right := m.renderIndicators()
	left := m.renderStatusLeft()

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m *Model) renderStatusLeft() string {
	if m.mode == ModeInput {
		label := "url> "
		if m.inputKind == InputSearch {
			label = "search> "
		}
		return stylePrompt.Render(label) + m.input.View()
	}

	if m.fetching {
		return m.spin.View() + styleStatusInfo.Render(m.status.text)
	}

	if m.status.text != "" {
		switch m.status.level {
		case statusError:
			return styleStatusError.Render(m.status.text)
		case statusSuccess:
			return styleStatusSuccess.Render(m.status.text)
		default:
			return styleStatusInfo.Render(m.status.text)
		}
	}

	if cur := m.stack.Current(); cur != nil {
		url := cur.Addr.URL()
		if m.rawView {
			url += " (raw)"
		}
		return styleIndicator.Render(runewidth.Truncate(url, m.width-12, "…"))
	}
	return ""
}

func (m *Model) renderIndicators() string {
	var parts []string
	if cur := m.stack.Current(); cur != nil {
		if cur.Tor {
			parts = append(parts, "tor")
		}
		if cur.TLS {
			parts = append(parts, "tls")
		}
	}
	if m.stack.Len() > 1 {
		parts = append(parts, fmt.Sprintf("%d/%d", m.stack.Index()+1, m.stack.Len()))
	}
	if len(parts) == 0 {
		return ""
	}
	return styleIndicator.Render(strings.Join(parts, " "))
}

// renderHelp renders the fixed help document with its own scroll
// offset; it never touches history.
func (m *Model) renderHelp() string {
	lines := m.helpLines()
	scroll := clamp(m.helpScroll, 0, m.helpMaxScroll())

	var b strings.Builder
	for i := 0; i < m.viewHeight(); i++ {
		idx := scroll + i
		if idx < len(lines) {
			b.WriteString(lines[idx])
		}
		b.WriteByte('\n')
	}
	b.WriteString(styleStatusInfo.Render("help") + "  " + styleIndicator.Render("up/down scroll, any other key to return"))
	return b.String()
}

func (m *Model) helpMaxScroll() int {
	n := len(m.helpLines()) - m.viewHeight()
	if n < 0 {
		return 0
	}
	return n
}
