package tui

import (
	"fmt"
	"strings"

	"github.com/studiowebux/burrow/internal/keybinds"
	"github.com/studiowebux/burrow/internal/parser"
	"github.com/studiowebux/burrow/internal/types"
	"github.com/studiowebux/burrow/internal/version"
)

// Internal pages are gophermap source served from gopher://burrow/
// and parsed by the normal menu parser, exactly like remote menus.

const homeSource = "i\t\tburrow\t70\r\n" +
	"i      burrow - a gopher client\t\tburrow\t70\r\n" +
	"i\t\tburrow\t70\r\n" +
	"1Floodgap\t/\tgopher.floodgap.com\t70\r\n" +
	"1SDF public access UNIX\t/\tsdf.org\t70\r\n" +
	"1The Gopher Lawn directory\t/lawn\tbitreich.org\t70\r\n" +
	"7Veronica-2 search\t/v2/vs\tgopher.floodgap.com\t70\r\n" +
	"i\t\tburrow\t70\r\n" +
	"1Bookmarks\t/bookmarks\tburrow\t70\r\n" +
	"1Session history\t/history\tburrow\t70\r\n" +
	"i\t\tburrow\t70\r\n" +
	"ipress h for help, g to go to a URL, q to quit\t\tburrow\t70\r\n"

// internalPage resolves a gopher://burrow address to its document, or
// nil when the selector names nothing.
func (m *Model) internalPage(addr types.Address) *types.Document {
	switch strings.TrimSuffix(addr.Selector, "/") + "/" {
	case "/", "/home/":
		return parser.Parse([]byte(homeSource), types.TypeMenu)
	case "/bookmarks/":
		return parser.Parse(m.marks.MenuSource(), types.TypeMenu)
	case "/history/":
		return parser.Parse(m.historySource(), types.TypeMenu)
	default:
		return nil
	}
}

// historySource renders the session history as gophermap, newest
// first, so the history menu is just another parsed menu.
func (m *Model) historySource() []byte {
	var b strings.Builder
	b.WriteString("iSession history (newest first)\t\tburrow\t70\r\n")
	b.WriteString("i\t\tburrow\t70\r\n")

	entries := m.stack.Entries()
	if len(entries) == 0 {
		b.WriteString("iNothing visited yet.\t\tburrow\t70\r\n")
	}
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		if e.Addr.IsInternal() {
			continue
		}
		label := strings.ReplaceAll(e.Addr.URL(), "\t", " ")
		fmt.Fprintf(&b, "%c%s\t%s\t%s\t%d\r\n",
			e.Addr.Type.Char(), label, e.Addr.Selector, e.Addr.Host, e.Addr.Port)
	}
	return []byte(b.String())
}

// helpLines builds the help screen from the live registry, so user
// overrides show their actual keys.
func (m *Model) helpLines() []string {
	bind := func(action keybinds.Action) string {
		keys := m.keys.KeysFor(keybinds.ContextNormal, action)
		return strings.Join(keys, ", ")
	}

	rows := []struct {
		action keybinds.Action
		desc   string
	}{
		{keybinds.ActionSelectPrev, "select previous link / scroll up"},
		{keybinds.ActionSelectNext, "select next link / scroll down"},
		{keybinds.ActionOpenSelected, "open the selected link"},
		{keybinds.ActionBack, "back in history"},
		{keybinds.ActionForward, "forward in history"},
		{keybinds.ActionPageUp, "page up"},
		{keybinds.ActionPageDown, "page down"},
		{keybinds.ActionPromptGoto, "go to URL"},
		{keybinds.ActionPromptEditURL, "edit current URL"},
		{keybinds.ActionCopyURL, "copy current URL"},
		{keybinds.ActionSaveBookmark, "save bookmark"},
		{keybinds.ActionShowBookmarks, "show bookmarks"},
		{keybinds.ActionShowHistory, "show session history"},
		{keybinds.ActionDownload, "save current document"},
		{keybinds.ActionRawView, "toggle raw source"},
		{keybinds.ActionToggleWide, "toggle wide layout"},
		{keybinds.ActionShowHelp, "this help"},
		{keybinds.ActionQuit, "quit"},
	}

	lines := []string{
		"",
		"   burrow " + versionLine(m),
		"",
		"   Type a link number to open it; digits buffer until they",
		"   are unambiguous. Gopher URLs look like",
		"   gopher://host[:port]/type/selector; gophers:// requests TLS.",
		"",
		"   Keys",
		"   ----",
	}
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("   %-18s %s", bind(r.action), r.desc))
	}
	lines = append(lines,
		"",
		"   Item types",
		"   ----------",
		"   0 text   1 menu   3 error     7 search   8 telnet",
		"   9 binary g/I/p images   s sound   d document   h HTML",
		"   i informational lines carry no link number",
		"",
	)
	return lines
}

func versionLine(m *Model) string {
	if m.updateAvailable != "" {
		return "v" + version.Version + " (v" + m.updateAvailable + " available)"
	}
	return "v" + version.Version
}
