// Package render lays a Document out for a fixed-width terminal. The
// layout is a pure function: the same document and options always
// produce the same frame, so the caller simply recomputes on resize
// and on document change.
package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"github.com/studiowebux/burrow/internal/types"
)

// readingWidth caps the content column in normal mode; anything wider
// is hard to read and gets centered instead. Wide mode lifts the cap.
const readingWidth = 76

// linkGutter is the fixed width of the numeric link marker column
// ("999. " plus a space of breathing room).
const linkGutter = 6

// Link records where a navigable link's marker starts in the frame.
type Link struct {
	Index int // 1-based, strictly increasing in item order
	Line  int // 0-based frame line
	Col   int // 0-based column of the marker
}

// Frame is a laid-out document: styled terminal lines plus the link
// position map used for selection and numeric link entry.
type Frame struct {
	Lines []string
	Links []Link
}

// Options carries the terminal geometry and view state a layout
// depends on.
type Options struct {
	Width    int
	Height   int
	Selected int  // 1-based selected link, 0 for none
	Wide     bool // use the full terminal width
}

// Layout renders doc against opts.
func Layout(doc *types.Document, opts Options) Frame {
	if doc == nil || opts.Width <= 0 {
		return Frame{}
	}
	switch doc.Kind {
	case types.DocMenu:
		return layoutMenu(doc, opts)
	case types.DocText:
		return layoutText(doc, opts)
	default:
		return layoutBinary(doc, opts)
	}
}

// contentWidth returns the usable column width and the left margin
// that centers it.
func contentWidth(opts Options) (width, margin int) {
	width = opts.Width
	if !opts.Wide && width > readingWidth {
		width = readingWidth
		margin = (opts.Width - width) / 2
	}
	return width, margin
}

func layoutMenu(doc *types.Document, opts Options) Frame {
	width, margin := contentWidth(opts)
	pad := strings.Repeat(" ", margin)
	gutter := strings.Repeat(" ", linkGutter)
	textWidth := width - linkGutter
	if textWidth < 1 {
		textWidth = 1
	}

	var frame Frame
	index := 0
	for _, it := range doc.Items {
		display := runewidth.Truncate(it.Display, textWidth, "…")
		if !it.Type.IsNavigable() {
			frame.Lines = append(frame.Lines, pad+gutter+display)
			continue
		}

		index++
		marker := fmt.Sprintf("%3d. ", index)
		style := itemStyle(it.Type)
		if opts.Selected == index {
			style = styleLinkSelected
		}
		line := pad + styleMarker.Render(marker) + style.Render(display)
		frame.Links = append(frame.Links, Link{Index: index, Line: len(frame.Lines), Col: margin})
		frame.Lines = append(frame.Lines, line)
	}
	return frame
}

func layoutText(doc *types.Document, opts Options) Frame {
	width, margin := contentWidth(opts)
	pad := strings.Repeat(" ", margin)

	var frame Frame
	for _, raw := range doc.Lines {
		if raw == "" {
			frame.Lines = append(frame.Lines, "")
			continue
		}
		// Word-wrap at the last whitespace before the boundary, then
		// hard-break anything still too long (URLs, ASCII art runs).
		wrapped := wrap.String(wordwrap.String(raw, width), width)
		for _, line := range strings.Split(wrapped, "\n") {
			frame.Lines = append(frame.Lines, pad+line)
		}
	}
	return frame
}

func layoutBinary(doc *types.Document, opts Options) Frame {
	_, margin := contentWidth(opts)
	pad := strings.Repeat(" ", margin)
	return Frame{Lines: []string{
		pad + styleMarker.Render("binary document"),
		pad + fmt.Sprintf("%s received", humanSize(len(doc.Data))),
		pad + "press d to save it to the download directory",
	}}
}

// humanSize formats a byte count the way the status line reports
// downloads.
func humanSize(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d bytes", n)
	}
}

// HumanSize is humanSize for callers outside the package (status
// messages after a download completes).
func HumanSize(n int) string {
	return humanSize(n)
}
