package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/studiowebux/burrow/internal/types"
)

// Adaptive color definitions for light/dark terminal support
var (
	colorBlue    = lipgloss.AdaptiveColor{Light: "#00008b", Dark: "#5f87ff"}
	colorCyan    = lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#00ffff"}
	colorRed     = lipgloss.AdaptiveColor{Light: "#8b0000", Dark: "#ff5f5f"}
	colorGreen   = lipgloss.AdaptiveColor{Light: "#006400", Dark: "#00ff00"}
	colorMagenta = lipgloss.AdaptiveColor{Light: "#8b008b", Dark: "#ff87ff"}
	colorGray    = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"}
)

// Item styles, one visual register per item type family
var (
	styleMenu     = lipgloss.NewStyle().Foreground(colorBlue).Bold(true)
	styleText     = lipgloss.NewStyle().Foreground(colorCyan)
	styleSearch   = lipgloss.NewStyle().Foreground(colorMagenta)
	styleErr      = lipgloss.NewStyle().Foreground(colorRed)
	styleHTML     = lipgloss.NewStyle().Foreground(colorGreen)
	styleDownload = lipgloss.NewStyle().Underline(true)
	styleTelnet   = lipgloss.NewStyle().Foreground(colorGray)
	styleMarker   = lipgloss.NewStyle().Foreground(colorGray)

	styleLinkSelected = lipgloss.NewStyle().
				Background(lipgloss.AdaptiveColor{Light: "#d3d3d3", Dark: "#3a3a3a"}).
				Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"})
)

// itemStyle maps an item type to its rendering style.
func itemStyle(t types.ItemType) lipgloss.Style {
	switch {
	case t == types.TypeMenu:
		return styleMenu
	case t == types.TypeText:
		return styleText
	case t == types.TypeSearch:
		return styleSearch
	case t == types.TypeError:
		return styleErr
	case t == types.TypeHTML:
		return styleHTML
	case t == types.TypeTelnet || t == types.TypeTelnet3270 || t == types.TypeCSO:
		return styleTelnet
	case t.IsDownload():
		return styleDownload
	default:
		return styleText
	}
}
