/*
Package tui implements the interactive terminal interface for burrow.

# Architecture

The TUI follows the Bubble Tea framework's Model-Update-View pattern:
  - Model: Maintains all session state (history, mode, status slot)
  - Update: Processes messages and returns commands
  - View: Renders the current state to the terminal

# Key Components

  - model.go: Core state, initialization, and message handling
  - keys.go: Keyboard input handling and keybind routing
  - actions.go: Navigation, fetch dispatch, bookmarks, downloads
  - render.go: View rendering (document area, status bar, help)
  - pages.go: Internal gopher://burrow pages and the help screen

# Modes

Four modes drive input routing:
  - ModeNormal: keys navigate, select links, and scroll
  - ModeInput: a single-line prompt is active (go-to-URL or search
    query); Enter submits, Escape cancels
  - ModeHelp: a fixed help document with its own scroll offset; any
    key outside the scroll keys returns to the prior mode
  - ModeError: an error banner supersedes the status line until a key
    dismisses it

# Fetch Lifecycle

At most one fetch is ever current. Starting a navigation increments a
generation counter, cancels the previous fetch's context, and
dispatches the network call as a bubbletea command. The result message
carries its generation; Update discards anything stale, so a
superseded fetch can never mutate the session. On success the new
history entry is pushed (truncating any forward branch); on failure
the current entry is untouched and the session enters ModeError.

# Status Slot

The status message is single-slot, last-write-wins: a new status of
any severity unconditionally replaces the previous one. Non-persistent
statuses clear on the next unrelated keypress; persistent ones
(in-flight fetch and download banners) survive until their result
replaces them.
*/
package tui
