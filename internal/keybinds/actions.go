package keybinds

// Action represents a user action that can be triggered by a keybinding
type Action string

// Context represents the context in which keybindings are active
type Context string

const (
	// Contexts define where keybindings are active
	ContextGlobal Context = "global" // Available everywhere
	ContextNormal Context = "normal" // Normal browsing mode
	ContextInput  Context = "input"  // Single-line prompt (goto URL, search)
	ContextHelp   Context = "help"   // Help viewer
	ContextError  Context = "error"  // Error banner shown
)

const (
	// Global actions
	ActionQuit     Action = "quit"      // Quit the client
	ActionQuitHint Action = "quit_hint" // ctrl+c: remind how to quit

	// History navigation
	ActionBack    Action = "back"    // Previous history entry
	ActionForward Action = "forward" // Next history entry

	// Link selection and scrolling
	ActionSelectPrev   Action = "select_prev"   // Select previous link / scroll up
	ActionSelectNext   Action = "select_next"   // Select next link / scroll down
	ActionPageUp       Action = "page_up"       // Scroll up one viewport
	ActionPageDown     Action = "page_down"     // Scroll down one viewport
	ActionGoToTop      Action = "go_to_top"     // Jump to the top of the document
	ActionGoToBottom   Action = "go_to_bottom"  // Jump to the bottom of the document
	ActionOpenSelected Action = "open_selected" // Open the selected link

	// Prompts
	ActionPromptGoto    Action = "prompt_goto"     // Open the go-to-URL prompt
	ActionPromptEditURL Action = "prompt_edit_url" // Go-to prompt prefilled with the current URL

	// Current page operations
	ActionCopyURL      Action = "copy_url"      // Copy current URL to the clipboard
	ActionSaveBookmark Action = "save_bookmark" // Append current page to bookmarks
	ActionDownload     Action = "download"      // Save current document to disk
	ActionRawView      Action = "raw_view"      // Toggle raw response source
	ActionToggleWide   Action = "toggle_wide"   // Toggle full-width rendering

	// Internal pages
	ActionShowBookmarks Action = "show_bookmarks" // Open the bookmarks menu
	ActionShowHistory   Action = "show_history"   // Open the session history menu
	ActionShowHelp      Action = "show_help"      // Show the help screen

	// Input mode
	ActionInputSubmit Action = "input_submit" // Submit the prompt buffer
	ActionInputCancel Action = "input_cancel" // Cancel the prompt

	// Help and error modes
	ActionDismiss Action = "dismiss" // Leave help / dismiss the error banner
)
