package keybinds

// NewDefaultRegistry creates a registry with all default keybindings
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	registerGlobalBindings(r)
	registerNormalModeBindings(r)
	registerInputBindings(r)
	registerHelpBindings(r)
	registerErrorBindings(r)

	return r
}

// registerGlobalBindings sets up bindings available in all modes
func registerGlobalBindings(r *Registry) {
	r.Register(ContextGlobal, "ctrl+c", ActionQuitHint)
}

// registerNormalModeBindings sets up keybindings for normal mode.
// Digits are not registered here; the dispatcher consumes them
// directly for numeric link entry.
func registerNormalModeBindings(r *Registry) {
	r.Register(ContextNormal, "q", ActionQuit)

	// History
	r.RegisterMultiple(ContextNormal, []string{"left", "backspace"}, ActionBack)
	r.Register(ContextNormal, "right", ActionForward)

	// Selection and scrolling
	r.RegisterMultiple(ContextNormal, []string{"up", "k"}, ActionSelectPrev)
	r.RegisterMultiple(ContextNormal, []string{"down", "j"}, ActionSelectNext)
	r.RegisterMultiple(ContextNormal, []string{"pgup", "-"}, ActionPageUp)
	r.RegisterMultiple(ContextNormal, []string{"pgdown", " "}, ActionPageDown)
	r.Register(ContextNormal, "home", ActionGoToTop)
	r.Register(ContextNormal, "end", ActionGoToBottom)
	r.Register(ContextNormal, "enter", ActionOpenSelected)

	// Prompts
	r.Register(ContextNormal, "g", ActionPromptGoto)
	r.Register(ContextNormal, "u", ActionPromptEditURL)

	// Current page
	r.Register(ContextNormal, "y", ActionCopyURL)
	r.Register(ContextNormal, "s", ActionSaveBookmark)
	r.Register(ContextNormal, "d", ActionDownload)
	r.Register(ContextNormal, "r", ActionRawView)
	r.Register(ContextNormal, "w", ActionToggleWide)

	// Internal pages
	r.Register(ContextNormal, "b", ActionShowBookmarks)
	r.Register(ContextNormal, "a", ActionShowHistory)
	r.RegisterMultiple(ContextNormal, []string{"h", "?"}, ActionShowHelp)
}

// registerInputBindings sets up the prompt mode. Every key that is not
// submit or cancel is fed to the text input buffer.
func registerInputBindings(r *Registry) {
	r.Register(ContextInput, "enter", ActionInputSubmit)
	r.Register(ContextInput, "esc", ActionInputCancel)
}

// registerHelpBindings keeps scrolling alive inside the help viewer;
// any unbound key dismisses it.
func registerHelpBindings(r *Registry) {
	r.RegisterMultiple(ContextHelp, []string{"up", "k"}, ActionSelectPrev)
	r.RegisterMultiple(ContextHelp, []string{"down", "j"}, ActionSelectNext)
	r.RegisterMultiple(ContextHelp, []string{"pgup", "-"}, ActionPageUp)
	r.RegisterMultiple(ContextHelp, []string{"pgdown", " "}, ActionPageDown)
	r.RegisterMultiple(ContextHelp, []string{"q", "esc", "h"}, ActionDismiss)
}

// registerErrorBindings dismisses the error banner
func registerErrorBindings(r *Registry) {
	r.RegisterMultiple(ContextError, []string{"esc", "enter", "q"}, ActionDismiss)
}
