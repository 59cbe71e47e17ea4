package keybinds

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMatchContextPriority(t *testing.T) {
	r := NewRegistry()
	r.Register(ContextGlobal, "x", ActionQuit)
	r.Register(ContextNormal, "x", ActionDownload)

	if action, ok := r.Match(ContextNormal, "x"); !ok || action != ActionDownload {
		t.Errorf("Expected context binding to win, got %q ok=%v", action, ok)
	}
	if action, ok := r.Match(ContextHelp, "x"); !ok || action != ActionQuit {
		t.Errorf("Expected global fallback, got %q ok=%v", action, ok)
	}
	if _, ok := r.Match(ContextNormal, "unbound"); ok {
		t.Error("Expected no match for unbound key")
	}
}

func TestDefaultBindings(t *testing.T) {
	r := NewDefaultRegistry()

	tests := []struct {
		context Context
		key     string
		want    Action
	}{
		{ContextNormal, "q", ActionQuit},
		{ContextNormal, "left", ActionBack},
		{ContextNormal, "backspace", ActionBack},
		{ContextNormal, "right", ActionForward},
		{ContextNormal, "enter", ActionOpenSelected},
		{ContextNormal, "g", ActionPromptGoto},
		{ContextNormal, "u", ActionPromptEditURL},
		{ContextNormal, "y", ActionCopyURL},
		{ContextNormal, "s", ActionSaveBookmark},
		{ContextNormal, "b", ActionShowBookmarks},
		{ContextNormal, "a", ActionShowHistory},
		{ContextNormal, "r", ActionRawView},
		{ContextNormal, "w", ActionToggleWide},
		{ContextNormal, "?", ActionShowHelp},
		{ContextInput, "enter", ActionInputSubmit},
		{ContextInput, "esc", ActionInputCancel},
		{ContextInput, "ctrl+c", ActionQuitHint}, // global fallback
		{ContextError, "esc", ActionDismiss},
		{ContextHelp, "q", ActionDismiss},
	}

	for _, tt := range tests {
		if action, ok := r.Match(tt.context, tt.key); !ok || action != tt.want {
			t.Errorf("Match(%s, %q) = %q ok=%v, want %q", tt.context, tt.key, action, ok, tt.want)
		}
	}
}

func TestLoadOrDefaultWithOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.yml")
	content := "normal:\n  \"n\": select_next\n  \"p\": select_prev\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write keys.yml: %v", err)
	}

	r, err := LoadOrDefault(path)
	if err != nil {
		t.Fatalf("LoadOrDefault returned error: %v", err)
	}
	if action, _ := r.Match(ContextNormal, "n"); action != ActionSelectNext {
		t.Errorf("Expected override for n, got %q", action)
	}
	// Defaults survive alongside overrides.
	if action, _ := r.Match(ContextNormal, "q"); action != ActionQuit {
		t.Errorf("Expected default q binding intact, got %q", action)
	}
}

func TestLoadOrDefaultRejectsBrokenOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.yml")
	content := "normal:\n  \"z\": not_a_real_action\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write keys.yml: %v", err)
	}

	if _, err := LoadOrDefault(path); err == nil {
		t.Error("Expected error for override naming an unknown action")
	}
}

func TestLoadOrDefaultMissingFile(t *testing.T) {
	r, err := LoadOrDefault(filepath.Join(t.TempDir(), "keys.yml"))
	if err != nil {
		t.Fatalf("Expected defaults for missing file, got error: %v", err)
	}
	if action, _ := r.Match(ContextNormal, "q"); action != ActionQuit {
		t.Errorf("Expected default registry, got %q for q", action)
	}
}
