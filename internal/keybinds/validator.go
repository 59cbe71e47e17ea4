package keybinds

import (
	"fmt"
	"strings"
)

// ValidationError represents a keybinding validation error
type ValidationError struct {
	Type    string // "conflict", "invalid", "warning"
	Context Context
	Key     string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s in context '%s': %s", e.Type, e.Key, e.Context, e.Message)
}

// ValidationResult contains all validation errors and warnings
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// HasErrors returns true if there are any errors
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// HasWarnings returns true if there are any warnings
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// String returns a human-readable summary of validation results
func (r *ValidationResult) String() string {
	var sb strings.Builder

	if len(r.Errors) > 0 {
		sb.WriteString(fmt.Sprintf("Errors (%d):\n", len(r.Errors)))
		for i := range r.Errors {
			sb.WriteString(fmt.Sprintf("  - %s\n", r.Errors[i].Error()))
		}
	}

	if len(r.Warnings) > 0 {
		sb.WriteString(fmt.Sprintf("Warnings (%d):\n", len(r.Warnings)))
		for i := range r.Warnings {
			sb.WriteString(fmt.Sprintf("  - %s\n", r.Warnings[i].Error()))
		}
	}

	if !r.HasErrors() && !r.HasWarnings() {
		sb.WriteString("No issues found")
	}

	return sb.String()
}

// Validator validates keybinding configurations
type Validator struct {
	// reservedKeys are keys that must not be rebound away from their
	// default action
	reservedKeys map[string]Action

	// requiredActions must be reachable in their context or the
	// session can wedge (no way to quit, no way out of a prompt)
	requiredActions map[Context][]Action

	// knownActions is the full action vocabulary
	knownActions map[Action]bool
}

// NewValidator creates a new keybinding validator
func NewValidator() *Validator {
	known := []Action{
		ActionQuit, ActionQuitHint,
		ActionBack, ActionForward,
		ActionSelectPrev, ActionSelectNext,
		ActionPageUp, ActionPageDown,
		ActionGoToTop, ActionGoToBottom,
		ActionOpenSelected,
		ActionPromptGoto, ActionPromptEditURL,
		ActionCopyURL, ActionSaveBookmark, ActionDownload,
		ActionRawView, ActionToggleWide,
		ActionShowBookmarks, ActionShowHistory, ActionShowHelp,
		ActionInputSubmit, ActionInputCancel,
		ActionDismiss,
	}
	knownMap := make(map[Action]bool, len(known))
	for _, a := range known {
		knownMap[a] = true
	}

	return &Validator{
		reservedKeys: map[string]Action{
			"ctrl+c": ActionQuitHint, // must always be handled
		},
		requiredActions: map[Context][]Action{
			ContextNormal: {ActionQuit, ActionShowHelp},
			ContextInput:  {ActionInputSubmit, ActionInputCancel},
			ContextError:  {ActionDismiss},
		},
		knownActions: knownMap,
	}
}

// ValidateRegistry validates an entire registry
func (v *Validator) ValidateRegistry(registry *Registry) *ValidationResult {
	result := &ValidationResult{
		Errors:   []ValidationError{},
		Warnings: []ValidationError{},
	}

	v.checkUnknownActions(registry, result)
	v.checkReservedKeys(registry, result)
	v.checkRequiredActions(registry, result)
	v.checkShadowing(registry, result)

	return result
}

// checkUnknownActions flags bindings that name no known action; a
// typo in keys.yml would otherwise produce a silently dead key.
func (v *Validator) checkUnknownActions(registry *Registry, result *ValidationResult) {
	for _, ctx := range registry.Contexts() {
		for _, b := range registry.Bindings(ctx) {
			if !v.knownActions[b.Action] {
				result.Errors = append(result.Errors, ValidationError{
					Type:    "invalid",
					Context: ctx,
					Key:     b.Key,
					Message: fmt.Sprintf("unknown action %q", b.Action),
				})
			}
		}
	}
}

// checkReservedKeys ensures reserved keys keep their default action
func (v *Validator) checkReservedKeys(registry *Registry, result *ValidationResult) {
	for key, want := range v.reservedKeys {
		if action, ok := registry.Match(ContextGlobal, key); !ok || action != want {
			result.Errors = append(result.Errors, ValidationError{
				Type:    "invalid",
				Context: ContextGlobal,
				Key:     key,
				Message: fmt.Sprintf("reserved key must stay bound to %q", want),
			})
		}
	}
}

// checkRequiredActions ensures every escape hatch stays reachable
func (v *Validator) checkRequiredActions(registry *Registry, result *ValidationResult) {
	for ctx, actions := range v.requiredActions {
		for _, action := range actions {
			if len(registry.KeysFor(ctx, action)) == 0 {
				result.Errors = append(result.Errors, ValidationError{
					Type:    "invalid",
					Context: ctx,
					Key:     "",
					Message: fmt.Sprintf("no key bound to required action %q", action),
				})
			}
		}
	}
}

// checkShadowing warns when a context-specific binding hides a global
// one; legal, but usually a sign of an accidental override.
func (v *Validator) checkShadowing(registry *Registry, result *ValidationResult) {
	globals := registry.Bindings(ContextGlobal)
	for _, ctx := range registry.Contexts() {
		if ctx == ContextGlobal {
			continue
		}
		for _, g := range globals {
			for _, b := range registry.Bindings(ctx) {
				if b.Key == g.Key && b.Action != g.Action {
					result.Warnings = append(result.Warnings, ValidationError{
						Type:    "warning",
						Context: ctx,
						Key:     b.Key,
						Message: fmt.Sprintf("shadows global binding %q with %q", g.Action, b.Action),
					})
				}
			}
		}
	}
}
