/*
Package keybinds provides customizable keyboard binding management.

# Overview

The keybinds package provides:
  - A registry mapping context + key -> action
  - Default bindings for every mode
  - Optional user overrides loaded from keys.yml
  - Validation (unknown actions, unbound escape hatches, shadowing)

# Contexts

Bindings live in contexts mirroring the client's modes:

  - global: checked after every other context (ctrl+c lives here)
  - normal: browsing (selection, scrolling, history, prompts)
  - input:  the single-line prompt (submit / cancel only; every other
    key feeds the text buffer)
  - help:   the help viewer (scrolling plus dismiss)
  - error:  the error banner (dismiss only)

Match checks the specific context first, then global. Digits never
appear in the registry: the dispatcher consumes them directly for
numeric link entry.

# Overrides

keys.yml in the config directory holds per-context key -> action maps:

	normal:
	  "n": select_next
	  "p": select_prev

Overrides are applied on top of the defaults and the merged registry is
validated at startup; a registry with no way to quit or no way out of a
prompt is rejected before the TUI starts.

# Validation

The validator enforces three rules and one warning:
  - every bound action must exist
  - ctrl+c stays bound to the quit hint
  - quit, help, prompt submit/cancel, and error dismiss stay reachable
  - context bindings that shadow a global binding warn
*/
package keybinds
