package keybinds

import "sort"

// Binding represents a keybinding mapping
type Binding struct {
	Key     string
	Action  Action
	Context Context
}

// Registry manages keybinding mappings and matching
type Registry struct {
	// bindings maps context -> key -> action
	bindings map[Context]map[string]Action
}

// NewRegistry creates a new keybinding registry
func NewRegistry() *Registry {
	return &Registry{
		bindings: make(map[Context]map[string]Action),
	}
}

// Register adds a keybinding to the registry
func (r *Registry) Register(context Context, key string, action Action) {
	if r.bindings[context] == nil {
		r.bindings[context] = make(map[string]Action)
	}
	r.bindings[context][key] = action
}

// RegisterMultiple registers multiple keybindings for the same action
func (r *Registry) RegisterMultiple(context Context, keys []string, action Action) {
	for _, key := range keys {
		r.Register(context, key, action)
	}
}

// Match attempts to match a key to an action in the given context.
// Contexts are checked in priority order: specific context -> global.
func (r *Registry) Match(context Context, key string) (Action, bool) {
	if contextBindings, ok := r.bindings[context]; ok {
		if action, ok := contextBindings[key]; ok {
			return action, true
		}
	}

	if globalBindings, ok := r.bindings[ContextGlobal]; ok {
		if action, ok := globalBindings[key]; ok {
			return action, true
		}
	}

	return "", false
}

// Bindings returns every binding in a context, sorted by key. Used by
// the validator and the help screen.
func (r *Registry) Bindings(context Context) []Binding {
	contextBindings := r.bindings[context]
	out := make([]Binding, 0, len(contextBindings))
	for key, action := range contextBindings {
		out = append(out, Binding{Key: key, Action: action, Context: context})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Contexts returns every context with at least one binding.
func (r *Registry) Contexts() []Context {
	out := make([]Context, 0, len(r.bindings))
	for ctx := range r.bindings {
		out = append(out, ctx)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// KeysFor returns the keys bound to an action in a context, sorted.
// Used to render the help screen from the live registry instead of a
// hardcoded table.
func (r *Registry) KeysFor(context Context, action Action) []string {
	var keys []string
	for key, a := range r.bindings[context] {
		if a == action {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}
