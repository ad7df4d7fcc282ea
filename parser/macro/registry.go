package macro

import (
	"slices"
	"strings"
)

// Registry maps directive names to the macros that expand them. Names are matched
// case insensitively. A Registry is built once and never modified afterwards.
type Registry struct {
	macros map[string]Macro
	names  []string
}

// NewRegistry returns a registry of the given macros. When two macros share a name,
// the first one wins.
func NewRegistry(macros ...Macro) *Registry {
	r := &Registry{
		macros: make(map[string]Macro, len(macros)),
	}
	for _, m := range macros {
		if m == nil {
			continue
		}
		key := strings.ToLower(m.Name())
		if _, ok := r.macros[key]; ok {
			continue
		}
		r.macros[key] = m
		r.names = append(r.names, m.Name())
	}
	return r
}

// Lookup returns the macro registered under name.
func (r *Registry) Lookup(name string) (Macro, bool) {
	if r == nil {
		return nil, false
	}
	m, ok := r.macros[strings.ToLower(name)]
	return m, ok
}

// Names returns the registered macro names in registration order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	return slices.Clone(r.names)
}
