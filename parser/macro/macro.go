// Package macro defines how declaration macros are applied to annotated type declarations.
//
// A macro is looked up by the name of the directive attached to a type, and expanded
// against the Site the directive annotates. Expansion never modifies the Site; it returns
// fresh Declarations that the host splices into the tree.
package macro

// Macro expands a directive into generated declarations.
//
// Expand must return a NotApplicableError when the site does not meet the macro's
// preconditions, and no declarations in that case. It must be safe to call concurrently
// for different sites.
type Macro interface {
	Name() string
	Expand(site *Site, capacity Capacity) ([]Declaration, error)
}

// ExpandAll expands a site in every capacity as a single transformation: either every
// capacity succeeds and all declarations are returned, or nothing is returned.
func ExpandAll(m Macro, site *Site) ([]Declaration, error) {
	var decls []Declaration
	for _, capacity := range []Capacity{Members, Peers} {
		out, err := m.Expand(site, capacity)
		if err != nil {
			return nil, err
		}
		decls = append(decls, out...)
	}
	return decls, nil
}
