// Package hotreload implements the HotReload macro.
//
// Applied to a view struct with a computed Body method, it adds an injection observer
// field to the struct and makes Body enable injection on the view it returns:
//
//	//inject:hotreload
//	type ContentView struct {
//		text string
//
//		_redraw inject.ObserveInjection
//	}
//
//	func (v ContentView) Body() ui.View {
//		return inject.EnableInjection(ui.Text(v.text))
//	}
package hotreload

import (
	"github.com/dave/dst"
	"github.com/go-easy-hotreload/go-easy-hotreload/internal/codegen"
	"github.com/go-easy-hotreload/go-easy-hotreload/parser/macro"
)

// MacroName is the directive name the macro is registered under.
const MacroName = "HotReload"

// Macro expands //inject:hotreload directives.
type Macro struct {
	importPath string
}

// New returns a HotReload macro emitting references to the injection runtime at importPath.
// An empty importPath selects codegen.DefaultInjectImportPath.
func New(importPath string) *Macro {
	if importPath == "" {
		importPath = codegen.DefaultInjectImportPath
	}
	return &Macro{importPath: importPath}
}

func (m *Macro) Name() string {
	return MacroName
}

// ImportPath returns the import path of the injection runtime the generated code uses.
func (m *Macro) ImportPath() string {
	return m.importPath
}

// Expand validates the site, then returns the observer field for the Members capacity
// and the rewritten Body method for the Peers capacity. Both capacities validate the
// full site, so neither produces output for a site the other would reject.
func (m *Macro) Expand(site *macro.Site, capacity macro.Capacity) ([]macro.Declaration, error) {
	g, err := ValidateComputed(site)
	if err != nil {
		return nil, err
	}

	switch capacity {
	case macro.Members:
		return []macro.Declaration{
			macro.NewField{Field: ObserverField(m.importPath)},
		}, nil
	case macro.Peers:
		return []macro.Declaration{
			macro.Replacement{Original: g.Method, Decl: RewriteGetter(g, m.importPath)},
		}, nil
	default:
		return nil, nil
	}
}

// ObserverField returns a new injection observer field. Every call returns an
// independent, identical field.
func ObserverField(importPath string) *dst.Field {
	return codegen.ObserverField(importPath)
}
