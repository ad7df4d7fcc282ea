// Package analyzer reports //inject directives that the instrumentation tool would not be
// able to expand, without changing any code.
package analyzer

import (
	"fmt"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
	"github.com/go-easy-hotreload/go-easy-hotreload/internal/codegen"
	"github.com/go-easy-hotreload/go-easy-hotreload/parser"
	"github.com/go-easy-hotreload/go-easy-hotreload/parser/hotreload"
	"github.com/go-easy-hotreload/go-easy-hotreload/parser/macro"
	"golang.org/x/tools/go/analysis"
)

var importPath string

var Analyzer = &analysis.Analyzer{
	Name: "hotreload",
	Doc:  "reports //inject directives on type declarations that cannot be expanded",
	Run:  InspectPackage,
}

func init() {
	Analyzer.Flags.StringVar(&importPath, "import", codegen.DefaultInjectImportPath, "import path of the injection runtime")
}

// InspectPackage expands every annotated declaration in the package and reports the ones that fail.
func InspectPackage(p *analysis.Pass) (any, error) {
	dec := decorator.NewDecorator(p.Fset)
	files := make([]*dst.File, 0, len(p.Files))
	for _, f := range p.Files {
		file, err := dec.DecorateFile(f)
		if err != nil {
			return nil, fmt.Errorf("decorating %s: %w", p.Fset.Position(f.Pos()).Filename, err)
		}
		files = append(files, file)
	}

	registry := macro.NewRegistry(hotreload.New(importPath))
	for _, site := range parser.FindSites(files) {
		node, ok := dec.Ast.Nodes[site.Spec]
		if !ok {
			continue
		}

		mac, ok := registry.Lookup(site.Attribute.Name)
		if !ok {
			p.Reportf(node.Pos(), "unknown macro %q", site.Attribute.Name)
			continue
		}

		if _, err := macro.ExpandAll(mac, site); err != nil {
			p.Reportf(node.Pos(), "%s", err.Error())
		}
	}

	return nil, nil
}
