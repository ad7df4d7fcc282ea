package parser

import (
	"go/token"
	"strings"

	"github.com/dave/dst"
	"github.com/go-easy-hotreload/go-easy-hotreload/internal/codegen"
	"github.com/go-easy-hotreload/go-easy-hotreload/internal/util"
	"github.com/go-easy-hotreload/go-easy-hotreload/parser/facts"
	"github.com/go-easy-hotreload/go-easy-hotreload/parser/macro"
)

// directiveNames returns the macro names of every directive in decs, in order.
func directiveNames(decs dst.Decorations) []string {
	var names []string
	for _, line := range decs.All() {
		name, ok := strings.CutPrefix(strings.TrimSpace(line), DirectivePrefix)
		if !ok {
			continue
		}
		name, _, _ = strings.Cut(name, " ")
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

// normalizeDirectives lowercases the macro name of every directive in decs. The go/printer
// only keeps a comment line verbatim when it looks like a tool directive, which requires a
// lowercase name. Other lines inside a doc comment are reformatted, and a directive written
// as //inject:HotReload would come back as // inject:HotReload.
func normalizeDirectives(decs dst.Decorations) {
	for i, line := range decs {
		name, ok := strings.CutPrefix(line, DirectivePrefix)
		if !ok {
			continue
		}
		name, rest, found := strings.Cut(name, " ")
		line = DirectivePrefix + strings.ToLower(name)
		if found {
			line += " " + rest
		}
		decs[i] = line
	}
}

// indexMethods groups the methods declared in files by the name of their receiver's base type.
func indexMethods(files []*dst.File) map[string][]*dst.FuncDecl {
	methods := map[string][]*dst.FuncDecl{}
	for _, file := range files {
		for _, decl := range file.Decls {
			fn, ok := decl.(*dst.FuncDecl)
			if !ok {
				continue
			}
			if name := util.ReceiverTypeName(fn); name != "" {
				methods[name] = append(methods[name], fn)
			}
		}
	}
	return methods
}

// FindSites returns a site for every macro directive attached to a type declaration in files.
// The files must belong to the same package, since a type's methods are looked up across all of them.
//
// A directive is attached to a type when it is part of the comment directly above the type's
// declaration. For grouped declarations, the comment must be above the type spec itself.
// Directive names are case insensitive, and a name repeated on the same type yields one site.
func FindSites(files []*dst.File) []*macro.Site {
	methods := indexMethods(files)

	var sites []*macro.Site
	for _, file := range files {
		for _, decl := range file.Decls {
			genDecl, ok := decl.(*dst.GenDecl)
			if !ok || genDecl.Tok != token.TYPE {
				continue
			}

			for _, spec := range genDecl.Specs {
				typeSpec, ok := spec.(*dst.TypeSpec)
				if !ok {
					continue
				}

				var attrs []macro.Attribute
				if len(genDecl.Specs) == 1 {
					for _, name := range directiveNames(genDecl.Decs.Start) {
						attrs = append(attrs, macro.Attribute{Name: name, Node: genDecl})
					}
				}
				for _, name := range directiveNames(typeSpec.Decs.Start) {
					attrs = append(attrs, macro.Attribute{Name: name, Node: typeSpec})
				}

				seen := map[string]bool{}
				for _, attr := range attrs {
					// a macro is applied to a type once, however often it is named
					key := strings.ToLower(attr.Name)
					if seen[key] {
						continue
					}
					seen[key] = true
					sites = append(sites, &macro.Site{
						Attribute: attr,
						Decl:      genDecl,
						Spec:      typeSpec,
						Methods:   methods[typeSpec.Name.Name],
					})
				}
			}
		}
	}
	return sites
}

// ScanViewDeclaration records annotated types as view declarations.
func ScanViewDeclaration(decl *dst.GenDecl, spec *dst.TypeSpec) (facts.Entry, bool) {
	annotated := len(directiveNames(spec.Decs.Start)) > 0
	if len(decl.Specs) == 1 && len(directiveNames(decl.Decs.Start)) > 0 {
		annotated = true
	}
	if !annotated {
		return facts.Entry{}, false
	}
	return facts.Entry{Name: spec.Name.Name, Fact: facts.ViewDeclaration}, true
}

// ScanInstrumented returns a FactScan that records struct types already carrying an
// injection observer field from importPath.
func ScanInstrumented(importPath string) FactScan {
	observerType := codegen.ObserverType(importPath)
	return func(decl *dst.GenDecl, spec *dst.TypeSpec) (facts.Entry, bool) {
		structType, ok := spec.Type.(*dst.StructType)
		if !ok || structType.Fields == nil {
			return facts.Entry{}, false
		}
		for _, field := range structType.Fields.List {
			for _, name := range field.Names {
				if name.Name == codegen.ObserverFieldName && util.SameExpr(observerType, field.Type) {
					return facts.Entry{Name: spec.Name.Name, Fact: facts.Instrumented}, true
				}
			}
		}
		return facts.Entry{}, false
	}
}
