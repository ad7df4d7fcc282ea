package util

import (
	"go/token"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
)

// Position returns the position of a node in the source it was decorated from, or nil
// when the node was synthesized and has no ast counterpart.
func Position(node dst.Node, pkg *decorator.Package) *token.Position {
	if node == nil || pkg == nil || pkg.Decorator == nil {
		return nil
	}

	astNode := pkg.Decorator.Ast.Nodes[node]
	if astNode == nil {
		return nil
	}

	pos := pkg.Fset.Position(astNode.Pos())
	return &pos
}

// ReceiverTypeName returns the name of the base type a method is declared on.
// Pointer receivers and type parameter lists are stripped, so both
// `func (v *View[T]) Body()` and `func (View) Body()` return "View".
// An empty string is returned for plain functions.
func ReceiverTypeName(fn *dst.FuncDecl) string {
	if fn == nil || fn.Recv == nil || len(fn.Recv.List) == 0 {
		return ""
	}

	expr := fn.Recv.List[0].Type
	for {
		switch v := expr.(type) {
		case *dst.StarExpr:
			expr = v.X
		case *dst.ParenExpr:
			expr = v.X
		case *dst.IndexExpr:
			expr = v.X
		case *dst.IndexListExpr:
			expr = v.X
		case *dst.Ident:
			return v.Name
		default:
			return ""
		}
	}
}

// EmbeddedFieldName returns the name an embedded field is promoted under.
func EmbeddedFieldName(field *dst.Field) string {
	if field == nil || len(field.Names) != 0 {
		return ""
	}

	expr := field.Type
	for {
		switch v := expr.(type) {
		case *dst.StarExpr:
			expr = v.X
		case *dst.SelectorExpr:
			return v.Sel.Name
		case *dst.IndexExpr:
			expr = v.X
		case *dst.IndexListExpr:
			expr = v.X
		case *dst.Ident:
			return v.Name
		default:
			return ""
		}
	}
}
