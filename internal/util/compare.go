package util

import (
	"slices"

	"github.com/dave/dst"
)

// SameExpr reports whether two expressions are the same code. Decorations are ignored;
// identifiers must agree on both name and import path, so inject.Enable and other.Enable
// are different expressions even though they print the same.
func SameExpr(a, b dst.Expr) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch a := a.(type) {
	case *dst.Ident:
		b, ok := b.(*dst.Ident)
		return ok && a.Name == b.Name && a.Path == b.Path
	case *dst.BasicLit:
		b, ok := b.(*dst.BasicLit)
		return ok && a.Kind == b.Kind && a.Value == b.Value
	case *dst.SelectorExpr:
		b, ok := b.(*dst.SelectorExpr)
		return ok && SameExpr(a.X, b.X) && SameExpr(a.Sel, b.Sel)
	case *dst.StarExpr:
		b, ok := b.(*dst.StarExpr)
		return ok && SameExpr(a.X, b.X)
	case *dst.ParenExpr:
		b, ok := b.(*dst.ParenExpr)
		return ok && SameExpr(a.X, b.X)
	case *dst.UnaryExpr:
		b, ok := b.(*dst.UnaryExpr)
		return ok && a.Op == b.Op && SameExpr(a.X, b.X)
	case *dst.BinaryExpr:
		b, ok := b.(*dst.BinaryExpr)
		return ok && a.Op == b.Op && SameExpr(a.X, b.X) && SameExpr(a.Y, b.Y)
	case *dst.IndexExpr:
		b, ok := b.(*dst.IndexExpr)
		return ok && SameExpr(a.X, b.X) && SameExpr(a.Index, b.Index)
	case *dst.IndexListExpr:
		b, ok := b.(*dst.IndexListExpr)
		return ok && SameExpr(a.X, b.X) && slices.EqualFunc(a.Indices, b.Indices, SameExpr)
	case *dst.CallExpr:
		b, ok := b.(*dst.CallExpr)
		return ok && a.Ellipsis == b.Ellipsis && SameExpr(a.Fun, b.Fun) && slices.EqualFunc(a.Args, b.Args, SameExpr)
	default:
		return false
	}
}
