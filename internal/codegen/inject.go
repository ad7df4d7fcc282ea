package codegen

import (
	"github.com/dave/dst"
)

const (
	// DefaultInjectImportPath is the import path of the injection runtime that generated code calls into.
	DefaultInjectImportPath = "github.com/go-easy-hotreload/inject"

	// ObserverFieldName is the name of the struct field that observes injection events.
	ObserverFieldName = "_redraw"

	observerTypeName    = "ObserveInjection"
	enableInjectionName = "EnableInjection"
	enableName          = "Enable"
)

// ObserverType returns the type of the observer field: inject.ObserveInjection
func ObserverType(importPath string) *dst.Ident {
	return &dst.Ident{
		Name: observerTypeName,
		Path: importPath,
	}
}

// ObserverField returns a new struct field declaring an injection observer:
//
//	_redraw inject.ObserveInjection
//
// The field is separated from the fields above it by an empty line.
func ObserverField(importPath string) *dst.Field {
	return &dst.Field{
		Names: []*dst.Ident{
			dst.NewIdent(ObserverFieldName),
		},
		Type: ObserverType(importPath),
		Decs: dst.FieldDecorations{
			NodeDecs: dst.NodeDecs{
				Before: dst.EmptyLine,
				After:  dst.NewLine,
			},
		},
	}
}

// EnableInjectionCall wraps a copy of value in a pass-through call to the injection runtime:
//
//	inject.EnableInjection(value)
//
// The call returns its argument unchanged, so it can stand in for the value anywhere.
func EnableInjectionCall(importPath string, value dst.Expr) *dst.CallExpr {
	return &dst.CallExpr{
		Fun: &dst.Ident{
			Name: enableInjectionName,
			Path: importPath,
		},
		Args: []dst.Expr{
			dst.Clone(value).(dst.Expr),
		},
	}
}

// EnableInjectionCallAs is EnableInjectionCall with typ as an explicit type argument:
//
//	inject.EnableInjection[typ](value)
//
// Use it for values that have no type of their own, such as nil or an untyped constant.
func EnableInjectionCallAs(importPath string, typ, value dst.Expr) *dst.CallExpr {
	call := EnableInjectionCall(importPath, value)
	call.Fun = &dst.IndexExpr{
		X:     call.Fun,
		Index: dst.Clone(typ).(dst.Expr),
	}
	return call
}

// EnableStmt returns a no argument call to the injection runtime as a statement:
//
//	inject.Enable()
func EnableStmt(importPath string) *dst.ExprStmt {
	return &dst.ExprStmt{
		X: &dst.CallExpr{
			Fun: &dst.Ident{
				Name: enableName,
				Path: importPath,
			},
		},
		Decs: dst.ExprStmtDecorations{
			NodeDecs: dst.NodeDecs{
				Before: dst.NewLine,
				After:  dst.NewLine,
			},
		},
	}
}
