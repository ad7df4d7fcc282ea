package hotreload

import (
	"go/token"
	"slices"

	"github.com/dave/dst"
	"github.com/go-easy-hotreload/go-easy-hotreload/internal/codegen"
)

// Result is the single result of a Body method.
type Result struct {
	Name string   // empty when the result is unnamed or blank
	Type dst.Expr // the declared result type
}

// AppendInjectionCall returns a copy of stmts that ends by enabling injection. The input is
// never modified; every statement is copied verbatim and in order.
//
// Each return that ends the list passes its value through inject.EnableInjection. A bare
// return of a named result returns the result passed through inject.EnableInjection.
// When the list ends in an if/else, a switch or a select, the end of every branch is
// handled the same way. Untyped constants and nil are passed with the result type as an
// explicit type argument, so the returned value keeps its declared type.
//
// When the list ends in a statement that never falls through and holds no value, such as a
// panic, an endless for loop, a goto or a bare return without a usable name, inject.Enable()
// is inserted right before it. Any other list gets inject.Enable() as its new last statement.
//
// Returns that leave the method early, before the end of the list or from inside a loop,
// are not instrumented. Views returned through them render without injection enabled.
func AppendInjectionCall(stmts []dst.Stmt, result Result, importPath string) []dst.Stmt {
	out := make([]dst.Stmt, 0, len(stmts)+1)
	for _, stmt := range stmts {
		out = append(out, dst.Clone(stmt).(dst.Stmt))
	}

	t := tail{result: result, importPath: importPath}
	return t.enable(out)
}

// RewriteGetter returns a copy of the getter's method whose body enables injection.
// Receiver, name, signature and comments are kept.
func RewriteGetter(g *Getter, importPath string) *dst.FuncDecl {
	fn := dst.Clone(g.Method).(*dst.FuncDecl)
	fn.Body.List = AppendInjectionCall(g.Stmts, g.Result, importPath)
	return fn
}

// tail rewrites the end of a statement list it owns in place.
type tail struct {
	result     Result
	importPath string
}

func (t tail) enable(stmts []dst.Stmt) []dst.Stmt {
	if len(stmts) == 0 {
		return append(stmts, codegen.EnableStmt(t.importPath))
	}

	last := len(stmts) - 1
	switch s := stmts[last].(type) {
	case *dst.ReturnStmt:
		switch {
		case len(s.Results) == 1:
			s.Results[0] = t.wrap(s.Results[0])
			return stmts
		case len(s.Results) == 0 && t.result.Name != "":
			s.Results = []dst.Expr{t.wrap(dst.NewIdent(t.result.Name))}
			return stmts
		}
		return t.insertBefore(stmts, last)
	case *dst.BlockStmt:
		s.List = t.enable(s.List)
		return stmts
	case *dst.IfStmt:
		if s.Else == nil {
			break
		}
		t.enableIf(s)
		return stmts
	case *dst.SwitchStmt:
		if t.enableClauses(s.Body) {
			return stmts
		}
	case *dst.TypeSwitchStmt:
		if t.enableClauses(s.Body) {
			return stmts
		}
	case *dst.SelectStmt:
		if t.enableClauses(s.Body) {
			return stmts
		}
		return t.insertBefore(stmts, last)
	case *dst.ForStmt:
		if s.Cond == nil {
			return t.insertBefore(stmts, last)
		}
	case *dst.BranchStmt:
		if s.Tok == token.FALLTHROUGH {
			return stmts
		}
		return t.insertBefore(stmts, last)
	case *dst.LabeledStmt:
		return t.insertBefore(stmts, last)
	case *dst.ExprStmt:
		if isPanic(s) {
			return t.insertBefore(stmts, last)
		}
	}
	return append(stmts, codegen.EnableStmt(t.importPath))
}

func (t tail) enableIf(s *dst.IfStmt) {
	s.Body.List = t.enable(s.Body.List)
	switch e := s.Else.(type) {
	case *dst.BlockStmt:
		e.List = t.enable(e.List)
	case *dst.IfStmt:
		if e.Else != nil {
			t.enableIf(e)
		} else {
			e.Body.List = t.enable(e.Body.List)
		}
	}
}

// enableClauses enables injection at the end of every case of a switch or select body.
// It reports false when there are no cases.
func (t tail) enableClauses(body *dst.BlockStmt) bool {
	if body == nil || len(body.List) == 0 {
		return false
	}
	for _, stmt := range body.List {
		switch c := stmt.(type) {
		case *dst.CaseClause:
			c.Body = t.enable(c.Body)
		case *dst.CommClause:
			c.Body = t.enable(c.Body)
		}
	}
	return true
}

func (t tail) insertBefore(stmts []dst.Stmt, i int) []dst.Stmt {
	enable := codegen.EnableStmt(t.importPath)
	codegen.MoveLeadingDecorations(enable, stmts[i])
	return slices.Insert(stmts, i, dst.Stmt(enable))
}

func (t tail) wrap(value dst.Expr) dst.Expr {
	if t.result.Type != nil && isUntyped(value) {
		return codegen.EnableInjectionCallAs(t.importPath, t.result.Type, value)
	}
	return codegen.EnableInjectionCall(t.importPath, value)
}

// isUntyped reports whether an expression is built only from literals and the predeclared
// nil, true and false, which have no type of their own.
func isUntyped(expr dst.Expr) bool {
	switch e := expr.(type) {
	case *dst.BasicLit:
		return true
	case *dst.Ident:
		return e.Path == "" && (e.Name == "nil" || e.Name == "true" || e.Name == "false")
	case *dst.ParenExpr:
		return isUntyped(e.X)
	case *dst.UnaryExpr:
		return isUntyped(e.X)
	case *dst.BinaryExpr:
		return isUntyped(e.X) && isUntyped(e.Y)
	default:
		return false
	}
}

func isPanic(s *dst.ExprStmt) bool {
	call, ok := s.X.(*dst.CallExpr)
	if !ok {
		return false
	}
	ident, ok := call.Fun.(*dst.Ident)
	return ok && ident.Name == "panic" && ident.Path == ""
}
