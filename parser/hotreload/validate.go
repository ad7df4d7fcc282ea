package hotreload

import (
	"github.com/dave/dst"
	"github.com/go-easy-hotreload/go-easy-hotreload/parser/macro"
)

const (
	ReasonNotStruct      = "HotReload can only be applied to struct types"
	ReasonNoBody         = "struct does not have a Body member"
	ReasonNotDeclaration = "Body member is not a field or method declaration"
	ReasonNotComputed    = "HotReload can only be applied to a computed Body method"
)

// Getter is a Body method that computes the view on every call.
type Getter struct {
	Method *dst.FuncDecl
	Stmts  []dst.Stmt
	Result Result
}

// ValidateComputed checks that the annotated declaration is a struct whose Body member
// is a getter method: no parameters, a single result, and a function body.
func ValidateComputed(site *macro.Site) (*Getter, error) {
	if site == nil || site.Spec == nil {
		return nil, macro.NotApplicable(ReasonNotStruct)
	}
	if _, ok := site.Spec.Type.(*dst.StructType); !ok {
		return nil, macro.NotApplicable(ReasonNotStruct)
	}

	member, ok := FindBodyMember(site)
	if !ok {
		return nil, macro.NotApplicable(ReasonNoBody)
	}

	switch m := member.(type) {
	case EmbeddedMember:
		return nil, macro.NotApplicable(ReasonNotDeclaration)
	case FieldMember:
		return nil, macro.NotApplicable(ReasonNotComputed)
	case MethodMember:
		return getter(m.Func)
	default:
		return nil, macro.NotApplicable(ReasonNotDeclaration)
	}
}

func getter(fn *dst.FuncDecl) (*Getter, error) {
	if fn.Body == nil || fn.Type == nil {
		return nil, macro.NotApplicable(ReasonNotComputed)
	}
	if fn.Type.Params != nil && len(fn.Type.Params.List) != 0 {
		return nil, macro.NotApplicable(ReasonNotComputed)
	}
	if fn.Type.Results == nil || len(fn.Type.Results.List) != 1 {
		return nil, macro.NotApplicable(ReasonNotComputed)
	}

	result := fn.Type.Results.List[0]
	if len(result.Names) > 1 {
		return nil, macro.NotApplicable(ReasonNotComputed)
	}

	g := &Getter{
		Method: fn,
		Stmts:  fn.Body.List,
		Result: Result{Type: result.Type},
	}
	if len(result.Names) == 1 && result.Names[0].Name != "_" {
		g.Result.Name = result.Names[0].Name
	}
	return g, nil
}
