package hotreload

import (
	"github.com/dave/dst"
	"github.com/go-easy-hotreload/go-easy-hotreload/internal/util"
	"github.com/go-easy-hotreload/go-easy-hotreload/parser/macro"
)

// BodyMemberName is the member a view renders through.
const BodyMemberName = "Body"

// Member is one entry of a view type's member list: a FieldMember, an EmbeddedMember
// or a MethodMember.
type Member interface {
	MemberName() string
}

// FieldMember is a named struct field; a stored property of the view.
type FieldMember struct {
	Field *dst.Field
	Name  string
}

// EmbeddedMember is an embedded struct field, named after the type it embeds.
type EmbeddedMember struct {
	Field *dst.Field
}

// MethodMember is a method declared on the view type.
type MethodMember struct {
	Func *dst.FuncDecl
}

func (m FieldMember) MemberName() string    { return m.Name }
func (m EmbeddedMember) MemberName() string { return util.EmbeddedFieldName(m.Field) }
func (m MethodMember) MemberName() string   { return m.Func.Name.Name }

// members lists the fields of the struct in declaration order followed by its methods.
func members(site *macro.Site) []Member {
	var list []Member
	if structType, ok := site.Spec.Type.(*dst.StructType); ok && structType.Fields != nil {
		for _, field := range structType.Fields.List {
			if len(field.Names) == 0 {
				list = append(list, EmbeddedMember{Field: field})
				continue
			}
			for _, name := range field.Names {
				list = append(list, FieldMember{Field: field, Name: name.Name})
			}
		}
	}
	for _, fn := range site.Methods {
		if fn != nil && fn.Name != nil {
			list = append(list, MethodMember{Func: fn})
		}
	}
	return list
}

// FindBodyMember returns the first member of the annotated type named Body.
// Only the name is matched; the member's shape is checked by ValidateComputed.
func FindBodyMember(site *macro.Site) (Member, bool) {
	if site == nil || site.Spec == nil {
		return nil, false
	}
	for _, m := range members(site) {
		if m.MemberName() == BodyMemberName {
			return m, true
		}
	}
	return nil, false
}
