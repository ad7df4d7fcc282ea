package macro

import (
	"github.com/dave/dst"
)

// Attribute is a directive comment that applies a macro to a type declaration:
//
//	//inject:hotreload
//	type ContentView struct { ... }
type Attribute struct {
	Name string
	Node dst.Node // the node whose decorations carry the directive
}

// Site is the declaration a macro is attached to. Sites, and every node reachable
// from them, are read only to macros.
type Site struct {
	Attribute Attribute
	Decl      *dst.GenDecl
	Spec      *dst.TypeSpec
	Methods   []*dst.FuncDecl // methods declared on Spec, in source order
}

// Name returns the name of the annotated type.
func (s *Site) Name() string {
	if s == nil || s.Spec == nil || s.Spec.Name == nil {
		return ""
	}
	return s.Spec.Name.Name
}

// Declaration is a piece of generated code returned by a macro for the host to splice
// into the tree. It is either a NewField or a Replacement.
type Declaration interface {
	declaration()
}

// NewField is a field to be appended to the annotated struct.
type NewField struct {
	Field *dst.Field
}

// Replacement is a method declaration that replaces Original wherever it is declared.
type Replacement struct {
	Original *dst.FuncDecl
	Decl     *dst.FuncDecl
}

func (NewField) declaration()    {}
func (Replacement) declaration() {}

// Capacity selects which declarations an expansion contributes.
type Capacity uint8

const (
	// Members contributes new members of the annotated type.
	Members Capacity = iota
	// Peers contributes replacements for existing members of the annotated type.
	Peers
)

func (c Capacity) String() string {
	switch c {
	case Members:
		return "Members"
	case Peers:
		return "Peers"
	default:
		return "Unknown"
	}
}
