package parser

import (
	"github.com/dave/dst"
	"github.com/go-easy-hotreload/go-easy-hotreload/parser/facts"
)

const (
	// DirectivePrefix starts a comment that applies a macro to the type declared below it.
	// The macro name that follows is matched case insensitively and written back in lowercase.
	//
	//	//inject:hotreload
	//	type ContentView struct { ... }
	DirectivePrefix = "//inject:"
)

// FactScan is a function that inspects a type declaration for facts that need to be
// known before any macro is expanded. Functions that implement this should be designed
// to detect a specific thing about a single type spec.
type FactScan func(decl *dst.GenDecl, spec *dst.TypeSpec) (facts.Entry, bool)
