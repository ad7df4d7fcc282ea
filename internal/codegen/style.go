package codegen

import (
	"github.com/dave/dst"
)

// MoveLeadingDecorations hands the spacing and comments above from over to to. Use it when to
// is inserted directly before from, so that comments describing from stay above the pair:
//
//	// done
//	return
//
// becomes
//
//	// done
//	inject.Enable()
//	return
func MoveLeadingDecorations(to, from dst.Stmt) {
	toDecs := to.Decorations()
	fromDecs := from.Decorations()

	toDecs.Before = fromDecs.Before
	toDecs.Start.Append(fromDecs.Start...)

	fromDecs.Before = dst.NewLine
	fromDecs.Start.Clear()
}
