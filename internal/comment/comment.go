package comment

import (
	"fmt"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
)

const (
	WarnHeader  string = "HR WARN"
	DebugHeader string = "HR DEBUG"
)

// Warn appends a hot reload warning comment to the node, and reports it to the console.
// Warnings are used for annotated declarations that could not be instrumented.
func Warn(pkg *decorator.Package, node dst.Node, message string, additionalInfo ...string) {
	prependComments(node, WarnHeader, message, additionalInfo...)
	printer.Add(pkg, node, WarnHeader, message, additionalInfo...)
}

// Debug reports a message to the console when debugging is enabled. The code is not changed.
func Debug(pkg *decorator.Package, node dst.Node, message string) {
	if printer == nil || !printer.debug {
		return
	}
	printer.Add(pkg, node, DebugHeader, message)
}

func prependComments(node dst.Node, header, message string, additionalInfo ...string) {
	comments := []string{
		fmt.Sprintf("// %s: %s", header, message),
	}
	for _, info := range additionalInfo {
		comments = append(comments, fmt.Sprintf("// %s", info))
	}

	decs := node.Decorations()
	if len(decs.Start) > 0 {
		comments = append(comments, "//")
	}

	decs.Start.Prepend(comments...)
}
