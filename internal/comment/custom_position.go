package comment

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
	"github.com/go-easy-hotreload/go-easy-hotreload/internal/util"
)

// getPosition creates a human readable string representing the position of a node in an application.
// In order to improve readability, the filename will be localized to the root of the application.
// The format of the string is as follows based on the positional info available:
//
// Info 					|		Formatting
// ------------------------------------------------------------------
// filename,line, column	|	filename line:column
// filename, line			|	filename line
// filename, column			|	filename
// filename					|	filename
// invalid or empty			|	""
func getPosition(pkg *decorator.Package, node dst.Node, appRoot string) string {
	pos := util.Position(node, pkg)
	if pos == nil || !pos.IsValid() {
		return ""
	}

	return formatPosition(pos.Filename, pos.Line, pos.Column, appRoot)
}

func formatPosition(filename string, line, column int, appRoot string) string {
	path := strings.Builder{}
	found := false
	for _, segment := range strings.Split(filename, string(filepath.Separator)) {
		if found {
			path.WriteByte(filepath.Separator)
			path.WriteString(segment)
			continue
		}
		if segment == appRoot {
			found = true
			path.WriteString(segment)
		}
	}
	if !found {
		path.WriteString(filename)
	}

	if line != 0 {
		path.WriteByte(' ')
		path.WriteString(strconv.Itoa(line))
		if column != 0 {
			path.WriteByte(':')
			path.WriteString(strconv.Itoa(column))
		}
	}

	return path.String()
}
