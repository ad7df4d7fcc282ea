// Test Utils contains tools and building blocks that can be generically used for unit tests

package parser

import (
	"bytes"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"runtime/debug"
	"slices"
	"testing"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
	"github.com/dave/dst/decorator/resolver"
	"github.com/dave/dst/decorator/resolver/goast"
	"github.com/dave/dst/decorator/resolver/guess"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"
)

const (
	testPkgPath    = "example.com/app"
	testImportPath = "example.com/inject"
)

// createTestPackage writes the given files to a temporary directory and decorates them as
// a single package, without invoking the go command.
func createTestPackage(t *testing.T, files map[string]string) *decorator.Package {
	t.Helper()
	dir := t.TempDir()
	fset := token.NewFileSet()
	dec := decorator.NewDecoratorWithImports(fset, testPkgPath, goast.New())

	pkg := &decorator.Package{
		Package: &packages.Package{
			ID:      testPkgPath,
			PkgPath: testPkgPath,
			Fset:    fset,
		},
		Dir:       dir,
		Decorator: dec,
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	// sorted, so methods are indexed in a stable order
	slices.Sort(names)

	for _, name := range names {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(files[name]), 0644))
		f, err := dec.ParseFile(path, nil, parser.ParseComments)
		require.NoError(t, err)
		pkg.Syntax = append(pkg.Syntax, f)
	}
	return pkg
}

func testInstrumentationManager(t *testing.T, files map[string]string) (*InstrumentationManager, *decorator.Package) {
	t.Helper()
	defer panicRecovery(t)

	pkg := createTestPackage(t, files)
	diffFile := filepath.Join(pkg.Dir, "hotreload.diff")
	manager := NewInstrumentationManager([]*decorator.Package{pkg}, testImportPath, diffFile, pkg.Dir)
	manager.newResolver = func(string) resolver.RestorerResolver { return guess.New() }
	return manager, pkg
}

func panicRecovery(t *testing.T) {
	err := recover()
	if err != nil {
		t.Fatalf("%s recovered from panic: %+v\n\n%s", t.Name(), err, debug.Stack())
	}
}

func printFile(t *testing.T, f *dst.File) string {
	t.Helper()
	buf := bytes.NewBuffer([]byte{})
	r := decorator.NewRestorerWithImports(testPkgPath, guess.New())
	require.NoError(t, r.Fprint(buf, f))
	return buf.String()
}
