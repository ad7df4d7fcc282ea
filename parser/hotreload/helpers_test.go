package hotreload

import (
	"bytes"
	"fmt"
	"go/ast"
	goparser "go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
	"github.com/dave/dst/decorator/resolver/goast"
	"github.com/dave/dst/decorator/resolver/guess"
	"github.com/davecgh/go-spew/spew"
	"github.com/go-easy-hotreload/go-easy-hotreload/internal/util"
	"github.com/go-easy-hotreload/go-easy-hotreload/parser/macro"
	"github.com/stretchr/testify/require"
)

const (
	testAppPath    = "example.com/app"
	testImportPath = "example.com/inject"
)

var snapshotConfig = spew.ConfigState{
	Indent:            " ",
	DisableCapacities: true,
	SortKeys:          true,
}

func parseFile(t *testing.T, src string) *dst.File {
	t.Helper()
	dec := decorator.NewDecoratorWithImports(token.NewFileSet(), testAppPath, goast.New())
	f, err := dec.Parse(src)
	require.NoError(t, err)
	return f
}

// testSite builds the site for typeName the way the directive scanner does.
func testSite(t *testing.T, f *dst.File, typeName string) *macro.Site {
	t.Helper()
	var site *macro.Site
	for _, decl := range f.Decls {
		switch v := decl.(type) {
		case *dst.GenDecl:
			if v.Tok != token.TYPE {
				continue
			}
			for _, spec := range v.Specs {
				ts := spec.(*dst.TypeSpec)
				if ts.Name.Name == typeName {
					site = &macro.Site{
						Attribute: macro.Attribute{Name: MacroName, Node: v},
						Decl:      v,
						Spec:      ts,
					}
				}
			}
		}
	}
	require.NotNil(t, site, "type %s not found", typeName)

	for _, decl := range f.Decls {
		if fn, ok := decl.(*dst.FuncDecl); ok && util.ReceiverTypeName(fn) == typeName {
			site.Methods = append(site.Methods, fn)
		}
	}
	return site
}

func printFile(t *testing.T, f *dst.File) string {
	t.Helper()
	buf := bytes.NewBuffer([]byte{})
	r := decorator.NewRestorerWithImports(testAppPath, guess.New())
	require.NoError(t, r.Fprint(buf, f))
	return buf.String()
}

// injectRuntime stands in for the injection runtime when type checking generated code.
const injectRuntime = `package inject

type ObserveInjection struct{}

func EnableInjection[T any](v T) T { return v }

func Enable() {}
`

type runtimeImporter struct {
	runtime *types.Package
}

func (r runtimeImporter) Import(path string) (*types.Package, error) {
	if path == testImportPath {
		return r.runtime, nil
	}
	return nil, fmt.Errorf("unexpected import %q", path)
}

// typeCheck fails the test when src, which may only import the injection runtime,
// is not valid Go.
func typeCheck(t *testing.T, src string) {
	t.Helper()
	fset := token.NewFileSet()

	runtimeFile, err := goparser.ParseFile(fset, "inject.go", injectRuntime, 0)
	require.NoError(t, err)
	runtime, err := (&types.Config{}).Check(testImportPath, fset, []*ast.File{runtimeFile}, nil)
	require.NoError(t, err)

	file, err := goparser.ParseFile(fset, "views.go", src, 0)
	require.NoError(t, err, src)
	conf := types.Config{Importer: runtimeImporter{runtime: runtime}}
	_, err = conf.Check(testAppPath, fset, []*ast.File{file}, nil)
	require.NoError(t, err, src)
}

// expandFile expands the macro on typeName and splices the result into f, the way the
// host does.
func expandFile(t *testing.T, f *dst.File, typeName string) {
	t.Helper()
	site := testSite(t, f, typeName)
	decls, err := macro.ExpandAll(New(testImportPath), site)
	require.NoError(t, err)

	for _, d := range decls {
		switch v := d.(type) {
		case macro.NewField:
			structType := site.Spec.Type.(*dst.StructType)
			structType.Fields.List = append(structType.Fields.List, v.Field)
		case macro.Replacement:
			for i, decl := range f.Decls {
				if decl == v.Original {
					f.Decls[i] = v.Decl
				}
			}
		}
	}
}
