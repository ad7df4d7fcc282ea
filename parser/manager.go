package parser

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
	"github.com/dave/dst/decorator/resolver"
	"github.com/go-easy-hotreload/go-easy-hotreload/internal/comment"
	"github.com/go-easy-hotreload/go-easy-hotreload/parser/facts"
	"github.com/go-easy-hotreload/go-easy-hotreload/parser/hotreload"
	"github.com/go-easy-hotreload/go-easy-hotreload/parser/macro"
	godiffpatch "github.com/sourcegraph/go-diff-patch"
	"golang.org/x/sync/errgroup"
)

// InstrumentationManager maintains state relevant to instrumentation across all files and packages.
type InstrumentationManager struct {
	userAppPath string // path to the user's application as provided by the user
	diffFile    string
	importPath  string
	registry    *macro.Registry
	scans       []FactScan
	packages    map[string]*PackageState // stores stateful information on packages by ID
	newResolver func(dir string) resolver.RestorerResolver
}

// PackageState contains state relevant to instrumentation within a single package.
// It is only ever accessed by one goroutine at a time.
type PackageState struct {
	pkg          *decorator.Package     // the package being instrumented
	facts        facts.Keeper           // facts about the package's types
	sites        []*macro.Site          // annotated declarations found in the package
	expanded     map[*dst.TypeSpec]bool // types a macro has already been spliced into
	declFiles    map[dst.Decl]*dst.File // the file each top level declaration lives in
	modified     map[*dst.File]bool     // files changed by instrumentation
	importsAdded map[string]bool        // tracks imports added to the package
}

// NewInstrumentationManager initializes an InstrumentationManager for the given packages.
// Generated code references the injection runtime at importPath.
func NewInstrumentationManager(pkgs []*decorator.Package, importPath, diffFile, userAppPath string) *InstrumentationManager {
	m := hotreload.New(importPath)

	manager := &InstrumentationManager{
		userAppPath: userAppPath,
		diffFile:    diffFile,
		importPath:  m.ImportPath(),
		registry:    macro.NewRegistry(m),
		packages:    map[string]*PackageState{},
		newResolver: defaultRestorerResolver,
	}

	for _, pkg := range pkgs {
		manager.packages[pkg.ID] = newPackageState(pkg)
	}

	return manager
}

func newPackageState(pkg *decorator.Package) *PackageState {
	state := &PackageState{
		pkg:          pkg,
		facts:        facts.NewKeeper(),
		expanded:     map[*dst.TypeSpec]bool{},
		declFiles:    map[dst.Decl]*dst.File{},
		modified:     map[*dst.File]bool{},
		importsAdded: map[string]bool{},
	}
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			state.declFiles[decl] = file
		}
	}
	return state
}

func (m *InstrumentationManager) CreateDiffFile() error {
	f, err := os.Create(m.diffFile)
	if err != nil {
		return err
	}
	return f.Close()
}

// DetectViewDeclarations finds every annotated type declaration and records the facts
// needed to instrument them. It must run before InstrumentApplication.
func (m *InstrumentationManager) DetectViewDeclarations() error {
	m.loadFactScans(ScanViewDeclaration, ScanInstrumented(m.importPath))

	var errReturn error
	for id, state := range m.packages {
		state.sites = FindSites(state.pkg.Syntax)
		if err := scanPackageFacts(state, m.scans...); err != nil {
			errReturn = errors.Join(errReturn, fmt.Errorf("package %s: %w", id, err))
		}
	}

	return errReturn
}

func (m *InstrumentationManager) loadFactScans(scans ...FactScan) {
	m.scans = append(m.scans, scans...)
}

func scanPackageFacts(state *PackageState, scans ...FactScan) error {
	var errReturn error
	for _, file := range state.pkg.Syntax {
		for _, decl := range file.Decls {
			genDecl, ok := decl.(*dst.GenDecl)
			if !ok {
				continue
			}
			for _, spec := range genDecl.Specs {
				typeSpec, ok := spec.(*dst.TypeSpec)
				if !ok {
					continue
				}
				for _, scan := range scans {
					entry, ok := scan(genDecl, typeSpec)
					if !ok {
						continue
					}
					if err := state.facts.AddFact(entry); err != nil {
						errReturn = errors.Join(errReturn, fmt.Errorf("error adding fact entry %s: %w", entry, err))
					}
				}
			}
		}
	}
	return errReturn
}

// Sites returns the annotated declarations found by DetectViewDeclarations.
func (m *InstrumentationManager) Sites() []*macro.Site {
	var sites []*macro.Site
	for _, state := range m.packages {
		sites = append(sites, state.sites...)
	}
	return sites
}

// InstrumentApplication expands every annotated declaration in place in the dst files stored
// in the InstrumentationManager. This will not generate any changes to the actual source code,
// just the syntax trees generated from it. Packages are instrumented concurrently.
//
// Declarations a macro does not apply to are reported as warnings and left unchanged.
func (m *InstrumentationManager) InstrumentApplication(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for _, state := range m.packages {
		g.Go(func() error {
			return m.instrumentPackage(ctx, state)
		})
	}

	return g.Wait()
}

func (m *InstrumentationManager) instrumentPackage(ctx context.Context, state *PackageState) error {
	for _, site := range state.sites {
		if err := ctx.Err(); err != nil {
			return err
		}
		normalizeDirectives(site.Attribute.Node.Decorations().Start)
		if err := m.expandSite(state, site); err != nil {
			return fmt.Errorf("%s: %w", state.pkg.ID, err)
		}
	}
	return nil
}

func (m *InstrumentationManager) expandSite(state *PackageState, site *macro.Site) error {
	pkg := state.pkg

	if state.facts.GetFact(site.Name()) == facts.Instrumented {
		comment.Debug(pkg, site.Attribute.Node, fmt.Sprintf("%s is already instrumented", site.Name()))
		return nil
	}
	if state.expanded[site.Spec] {
		comment.Debug(pkg, site.Attribute.Node, fmt.Sprintf("%s has already been expanded", site.Name()))
		return nil
	}

	mac, ok := m.registry.Lookup(site.Attribute.Name)
	if !ok {
		comment.Warn(pkg, site.Attribute.Node, fmt.Sprintf("unknown macro %q", site.Attribute.Name),
			fmt.Sprintf("known macros: %v", m.registry.Names()))
		state.modified[state.declFiles[site.Decl]] = true
		return nil
	}

	decls, err := macro.ExpandAll(mac, site)
	if err != nil {
		var notApplicable *macro.NotApplicableError
		if !errors.As(err, &notApplicable) {
			return fmt.Errorf("expanding %s on %s: %w", mac.Name(), site.Name(), err)
		}
		comment.Warn(pkg, site.Attribute.Node, err.Error())
		state.modified[state.declFiles[site.Decl]] = true
		return nil
	}

	if err := state.checkSplice(site, decls); err != nil {
		comment.Warn(pkg, site.Attribute.Node, fmt.Sprintf("cannot expand %s on %s: %v", mac.Name(), site.Name(), err))
		state.modified[state.declFiles[site.Decl]] = true
		return nil
	}
	state.splice(site, decls)
	state.expanded[site.Spec] = true

	comment.Debug(pkg, site.Attribute.Node, fmt.Sprintf("%s expanded on %s", mac.Name(), site.Name()))
	return nil
}

// checkSplice reports whether every declaration can be spliced into the package, so that
// a site is either fully expanded or left untouched.
func (s *PackageState) checkSplice(site *macro.Site, decls []macro.Declaration) error {
	for _, d := range decls {
		switch v := d.(type) {
		case macro.NewField:
			if _, ok := site.Spec.Type.(*dst.StructType); !ok {
				return fmt.Errorf("cannot add a field to non struct type %s", site.Name())
			}
		case macro.Replacement:
			file, ok := s.declFiles[v.Original]
			if !ok || !slices.Contains(file.Decls, dst.Decl(v.Original)) {
				return fmt.Errorf("declaration of %s not found", v.Original.Name.Name)
			}
		default:
			return fmt.Errorf("unsupported declaration %T", d)
		}
	}
	return nil
}

// splice inserts the declarations generated for a site into the package's syntax trees.
// The declarations must have passed checkSplice.
func (s *PackageState) splice(site *macro.Site, decls []macro.Declaration) {
	for _, d := range decls {
		switch v := d.(type) {
		case macro.NewField:
			structType := site.Spec.Type.(*dst.StructType)
			if structType.Fields == nil {
				structType.Fields = &dst.FieldList{}
			}
			structType.Fields.List = append(structType.Fields.List, v.Field)
			s.modified[s.declFiles[site.Decl]] = true
		case macro.Replacement:
			s.replaceDecl(v.Original, v.Decl)
		}
		s.addImports(site, d)
	}
}

func (s *PackageState) replaceDecl(original, replacement *dst.FuncDecl) {
	file := s.declFiles[original]
	i := slices.Index(file.Decls, dst.Decl(original))

	file.Decls[i] = replacement
	delete(s.declFiles, original)
	s.declFiles[replacement] = file
	s.modified[file] = true
}

// addImports records the packages referenced by generated code that the file it was
// spliced into does not import yet.
func (s *PackageState) addImports(site *macro.Site, d macro.Declaration) {
	var node dst.Node
	var file *dst.File
	switch v := d.(type) {
	case macro.NewField:
		node, file = v.Field, s.declFiles[site.Decl]
	case macro.Replacement:
		node, file = v.Decl, s.declFiles[v.Decl]
	}
	if node == nil {
		return
	}

	imported := map[string]bool{}
	if file != nil {
		for _, imp := range file.Imports {
			if path, err := strconv.Unquote(imp.Path.Value); err == nil {
				imported[path] = true
			}
		}
	}

	dst.Inspect(node, func(n dst.Node) bool {
		ident, ok := n.(*dst.Ident)
		if !ok || ident.Path == "" || ident.Path == s.pkg.PkgPath || imported[ident.Path] {
			return true
		}
		s.importsAdded[ident.Path] = true
		return true
	})
}

// WriteDiff writes out the changes made to each modified file to the diff file.
func (m *InstrumentationManager) WriteDiff() error {
	absAppPath, err := filepath.Abs(m.userAppPath)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(m.diffFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, id := range m.packageIDs() {
		state := m.packages[id]
		r := decorator.NewRestorerWithImports(state.pkg.PkgPath, m.newResolver(state.pkg.Dir))

		for _, file := range state.pkg.Syntax {
			if !state.modified[file] {
				continue
			}

			path := state.pkg.Decorator.Filenames[file]
			originalFile, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			// what this file will be named in the diff file
			diffFileName, err := filepath.Rel(absAppPath, path)
			if err != nil {
				return err
			}

			modifiedFile := bytes.NewBuffer([]byte{})
			if err := r.Fprint(modifiedFile, file); err != nil {
				return err
			}

			patch := godiffpatch.GeneratePatch(diffFileName, string(originalFile), modifiedFile.String())
			if _, err := f.WriteString(patch); err != nil {
				return err
			}
		}
	}
	log.Printf("changes written to %s", m.diffFile)
	return nil
}

// AddRequiredModules runs go get for every module generated code imports, from the directory
// of each package that needs it.
func (m *InstrumentationManager) AddRequiredModules(ctx context.Context) error {
	for _, id := range m.packageIDs() {
		state := m.packages[id]
		for module := range state.importsAdded {
			cmd := exec.CommandContext(ctx, "go", "get", module)
			cmd.Dir = state.pkg.Dir
			if out, err := cmd.CombinedOutput(); err != nil {
				return fmt.Errorf("error getting Go module %s: %v: %s", module, err, out)
			}
		}
	}

	return nil
}

// packageIDs returns the IDs of the managed packages in a stable order.
func (m *InstrumentationManager) packageIDs() []string {
	ids := make([]string, 0, len(m.packages))
	for id := range m.packages {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
