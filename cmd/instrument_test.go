package cmd

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-easy-hotreload/go-easy-hotreload/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testApp = `package main

import "fmt"

//inject:hotreload
type Greeting struct {
	name string
}

func (g Greeting) Body() string {
	return "hello " + g.name
}

//inject:HotReload
type Broken struct {
	Body int
}

func main() {
	fmt.Println(Greeting{name: "world"}.Body(), Broken{}.Body)
}
`

func writeTestApp(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go toolchain not available")
	}
	t.Setenv("GOWORK", "off")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/app\n\ngo 1.22\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"), []byte(testApp), 0644))
	return dir
}

func TestInstrument(t *testing.T) {
	dir := writeTestApp(t)
	cfg := &cli.Config{
		PackagePath: dir,
		PackageName: cli.DefaultPackageName,
		ImportPath:  "example.com/inject",
		DiffFile:    filepath.Join(dir, cli.DefaultDiffFileName),
	}

	require.NoError(t, Instrument(context.Background(), cfg))

	diff, err := os.ReadFile(cfg.DiffFile)
	require.NoError(t, err)
	out := string(diff)
	assert.Contains(t, out, "main.go")
	assert.Contains(t, out, "+\t_redraw inject.ObserveInjection")
	assert.Contains(t, out, `+	return inject.EnableInjection("hello " + g.name)`)
	assert.Contains(t, out, `+	"example.com/inject"`)
	assert.Contains(t, out, "HR WARN: This macro is not applicable: HotReload can only be applied to a computed Body method")
	assert.Contains(t, out, "+//inject:hotreload\n type Broken struct {")

	source, err := os.ReadFile(filepath.Join(dir, "main.go"))
	require.NoError(t, err)
	assert.Equal(t, testApp, string(source), "source files are never rewritten in place")
}

func TestInstrument_NoViews(t *testing.T) {
	dir := writeTestApp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"), []byte("package main\n\nfunc main() {}\n"), 0644))

	cfg, err := cli.NewConfig(dir, "", "", false, false)
	require.NoError(t, err)
	require.NoError(t, Instrument(context.Background(), cfg))

	diff, err := os.ReadFile(cfg.DiffFile)
	require.NoError(t, err)
	assert.Empty(t, diff)
}

func TestInstrument_DemoApp(t *testing.T) {
	dir := writeTestApp(t)
	demo, err := os.ReadFile(filepath.Join("..", "demo-app", "main.go"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"), demo, 0644))

	cfg, err := cli.NewConfig(dir, "example.com/inject", "", false, false)
	require.NoError(t, err)
	require.NoError(t, Instrument(context.Background(), cfg))

	diff, err := os.ReadFile(cfg.DiffFile)
	require.NoError(t, err)
	out := string(diff)
	assert.Equal(t, 2, strings.Count(out, "+\t_redraw inject.ObserveInjection"))
	assert.Contains(t, out, "+\treturn inject.EnableInjection(strings.ToUpper(h.title))")
	assert.Contains(t, out, "+\treturn inject.EnableInjection(label)")
	assert.Contains(t, out, "+// HR WARN: This macro is not applicable: HotReload can only be applied to a computed Body method")
}
