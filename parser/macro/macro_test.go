package macro

import (
	"errors"
	"testing"

	"github.com/dave/dst"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMacro struct {
	name   string
	failOn map[Capacity]bool
	calls  []Capacity
}

func (f *fakeMacro) Name() string { return f.name }

func (f *fakeMacro) Expand(site *Site, capacity Capacity) ([]Declaration, error) {
	f.calls = append(f.calls, capacity)
	if f.failOn[capacity] {
		return nil, NotApplicable("nope")
	}
	switch capacity {
	case Members:
		return []Declaration{NewField{Field: &dst.Field{}}}, nil
	default:
		return []Declaration{Replacement{Decl: &dst.FuncDecl{}}}, nil
	}
}

func TestNotApplicableError(t *testing.T) {
	err := NotApplicable("struct does not have a Body member")
	assert.EqualError(t, err, "This macro is not applicable: struct does not have a Body member")

	var notApplicable *NotApplicableError
	require.True(t, errors.As(err, &notApplicable))
	assert.Equal(t, "struct does not have a Body member", notApplicable.Reason)
}

func TestExpandAll(t *testing.T) {
	tests := []struct {
		name      string
		failOn    map[Capacity]bool
		wantDecls int
		wantErr   bool
	}{
		{
			name:      "both capacities succeed",
			wantDecls: 2,
		},
		{
			name:    "member capacity fails",
			failOn:  map[Capacity]bool{Members: true},
			wantErr: true,
		},
		{
			name:    "peer capacity fails",
			failOn:  map[Capacity]bool{Peers: true},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &fakeMacro{name: "Fake", failOn: tt.failOn}
			decls, err := ExpandAll(m, &Site{})
			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, decls, "a failed expansion must not return partial output")
				return
			}
			require.NoError(t, err)
			require.Len(t, decls, tt.wantDecls)
			assert.IsType(t, NewField{}, decls[0])
			assert.IsType(t, Replacement{}, decls[1])
		})
	}
}

func TestRegistry(t *testing.T) {
	first := &fakeMacro{name: "HotReload"}
	duplicate := &fakeMacro{name: "HOTRELOAD"}
	other := &fakeMacro{name: "Other"}

	r := NewRegistry(first, nil, duplicate, other)
	assert.Equal(t, []string{"HotReload", "Other"}, r.Names())

	m, ok := r.Lookup("HotReload")
	require.True(t, ok)
	assert.Same(t, first, m)

	m, ok = r.Lookup("hotreload")
	require.True(t, ok, "lookups ignore case")
	assert.Same(t, first, m)

	_, ok = r.Lookup("Missing")
	assert.False(t, ok)

	names := r.Names()
	names[0] = "changed"
	assert.Equal(t, []string{"HotReload", "Other"}, r.Names())

	var nilRegistry *Registry
	_, ok = nilRegistry.Lookup("HotReload")
	assert.False(t, ok)
}

func TestCapacity_String(t *testing.T) {
	assert.Equal(t, "Members", Members.String())
	assert.Equal(t, "Peers", Peers.String())
	assert.Equal(t, "Unknown", Capacity(9).String())
}

func TestSite_Name(t *testing.T) {
	var nilSite *Site
	assert.Equal(t, "", nilSite.Name())
	assert.Equal(t, "ContentView", (&Site{Spec: &dst.TypeSpec{Name: dst.NewIdent("ContentView")}}).Name())
}
