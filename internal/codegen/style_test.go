package codegen

import (
	"testing"

	"github.com/dave/dst"
	"github.com/stretchr/testify/assert"
)

func TestMoveLeadingDecorations(t *testing.T) {
	tests := []struct {
		name      string
		before    dst.SpaceType
		start     []string
		wantStart []string
	}{
		{
			name:   "no comments",
			before: dst.NewLine,
		},
		{
			name:      "comment and empty line",
			before:    dst.EmptyLine,
			start:     []string{"// done"},
			wantStart: []string{"// done"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ret := &dst.ReturnStmt{}
			ret.Decs.Before = tt.before
			ret.Decs.Start = tt.start

			stmt := EnableStmt("example.com/inject")
			MoveLeadingDecorations(stmt, ret)

			assert.Equal(t, tt.before, stmt.Decs.Before)
			assert.Equal(t, dst.Decorations(tt.wantStart), stmt.Decs.Start)
			assert.Equal(t, dst.NewLine, ret.Decs.Before)
			assert.Empty(t, ret.Decs.Start)
		})
	}
}
