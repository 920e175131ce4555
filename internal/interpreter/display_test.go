package interpreter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Render(t *testing.T) {
	g := Grid{Width: 3, Height: 2}
	tests := []struct {
		name string
		grid Grid
		pose Pose
		want string
	}{
		{"bottom left", g, Pose{X: 0, Y: 0, Direction: North}, ". . .\n^ . .\npose=(0,0,N)\n"},
		{"top right", g, Pose{X: 2, Y: 1, Direction: West}, ". . <\n. . .\npose=(2,1,W)\n"},
		{"off grid", g, Pose{X: 3, Y: 0, Direction: East}, ". . .\n. . .\npose=(3,0,E) off grid 3x2\n"},
		{"invalid grid", Grid{Width: 0, Height: 2}, Pose{}, "invalid grid 0x2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Render(&buf, tt.grid, tt.pose))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func Test_RenderFrame(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderFrame(&buf, Grid{Width: 1, Height: 1}, Pose{Direction: South}))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, clearScreen))
	assert.Equal(t, "v\npose=(0,0,S)\n", strings.TrimPrefix(out, clearScreen))
}
