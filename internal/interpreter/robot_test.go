package interpreter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRobotAt(t *testing.T, p Pose) *Robot {
	t.Helper()
	r := NewRobot(Grid{Width: 10, Height: 10})
	r.Reset(p)
	return r
}

func Test_Robot_Advance(t *testing.T) {
	tests := []struct {
		facing Direction
		want   Pose
	}{
		{North, Pose{X: 5, Y: 6, Direction: North}},
		{East, Pose{X: 6, Y: 5, Direction: East}},
		{South, Pose{X: 5, Y: 4, Direction: South}},
		{West, Pose{X: 4, Y: 5, Direction: West}},
	}

	for _, tt := range tests {
		t.Run(tt.facing.String(), func(t *testing.T) {
			r := newRobotAt(t, Pose{X: 5, Y: 5, Direction: tt.facing})
			r.Advance()
			assert.Equal(t, tt.want, r.Pose())
		})
	}
}

func Test_Robot_AdvanceThenOpposite(t *testing.T) {
	for _, d := range allDirections {
		start := Pose{X: 3, Y: 7, Direction: d}
		r := newRobotAt(t, start)

		r.Advance()
		assert.Equal(t, d, r.Pose().Direction, "advance keeps facing")

		r.RotateRight()
		r.RotateRight()
		r.Advance()
		assert.Equal(t, start.X, r.Pose().X)
		assert.Equal(t, start.Y, r.Pose().Y)
	}
}

func Test_Robot_Rotate(t *testing.T) {
	r := newRobotAt(t, Pose{X: 2, Y: 2, Direction: North})

	r.RotateLeft()
	assert.Equal(t, Pose{X: 2, Y: 2, Direction: West}, r.Pose())
	r.RotateRight()
	r.RotateRight()
	assert.Equal(t, Pose{X: 2, Y: 2, Direction: East}, r.Pose())
}

func Test_Robot_LeavesGridWithoutClamping(t *testing.T) {
	r := newRobotAt(t, Pose{X: 0, Y: 0, Direction: South})

	r.Advance()
	assert.Equal(t, Pose{X: 0, Y: -1, Direction: South}, r.Pose())

	r.RotateRight()
	r.Advance()
	assert.Equal(t, Pose{X: -1, Y: -1, Direction: West}, r.Pose())
}

func Test_Robot_ResetOutsideGridPanics(t *testing.T) {
	r := NewRobot(Grid{Width: 3, Height: 3})

	assert.Panics(t, func() { r.Reset(Pose{X: 3, Y: 0}) })
	assert.Panics(t, func() { r.Reset(Pose{X: 0, Y: -1}) })
	assert.NotPanics(t, func() { r.Reset(Pose{X: 2, Y: 2}) })
}

func Test_Robot_Resize(t *testing.T) {
	r := newRobotAt(t, Pose{X: 8, Y: 8, Direction: North})
	r.Resize(Grid{Width: 5, Height: 5})

	assert.Equal(t, Grid{Width: 5, Height: 5}, r.Grid())
	assert.Equal(t, Pose{X: 8, Y: 8, Direction: North}, r.Pose())
}

func Test_Robot_Apply(t *testing.T) {
	r := newRobotAt(t, Pose{X: 5, Y: 5, Direction: North})

	require.NoError(t, r.Apply(Advance))
	require.NoError(t, r.Apply(RotateRight))
	require.NoError(t, r.Apply(Advance))
	require.NoError(t, r.Apply(RotateLeft))
	assert.Equal(t, Pose{X: 6, Y: 6, Direction: North}, r.Pose())

	err := r.Apply(Command('X'))
	require.ErrorIs(t, err, ErrIllegalMove)
	assert.Equal(t, Pose{X: 6, Y: 6, Direction: North}, r.Pose(), "illegal move keeps the pose")

	var ime *IllegalMoveError
	require.ErrorAs(t, err, &ime)
	assert.Equal(t, Command('X'), ime.Command)
}
