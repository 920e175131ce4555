package interpreter

import "fmt"

// Pose is the cleaner's full state: coordinates plus facing.
type Pose struct {
	X         int       `json:"x" yaml:"x"`
	Y         int       `json:"y" yaml:"y"`
	Direction Direction `json:"direction" yaml:"direction"`
}

func (p Pose) String() string {
	return fmt.Sprintf("(%d,%d,%s)", p.X, p.Y, p.Direction)
}

// Robot is the simulation engine. It owns the live pose of the cleaner and
// the grid it was placed on. Moves are never clamped: only the starting pose
// is checked against the grid.
type Robot struct {
	grid Grid
	pose Pose
}

func NewRobot(g Grid) *Robot {
	return &Robot{grid: g}
}

// Reset places the cleaner at p. p must already be inside the grid; callers
// validate with ValidatePose first.
func (r *Robot) Reset(p Pose) {
	if !r.grid.Contains(p.X, p.Y) {
		panic(fmt.Sprintf("interpreter: reset to %s outside grid %s", p, r.grid))
	}
	r.pose = p
}

// Resize replaces the grid without touching the pose.
func (r *Robot) Resize(g Grid) {
	r.grid = g
}

func (r *Robot) Advance() {
	dx, dy := r.pose.Direction.Delta()
	r.pose.X += dx
	r.pose.Y += dy
}

func (r *Robot) RotateLeft() {
	r.pose.Direction = r.pose.Direction.Left()
}

func (r *Robot) RotateRight() {
	r.pose.Direction = r.pose.Direction.Right()
}

// Apply executes one command. Unknown commands leave the pose untouched.
func (r *Robot) Apply(c Command) error {
	switch c {
	case Advance:
		r.Advance()
	case RotateLeft:
		r.RotateLeft()
	case RotateRight:
		r.RotateRight()
	default:
		return &IllegalMoveError{Command: c, Pose: r.pose}
	}
	return nil
}

// Pose returns a snapshot of the live pose.
func (r *Robot) Pose() Pose {
	return r.pose
}

func (r *Robot) Grid() Grid {
	return r.grid
}

func (r *Robot) String() string {
	return r.pose.String()
}
