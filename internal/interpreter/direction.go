package interpreter

import (
	"fmt"
	"strings"
)

// Direction is the facing of the cleaner. Values follow the clockwise cycle
// North, East, South, West.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

var directionLetters = [...]string{"N", "E", "S", "W"}

// Right turns clockwise.
func (d Direction) Right() Direction { return (d + 1) % 4 }

// Left turns counter-clockwise.
func (d Direction) Left() Direction { return (d + 3) % 4 }

// Delta is the unit vector of one advance in this direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, 1
	case East:
		return 1, 0
	case South:
		return 0, -1
	case West:
		return -1, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	if d < North || d > West {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionLetters[d]
}

// Glyph is the arrow used by renderers to show the facing.
func (d Direction) Glyph() rune {
	switch d {
	case North:
		return '^'
	case East:
		return '>'
	case South:
		return 'v'
	case West:
		return '<'
	}
	return '?'
}

// ParseDirection accepts one of N, E, S, W in any case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToUpper(s) {
	case "N":
		return North, nil
	case "E":
		return East, nil
	case "S":
		return South, nil
	case "W":
		return West, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// MarshalText encodes the direction as its letter.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes a direction letter.
func (d *Direction) UnmarshalText(b []byte) error {
	v, err := ParseDirection(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
