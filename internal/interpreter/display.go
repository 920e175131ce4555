package interpreter

import (
	"fmt"
	"io"
	"strings"
)

const clearScreen = "\033[H\033[2J"

// Render writes the board with the cleaner drawn as its facing arrow. The top
// line is the highest y, matching the cell index order.
func Render(w io.Writer, g Grid, p Pose) error {
	cells := g.Board(p)
	if cells == nil {
		_, err := fmt.Fprintf(w, "invalid grid %s\n", g)
		return err
	}
	var b strings.Builder
	for i, c := range cells {
		if c.Active {
			b.WriteRune(p.Direction.Glyph())
		} else {
			b.WriteByte('.')
		}
		if (i+1)%g.Width == 0 {
			b.WriteByte('\n')
		} else {
			b.WriteByte(' ')
		}
	}
	if g.Contains(p.X, p.Y) {
		fmt.Fprintf(&b, "pose=%s\n", p)
	} else {
		fmt.Fprintf(&b, "pose=%s off grid %s\n", p, g)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// RenderFrame clears the terminal before rendering, for step animation.
func RenderFrame(w io.Writer, g Grid, p Pose) error {
	if _, err := io.WriteString(w, clearScreen); err != nil {
		return err
	}
	return Render(w, g, p)
}
