package interpreter

import "fmt"

// Grid holds the board dimensions. Cell indexes count from the top-left
// visual cell while y=0 is the bottom row, so index rows run opposite to y.
type Grid struct {
	Width  int
	Height int
}

// Cell is one addressable board location.
type Cell struct {
	Index  int
	Active bool
}

// Valid reports whether both dimensions are positive.
func (g Grid) Valid() bool {
	return g.Width > 0 && g.Height > 0
}

// Index maps (x, y) to a linear cell index.
func (g Grid) Index(x, y int) int {
	return (g.Height-y-1)*g.Width + x
}

// Coords is the inverse of Index.
func (g Grid) Coords(index int) (x, y int) {
	return index % g.Width, g.Height - index/g.Width - 1
}

// Contains reports whether (x, y) lies inside the board.
func (g Grid) Contains(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Cells returns Width*Height inactive cells in index order, or nil for a
// grid that is not Valid.
func (g Grid) Cells() []Cell {
	if !g.Valid() {
		return nil
	}
	cells := make([]Cell, g.Width*g.Height)
	for i := range cells {
		cells[i] = Cell{Index: i}
	}
	return cells
}

// Board builds a fresh cell view with the cell under p marked active.
// No cell is active when p is off the board.
func (g Grid) Board(p Pose) []Cell {
	cells := g.Cells()
	if cells != nil && g.Contains(p.X, p.Y) {
		cells[g.Index(p.X, p.Y)].Active = true
	}
	return cells
}

func (g Grid) String() string {
	return fmt.Sprintf("%dx%d", g.Width, g.Height)
}
