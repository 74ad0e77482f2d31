package levels

import (
	"errors"
	"fmt"
)

const (
	DefaultWidth  = 32
	DefaultHeight = 16
)

var ErrInvalidDimensions = errors.New("levels: invalid grid dimensions")

// Grid is a fixed-size tile map indexed [x][y].
type Grid struct {
	Width  int
	Height int

	cells [][]Tile
}

// NewGrid allocates a grid of Air tiles. The size never changes afterwards.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	cells := make([][]Tile, width)
	for x := range cells {
		cells[x] = make([]Tile, height)
	}
	return &Grid{Width: width, Height: height, cells: cells}, nil
}

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	if g == nil {
		return false
	}
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the tile at (x, y), or Air when out of bounds.
func (g *Grid) At(x, y int) Tile {
	if !g.InBounds(x, y) {
		return Air
	}
	return g.cells[x][y]
}

// Set stores t at (x, y). Out-of-bounds coordinates and unknown tiles are
// ignored; it returns whether the cell was written.
func (g *Grid) Set(x, y int, t Tile) bool {
	if !g.InBounds(x, y) || !t.Valid() {
		return false
	}
	g.cells[x][y] = t
	return true
}

// Cycle advances the tile at (x, y) to the next type.
func (g *Grid) Cycle(x, y int) (Tile, bool) {
	if !g.InBounds(x, y) {
		return Air, false
	}
	next := g.cells[x][y].Next()
	g.cells[x][y] = next
	return next, true
}

// Fill sets every cell in the inclusive rectangle to t, clipped to the grid.
func (g *Grid) Fill(x0, y0, x1, y1 int, t Tile) {
	if g == nil || !t.Valid() {
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for x := max(x0, 0); x <= min(x1, g.Width-1); x++ {
		for y := max(y0, 0); y <= min(y1, g.Height-1); y++ {
			g.cells[x][y] = t
		}
	}
}

// Clear resets every cell to Air.
func (g *Grid) Clear() {
	if g == nil {
		return
	}
	for x := range g.cells {
		for y := range g.cells[x] {
			g.cells[x][y] = Air
		}
	}
}

// Count returns how many cells currently hold t.
func (g *Grid) Count(t Tile) int {
	if g == nil {
		return 0
	}
	n := 0
	for x := range g.cells {
		for _, c := range g.cells[x] {
			if c == t {
				n++
			}
		}
	}
	return n
}
