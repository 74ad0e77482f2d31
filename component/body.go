package component

import "github.com/jakecoffman/cp"

// Hitbox proportions relative to the tile size. Historical values.
const (
	WidthRatio  = 0.4635
	HeightRatio = 0.75
)

// Body is the avatar's kinematic state. Positions are in tile units and mark
// the centre of the hitbox; velocities are in tiles per second. Y grows
// downward.
type Body struct {
	Pos     cp.Vector
	LastPos cp.Vector
	Vel     cp.Vector

	HalfWidth  float64
	HalfHeight float64

	// Width/Height are the on-screen pixel size for the current tile size.
	Width    float64
	Height   float64
	TileSize float64
}

// NewBody places a body at (x, y) sized for tileSize.
func NewBody(x, y, tileSize float64) *Body {
	b := &Body{
		Pos:     cp.Vector{X: x, Y: y},
		LastPos: cp.Vector{X: x, Y: y},
	}
	b.Resize(tileSize)
	return b
}

// Resize recomputes pixel size and half-extents for a new tile size.
func (b *Body) Resize(tileSize float64) {
	if b == nil {
		return
	}
	if tileSize <= 0 {
		b.TileSize = 0
		b.Width = 0
		b.Height = 0
		b.HalfWidth = WidthRatio / 2
		b.HalfHeight = HeightRatio / 2
		return
	}
	b.TileSize = tileSize
	b.Width = tileSize * WidthRatio
	b.Height = tileSize * HeightRatio
	b.HalfWidth = b.Width / (tileSize * 2)
	b.HalfHeight = b.Height / (tileSize * 2)
}

// Bounds returns the hitbox in tile units. With Y pointing down, B is the top
// edge and T the bottom edge.
func (b *Body) Bounds() cp.BB {
	return cp.NewBBForExtents(b.Pos, b.HalfWidth, b.HalfHeight)
}

// Teleport moves the body and forgets the previous position and velocity.
func (b *Body) Teleport(x, y float64) {
	b.Pos = cp.Vector{X: x, Y: y}
	b.LastPos = b.Pos
	b.Vel = cp.Vector{}
}

// Corner identifies one corner of the hitbox.
type Corner int

const (
	CornerBottomRight Corner = iota
	CornerTopRight
	CornerTopLeft
	CornerBottomLeft
)

// Corners lists the corners in collision resolution order.
var Corners = [4]Corner{CornerBottomRight, CornerTopRight, CornerTopLeft, CornerBottomLeft}

func (c Corner) String() string {
	switch c {
	case CornerBottomRight:
		return "bottom_right"
	case CornerTopRight:
		return "top_right"
	case CornerTopLeft:
		return "top_left"
	case CornerBottomLeft:
		return "bottom_left"
	default:
		return "unknown"
	}
}

// Bottom reports whether c is on the lower edge of the hitbox.
func (c Corner) Bottom() bool {
	return c == CornerBottomRight || c == CornerBottomLeft
}

// Offset returns the corner's displacement from the body centre.
func (c Corner) Offset(b *Body) (float64, float64) {
	ox, oy := b.HalfWidth, b.HalfHeight
	switch c {
	case CornerTopRight:
		oy = -oy
	case CornerTopLeft:
		ox, oy = -ox, -oy
	case CornerBottomLeft:
		ox = -ox
	}
	return ox, oy
}

// Adjust returns the cell-edge adjustment used when snapping a corner out of
// a tile: a tile's coordinate is its top-left, so corners on the left or top
// edge snap to coordinate+1.
func (c Corner) Adjust() (float64, float64) {
	switch c {
	case CornerTopRight:
		return 0, 1
	case CornerTopLeft:
		return 1, 1
	case CornerBottomLeft:
		return 1, 0
	default:
		return 0, 0
	}
}
