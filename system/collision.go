package system

import (
	"math"

	"github.com/milk9111/blockjump/component"
	"github.com/milk9111/blockjump/levels"
	"github.com/milk9111/blockjump/sim"
)

// CollisionSystem pushes the avatar out of solid tiles and the world edges
// one corner at a time, and records power-up cells the corners reach.
type CollisionSystem struct{}

func NewCollisionSystem() *CollisionSystem { return &CollisionSystem{} }

// collisionResult collects what happened during one resolve so each event is
// emitted at most once per step.
type collisionResult struct {
	wall bool
	bump bool
}

func (s *CollisionSystem) Update(w *sim.World) {
	if w == nil || w.Body == nil || w.Jump == nil || w.Grid == nil {
		return
	}

	b, j, g := w.Body, w.Jump, w.Grid
	wasGrounded := j.Grounded
	j.Grounded = false
	maxJump := w.Tuning.MaxJumpTime()

	var res collisionResult
	for _, c := range component.Corners {
		ox, oy := c.Offset(b)
		tx := int(math.Floor(b.Pos.X + ox))
		ty := int(math.Floor(b.Pos.Y + oy))

		if !g.InBounds(tx, ty) {
			resolveEdges(w, ox, oy, maxJump, &res)
			continue
		}

		tile := g.At(tx, ty)
		if levels.IsSolid(tile) {
			resolveTile(w, c, tx, ty, ox, oy, maxJump, &res)
		}
		if levels.IsPowerUp(tile) {
			w.TouchPowerup(tx, ty)
		}
	}

	if res.wall {
		w.Emit(sim.Event{Kind: sim.EventWallHit, X: int(math.Floor(b.Pos.X)), Y: int(math.Floor(b.Pos.Y))})
	}
	if res.bump {
		w.Emit(sim.Event{Kind: sim.EventHeadBump, X: int(math.Floor(b.Pos.X)), Y: int(math.Floor(b.Pos.Y))})
	}
	if j.Grounded && !wasGrounded {
		w.Emit(sim.Event{Kind: sim.EventLanded, X: int(math.Floor(b.Pos.X)), Y: int(math.Floor(b.Pos.Y))})
	}
}

// resolveTile moves a corner that ended up inside the solid tile (tx, ty) back
// out along a single axis. The axis is picked from where the corner was on the
// previous step: if it was already in the same row, it came in from the side.
func resolveTile(w *sim.World, c component.Corner, tx, ty int, ox, oy, maxJump float64, res *collisionResult) {
	b, j := w.Body, w.Jump
	ax, ay := c.Adjust()

	switch {
	case sameCell(b.LastPos.Y+oy, ty):
		b.Pos.X = float64(tx) + ax - ox
		res.wall = res.wall || b.Vel.X != 0
		b.Vel.X = 0
	case sameCell(b.LastPos.X+ox, tx):
		b.Pos.Y = float64(ty) + ay - oy
		b.Vel.Y = 0
		if c.Bottom() {
			j.Land(maxJump)
		} else {
			j.Cancel()
			res.bump = true
		}
	}
}

// resolveEdges clamps a corner that left the grid. Vertical and horizontal
// edges are handled independently. A wall hit only counts while the avatar is
// still pushing into it.
func resolveEdges(w *sim.World, ox, oy, maxJump float64, res *collisionResult) {
	b, j, g := w.Body, w.Jump, w.Grid
	width, height := float64(g.Width), float64(g.Height)

	switch {
	case b.Pos.Y+oy < 0:
		b.Pos.Y = -oy
		b.Vel.Y = 0
		j.Cancel()
		res.bump = true
	case b.Pos.Y+oy >= height:
		b.Pos.Y = height - oy
		b.Vel.Y = 0
		j.Land(maxJump)
	}

	switch {
	case b.Pos.X+ox < 0:
		b.Pos.X = -ox
		res.wall = res.wall || b.Vel.X != 0
		b.Vel.X = 0
	case b.Pos.X+ox >= width:
		b.Pos.X = width - ox
		res.wall = res.wall || b.Vel.X != 0
		b.Vel.X = 0
	}
}

// sameCell reports whether coordinate p lies inside cell idx rather than on
// its leading edge.
func sameCell(p float64, idx int) bool {
	return int(math.Floor(p)) == idx && p != float64(idx)
}
