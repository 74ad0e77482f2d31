package system

import (
	"log"

	"github.com/milk9111/blockjump/component"
	"github.com/milk9111/blockjump/levels"
	"github.com/milk9111/blockjump/sim"
)

// CollectPowerup takes the power-up at (x, y), if there is one, and clears the
// cell. It returns whether anything was collected.
func CollectPowerup(g *levels.Grid, x, y int, p *component.PowerState) bool {
	if g == nil || p == nil {
		return false
	}
	tile := g.At(x, y)
	if !levels.IsPowerUp(tile) {
		return false
	}
	p.Grant(levels.TileToPower(tile))
	g.Set(x, y, levels.Air)
	return true
}

// PowerupSystem collects the power-up cells the collision pass touched.
type PowerupSystem struct{}

func NewPowerupSystem() *PowerupSystem { return &PowerupSystem{} }

func (s *PowerupSystem) Update(w *sim.World) {
	if w == nil {
		return
	}
	for _, cell := range w.TakeTouched() {
		if !CollectPowerup(w.Grid, cell.X, cell.Y, w.Power) {
			continue
		}
		w.Emit(sim.Event{Kind: sim.EventPowerup, X: cell.X, Y: cell.Y, Data: w.Power.Held})
		if w.Debug {
			log.Printf("powerup: collected %s at (%d, %d)", w.Power.Held, cell.X, cell.Y)
		}
	}
}
