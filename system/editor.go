package system

import (
	"log"
	"math"

	"github.com/milk9111/blockjump/levels"
	"github.com/milk9111/blockjump/sim"
)

// CycleTileAt advances the tile under the pixel coordinate (px, py) to the
// next tile type. Clicks outside the grid are logged and ignored.
func CycleTileAt(w *sim.World, px, py, tileSize float64) (levels.Tile, bool) {
	if w == nil || w.Grid == nil || tileSize <= 0 {
		return levels.Air, false
	}
	if !finite(px) || !finite(py) {
		return levels.Air, false
	}

	x := int(math.Floor(px / tileSize))
	y := int(math.Floor(py / tileSize))
	tile, ok := w.Grid.Cycle(x, y)
	if !ok {
		log.Printf("editor: click (%.0f, %.0f) is outside the %dx%d grid", px, py, w.Grid.Width, w.Grid.Height)
		return levels.Air, false
	}
	w.Emit(sim.Event{Kind: sim.EventTileEdited, X: x, Y: y, Data: tile})
	if w.Debug {
		log.Printf("editor: (%d, %d) -> %s", x, y, tile)
	}
	return tile, true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
