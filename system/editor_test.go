package system

import (
	"math"
	"testing"

	"github.com/milk9111/blockjump/levels"
	"github.com/milk9111/blockjump/sim"
	"github.com/stretchr/testify/assert"
)

func TestCycleTileAtFullCycle(t *testing.T) {
	w := newTestWorld(t)
	px, py := 5*testTileSize+3, 6*testTileSize+31.9

	want := []levels.Tile{levels.Stone, levels.Rainbow, levels.Breakable, levels.JumpPower, levels.Air}
	for i, tile := range want {
		got, ok := CycleTileAt(w, px, py, testTileSize)
		assert.True(t, ok)
		assert.Equalf(t, tile, got, "click %d", i+1)
		assert.Equal(t, tile, w.Grid.At(5, 6))
	}

	events := w.Events().Drain()
	assert.Equal(t, len(want), countEvents(events, sim.EventTileEdited))
	assert.Equal(t, 5, events[0].X)
	assert.Equal(t, 6, events[0].Y)
}

func TestCycleTileAtIgnoresOutside(t *testing.T) {
	tests := []struct {
		name     string
		px, py   float64
		tileSize float64
	}{
		{"left_of_grid", -1, 10, testTileSize},
		{"below_grid", 10, 16 * testTileSize, testTileSize},
		{"right_of_grid", 32 * testTileSize, 0, testTileSize},
		{"nan", math.NaN(), 0, testTileSize},
		{"inf", 0, math.Inf(1), testTileSize},
		{"no_tile_size", 10, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			_, ok := CycleTileAt(w, tt.px, tt.py, tt.tileSize)
			assert.False(t, ok)
			assert.Zero(t, w.Events().Len())
			assert.Equal(t, w.Grid.Width*w.Grid.Height, w.Grid.Count(levels.Air))
		})
	}
}
