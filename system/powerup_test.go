package system

import (
	"testing"

	"github.com/milk9111/blockjump/component"
	"github.com/milk9111/blockjump/levels"
	"github.com/milk9111/blockjump/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectPowerup(t *testing.T) {
	tests := []struct {
		name  string
		tile  levels.Tile
		x, y  int
		want  bool
		power levels.Power
	}{
		{"jump_power", levels.JumpPower, 2, 3, true, levels.PowerJump},
		{"stone", levels.Stone, 2, 3, false, levels.PowerNone},
		{"air", levels.Air, 2, 3, false, levels.PowerNone},
		{"out_of_bounds", levels.JumpPower, -1, 3, false, levels.PowerNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := levels.NewGrid(8, 8)
			require.NoError(t, err)
			g.Set(2, 3, tt.tile)
			p := &component.PowerState{}

			assert.Equal(t, tt.want, CollectPowerup(g, tt.x, tt.y, p))
			assert.Equal(t, tt.power, p.Held)
			if tt.want {
				assert.Equal(t, levels.Air, g.At(tt.x, tt.y))
				assert.False(t, CollectPowerup(g, tt.x, tt.y, p), "second pickup")
			}
		})
	}

	assert.False(t, CollectPowerup(nil, 0, 0, &component.PowerState{}))
}

func TestPowerupPickedUpOnce(t *testing.T) {
	w := newTestWorld(t)
	require.True(t, w.Grid.Set(5, 5, levels.JumpPower))

	w.Step(testStep)

	assert.Equal(t, levels.PowerJump, w.Power.Held)
	assert.Equal(t, levels.Air, w.Grid.At(5, 5))
	assert.Zero(t, w.Grid.Count(levels.JumpPower))

	for i := 0; i < 50; i++ {
		w.Step(testStep)
	}
	events := w.Events().Drain()
	require.Equal(t, 1, countEvents(events, sim.EventPowerup))
	for _, evt := range events {
		if evt.Kind == sim.EventPowerup {
			assert.Equal(t, 5, evt.X)
			assert.Equal(t, 5, evt.Y)
			assert.Equal(t, levels.PowerJump, evt.Data)
		}
	}
}

func TestPowerupTileIsNotSolid(t *testing.T) {
	w := newTestWorld(t)
	w.Grid.Fill(4, 6, 6, 6, levels.JumpPower)

	for i := 0; i < 200; i++ {
		w.Step(testStep)
	}
	assert.Greater(t, w.Body.Pos.Y, 6.0, "falls through power-up tiles")
	assert.Equal(t, levels.PowerJump, w.Power.Held)
}
