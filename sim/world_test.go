package sim

import (
	"errors"
	"math"
	"testing"

	"github.com/milk9111/blockjump/component"
	"github.com/milk9111/blockjump/levels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorldRejectsBadTuning(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Tuning)
		grid   bool
	}{
		{"zero_width", func(tu *Tuning) { tu.GridWidth = 0 }, true},
		{"negative_height", func(tu *Tuning) { tu.GridHeight = -16 }, true},
		{"zero_jump_speed", func(tu *Tuning) { tu.JumpSpeed = 0 }, false},
		{"nan_gravity", func(tu *Tuning) { tu.Gravity = math.NaN() }, false},
		{"spawn_outside", func(tu *Tuning) { tu.SpawnX = 40 }, false},
		{"no_physics_rate", func(tu *Tuning) { tu.PhysicsRate = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tu := DefaultTuning()
			tt.mutate(&tu)
			_, err := NewWorld(tu, 32)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidTuning))
			assert.Equal(t, tt.grid, errors.Is(err, levels.ErrInvalidDimensions))
		})
	}
}

func TestNewWorldSpawn(t *testing.T) {
	w, err := NewWorld(DefaultTuning(), 32)
	require.NoError(t, err)

	assert.Equal(t, 32, w.Grid.Width)
	assert.Equal(t, 16, w.Grid.Height)
	assert.Equal(t, 5.0, w.Body.Pos.X)
	assert.Equal(t, 5.0, w.Body.Pos.Y)
	assert.True(t, w.Jump.CanJump)
	assert.Zero(t, w.Jump.Timer)
	assert.Equal(t, levels.PowerNone, w.Power.Held)
	assert.InDelta(t, 1.0/3, w.Tuning.MaxJumpTime(), 1e-12)
}

func TestWorldStepIgnoresDegenerateDelta(t *testing.T) {
	w, err := NewWorld(DefaultTuning(), 32)
	require.NoError(t, err)

	calls := 0
	w.SetScheduler(NewScheduler(SystemFunc(func(*World) { calls++ })))

	for _, dt := range []float64{0, -0.01, math.NaN()} {
		w.Step(dt)
	}
	assert.Zero(t, calls)
	assert.Zero(t, w.Ticks)

	w.Step(0.002)
	assert.Equal(t, 1, calls)
	assert.Equal(t, uint64(1), w.Ticks)
	assert.InDelta(t, 0.002, w.Elapsed, 1e-12)
	assert.Equal(t, 0.002, w.Delta)
}

func TestSchedulerOrder(t *testing.T) {
	var order []string
	record := func(name string) System {
		return SystemFunc(func(*World) { order = append(order, name) })
	}

	s := NewScheduler(record("integrate"), nil, record("collide"))
	s.Prepend(record("input"))
	s.Add(record("powerup"))
	s.Update(nil)

	assert.Equal(t, []string{"input", "integrate", "collide", "powerup"}, order)
}

func TestSetTuningKeepsGridSize(t *testing.T) {
	w, err := NewWorld(DefaultTuning(), 32)
	require.NoError(t, err)

	tu := DefaultTuning()
	tu.Gravity = 12
	require.NoError(t, w.SetTuning(tu))
	assert.Equal(t, 12.0, w.Tuning.Gravity)

	tu.GridWidth = 64
	err = w.SetTuning(tu)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTuning))
	assert.Equal(t, 12.0, w.Tuning.Gravity, "rejected tuning leaves the old one in place")
}

func TestEventQueueBounded(t *testing.T) {
	w, err := NewWorld(DefaultTuning(), 32)
	require.NoError(t, err)

	for i := 0; i < maxQueuedEvents+10; i++ {
		w.Emit(Event{Kind: EventWallHit, X: i})
	}
	assert.Equal(t, maxQueuedEvents, w.Events().Len())

	events := w.Events().Drain()
	require.Len(t, events, maxQueuedEvents)
	assert.Equal(t, 10, events[0].X, "oldest events are dropped first")
	assert.Nil(t, w.Events().Drain())
}

func TestRespawnAndTouched(t *testing.T) {
	w, err := NewWorld(DefaultTuning(), 32)
	require.NoError(t, err)

	w.Body.Teleport(20, 3)
	w.Body.Vel.Y = 4
	w.Jump.Jumping = true
	w.Respawn()
	assert.Equal(t, 5.0, w.Body.Pos.X)
	assert.Equal(t, 5.0, w.Body.Pos.Y)
	assert.False(t, w.Jump.Jumping)
	assert.True(t, w.Jump.CanJump)

	w.Input.Set(component.ControlJump, true)
	w.Respawn()
	assert.False(t, w.Jump.CanJump, "a jump held through respawn needs a release first")

	w.TouchPowerup(1, 2)
	assert.Equal(t, []Cell{{X: 1, Y: 2}}, w.TakeTouched())
	assert.Empty(t, w.TakeTouched())

	assert.Len(t, w.DebugLines(), 10)
}
