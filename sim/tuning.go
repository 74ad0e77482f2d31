package sim

import (
	"errors"
	"fmt"
	"math"

	"github.com/milk9111/blockjump/levels"
)

var ErrInvalidTuning = errors.New("sim: invalid tuning")

// Tuning holds the physics constants. Distances are in tiles, times in
// seconds.
type Tuning struct {
	Gravity      float64 // tiles/s^2
	MaxFallSpeed float64 // tiles/s
	MoveSpeed    float64 // tiles/s
	JumpSpeed    float64 // tiles/s
	// JumpHeight is nominal; gravity only starts after the jump timer runs
	// out so the real apex is higher.
	JumpHeight float64

	PhysicsRate  float64 // steps per second
	MaxFrameTime float64 // cap on elapsed time fed to the accumulator

	GridWidth  int
	GridHeight int
	SpawnX     float64
	SpawnY     float64
}

// DefaultTuning returns the stock demo constants.
func DefaultTuning() Tuning {
	return Tuning{
		Gravity:      30,
		MaxFallSpeed: 9,
		MoveSpeed:    3.5,
		JumpSpeed:    9,
		JumpHeight:   3,
		PhysicsRate:  500,
		MaxFrameTime: 0.25,
		GridWidth:    levels.DefaultWidth,
		GridHeight:   levels.DefaultHeight,
		SpawnX:       5,
		SpawnY:       5,
	}
}

// MaxJumpTime is how long a held jump keeps overriding vertical velocity.
func (t Tuning) MaxJumpTime() float64 {
	if t.JumpSpeed <= 0 {
		return 0
	}
	return t.JumpHeight / t.JumpSpeed
}

// Step is the fixed physics timestep.
func (t Tuning) Step() float64 {
	if t.PhysicsRate <= 0 {
		return 0
	}
	return 1 / t.PhysicsRate
}

// Validate rejects constants the simulation cannot run with.
func (t Tuning) Validate() error {
	fields := []struct {
		name string
		v    float64
		ok   bool
	}{
		{"gravity", t.Gravity, t.Gravity >= 0},
		{"max_fall_speed", t.MaxFallSpeed, t.MaxFallSpeed > 0},
		{"move_speed", t.MoveSpeed, t.MoveSpeed >= 0},
		{"jump_speed", t.JumpSpeed, t.JumpSpeed > 0},
		{"jump_height", t.JumpHeight, t.JumpHeight >= 0},
		{"physics_rate", t.PhysicsRate, t.PhysicsRate > 0},
		{"max_frame_time", t.MaxFrameTime, t.MaxFrameTime >= 0},
		{"spawn_x", t.SpawnX, t.SpawnX >= 0 && t.SpawnX <= float64(t.GridWidth)},
		{"spawn_y", t.SpawnY, t.SpawnY >= 0 && t.SpawnY <= float64(t.GridHeight)},
	}
	if t.GridWidth <= 0 || t.GridHeight <= 0 {
		return fmt.Errorf("%w: grid %dx%d: %w", ErrInvalidTuning, t.GridWidth, t.GridHeight, levels.ErrInvalidDimensions)
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) || !f.ok {
			return fmt.Errorf("%w: %s = %v", ErrInvalidTuning, f.name, f.v)
		}
	}
	return nil
}
