package system

import (
	"math"

	"github.com/milk9111/blockjump/component"
	"github.com/milk9111/blockjump/sim"
)

// KinematicSystem applies gravity, the jump impulse and horizontal movement,
// then moves the avatar by its velocity.
type KinematicSystem struct{}

func NewKinematicSystem() *KinematicSystem { return &KinematicSystem{} }

func (s *KinematicSystem) Update(w *sim.World) {
	if w == nil || w.Body == nil || w.Jump == nil {
		return
	}
	dt := w.Delta
	if dt <= 0 {
		return
	}

	b, j, in, t := w.Body, w.Jump, w.Input, w.Tuning

	// Gravity is suspended for the whole of an active jump.
	if !j.Jumping && b.Vel.Y <= t.MaxFallSpeed {
		b.Vel.Y += t.Gravity * dt
		if b.Vel.Y > t.MaxFallSpeed {
			b.Vel.Y = t.MaxFallSpeed
		}
	}

	if in.Held(component.ControlJump) && j.Timer > 0 && ((j.CanJump && j.Grounded) || j.Jumping) {
		j.Timer = math.Max(0, j.Timer-dt)
		j.Jumping = true
		j.CanJump = false
		b.Vel.Y = -t.JumpSpeed
	} else {
		j.Jumping = false
	}

	switch {
	case in.Held(component.ControlLeft):
		b.Vel.X = -t.MoveSpeed
	case in.Held(component.ControlRight):
		b.Vel.X = t.MoveSpeed
	default:
		b.Vel.X = 0
	}

	b.LastPos = b.Pos
	b.Pos = b.Pos.Add(b.Vel.Mult(dt))
}
