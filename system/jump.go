package system

import (
	"log"

	"github.com/milk9111/blockjump/component"
	"github.com/milk9111/blockjump/sim"
)

// JumpTransition is the payload of sim.EventJumpPhase.
type JumpTransition struct {
	From component.JumpPhase
	To   component.JumpPhase
}

// JumpSystem owns the parts of the jump lifecycle that are not integration or
// collision: reacting to the jump control being let go, and reporting phase
// changes. It is split into two stages that run on either side of physics.
type JumpSystem struct {
	phase component.JumpPhase
}

func NewJumpSystem() *JumpSystem { return &JumpSystem{} }

// HandleInput consumes the latched control edges. Letting go of jump re-arms
// it, and ends the jump outright if the avatar is still rising.
func (s *JumpSystem) HandleInput(w *sim.World) {
	if w == nil || w.Jump == nil || w.Body == nil {
		return
	}

	if w.Input.TakePressed(component.ControlDebug) {
		w.Debug = !w.Debug
		log.Printf("debug mode: %t", w.Debug)
	}

	if !w.Input.TakeReleased(component.ControlJump) {
		return
	}
	j := w.Jump
	j.CanJump = true
	if w.Body.Vel.Y <= 0 {
		w.Body.Vel.Y = 0
		j.Cancel()
	}
}

// OnPhysics reports a phase change once collision has settled the step.
func (s *JumpSystem) OnPhysics(w *sim.World) {
	if w == nil || w.Jump == nil {
		return
	}
	phase := w.Jump.Phase()
	if phase == s.phase {
		return
	}
	prev := s.phase
	s.phase = phase
	w.Emit(sim.Event{Kind: sim.EventJumpPhase, Data: JumpTransition{From: prev, To: phase}})
	if w.Debug {
		log.Printf("jump: %s -> %s timer=%.3f vy=%.3f", prev, phase, w.Jump.Timer, w.Body.Vel.Y)
	}
}

// Phase returns the phase seen at the end of the last step.
func (s *JumpSystem) Phase() component.JumpPhase {
	return s.phase
}
