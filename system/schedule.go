package system

import "github.com/milk9111/blockjump/sim"

// NewPhysicsScheduler wires one physics step in resolution order. pre systems
// run ahead of everything else and are where input producers such as the
// autopilot go.
func NewPhysicsScheduler(pre ...sim.System) *sim.Scheduler {
	jump := NewJumpSystem()

	s := sim.NewScheduler(
		sim.SystemFunc(jump.HandleInput),
		NewKinematicSystem(),
		NewCollisionSystem(),
		sim.SystemFunc(jump.OnPhysics),
		NewPowerupSystem(),
	)
	for i := len(pre) - 1; i >= 0; i-- {
		s.Prepend(pre[i])
	}
	return s
}
