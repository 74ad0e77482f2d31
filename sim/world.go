package sim

import (
	"fmt"
	"math"

	"github.com/milk9111/blockjump/component"
	"github.com/milk9111/blockjump/levels"
)

// Cell is a grid coordinate.
type Cell struct {
	X, Y int
}

// World owns every piece of state the physics step touches. Systems receive
// it by pointer; nothing is shared through package globals.
type World struct {
	Grid  *levels.Grid
	Body  *component.Body
	Jump  *component.Jump
	Power *component.PowerState
	Input *component.Input

	Tuning Tuning
	Debug  bool

	// Delta is the duration of the step currently running.
	Delta float64
	Ticks uint64
	// Elapsed is total simulated time in seconds.
	Elapsed float64

	scheduler *Scheduler
	events    EventQueue
	touched   []Cell
}

// NewWorld builds an empty grid and spawns the avatar.
func NewWorld(t Tuning, tileSize float64) (*World, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	grid, err := levels.NewGrid(t.GridWidth, t.GridHeight)
	if err != nil {
		return nil, fmt.Errorf("sim: new world: %w", err)
	}
	return &World{
		Grid:   grid,
		Body:   component.NewBody(t.SpawnX, t.SpawnY, tileSize),
		Jump:   component.NewJump(),
		Power:  &component.PowerState{},
		Input:  component.NewInput(),
		Tuning: t,
	}, nil
}

// SetScheduler installs the systems run by Step.
func (w *World) SetScheduler(s *Scheduler) {
	if w == nil {
		return
	}
	w.scheduler = s
}

// Step runs one physics step of dt seconds. Non-positive or NaN dt does
// nothing.
func (w *World) Step(dt float64) {
	if w == nil || w.scheduler == nil || math.IsNaN(dt) || dt <= 0 {
		return
	}
	w.Delta = dt
	w.scheduler.Update(w)
	w.Ticks++
	w.Elapsed += dt
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Emit queues an event stamped with the current tick.
func (w *World) Emit(evt Event) {
	if w == nil {
		return
	}
	evt.Tick = w.Ticks
	w.events.Push(evt)
}

// TouchPowerup records a power-up cell reached by a corner this step.
func (w *World) TouchPowerup(x, y int) {
	w.touched = append(w.touched, Cell{X: x, Y: y})
}

// TakeTouched returns and clears the cells recorded by TouchPowerup.
func (w *World) TakeTouched() []Cell {
	out := w.touched
	w.touched = nil
	return out
}

// SetTuning swaps physics constants at runtime. The grid size is fixed for
// the lifetime of the world, so a tuning with different dimensions is
// rejected.
func (w *World) SetTuning(t Tuning) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if t.GridWidth != w.Grid.Width || t.GridHeight != w.Grid.Height {
		return fmt.Errorf("%w: grid is %dx%d, tuning wants %dx%d", ErrInvalidTuning,
			w.Grid.Width, w.Grid.Height, t.GridWidth, t.GridHeight)
	}
	w.Tuning = t
	return nil
}

// Respawn puts the avatar back on its spawn tile with fresh jump state. A jump
// control still held from before the respawn must be released before the
// next jump.
func (w *World) Respawn() {
	w.Body.Teleport(w.Tuning.SpawnX, w.Tuning.SpawnY)
	w.Jump = component.NewJump()
	w.Jump.CanJump = !w.Input.Held(component.ControlJump)
	w.Emit(Event{Kind: EventRespawn})
}

// DebugLines describes the avatar state for overlays and snapshots.
func (w *World) DebugLines() []string {
	b := w.Body
	return []string{
		fmt.Sprintf("X velocity: %.3f", b.Vel.X),
		fmt.Sprintf("X position: %.3f", b.Pos.X),
		fmt.Sprintf("Y velocity: %.3f", b.Vel.Y),
		fmt.Sprintf("Y position: %.3f", b.Pos.Y),
		fmt.Sprintf("Grounded: %t", w.Jump.Grounded),
		fmt.Sprintf("Jumping: %t", w.Jump.Jumping),
		fmt.Sprintf("Can Jump: %t", w.Jump.CanJump),
		fmt.Sprintf("Jump timer: %.3f (%s)", w.Jump.Timer, w.Jump.Phase()),
		fmt.Sprintf("Power: %s", w.Power.Held),
		fmt.Sprintf("Tick: %d (%.2fs)", w.Ticks, w.Elapsed),
	}
}
