package system

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/blockjump/component"
	"github.com/milk9111/blockjump/sim"
)

// Autopilot drives the avatar's controls from a tengo script instead of the
// keyboard. Before each run the script sees the avatar state as globals; it
// answers by assigning the booleans left, right and jump.
type Autopilot struct {
	name     string
	compiled *tengo.Compiled
	failed   bool
}

var autopilotState = []string{"x", "y", "vx", "vy", "elapsed"}
var autopilotFlags = []string{"grounded", "jumping", "left", "right", "jump"}

// NewAutopilot compiles src. name is only used in error messages.
func NewAutopilot(name string, src []byte) (*Autopilot, error) {
	script := tengo.NewScript(src)
	for _, v := range autopilotState {
		_ = script.Add(v, 0.0)
	}
	for _, v := range autopilotFlags {
		_ = script.Add(v, false)
	}
	_ = script.Add("tick", 0)

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("autopilot: compile %s: %w", name, err)
	}
	return &Autopilot{name: name, compiled: compiled}, nil
}

func (a *Autopilot) Update(w *sim.World) {
	if a == nil || a.compiled == nil || w == nil || w.Body == nil || w.Jump == nil {
		return
	}
	if err := a.drive(w); err != nil {
		// Only the first failure in a row is logged.
		if !a.failed {
			log.Printf("autopilot: %s: %v", a.name, err)
		}
		a.failed = true
		return
	}
	a.failed = false
}

func (a *Autopilot) drive(w *sim.World) error {
	b, j := w.Body, w.Jump
	vars := []struct {
		name  string
		value any
	}{
		{"x", b.Pos.X},
		{"y", b.Pos.Y},
		{"vx", b.Vel.X},
		{"vy", b.Vel.Y},
		{"elapsed", w.Elapsed},
		{"grounded", j.Grounded},
		{"jumping", j.Jumping},
		{"tick", int64(w.Ticks)},
		{"left", w.Input.Held(component.ControlLeft)},
		{"right", w.Input.Held(component.ControlRight)},
		{"jump", w.Input.Held(component.ControlJump)},
	}
	for _, v := range vars {
		if err := a.compiled.Set(v.name, v.value); err != nil {
			return fmt.Errorf("set %s: %w", v.name, err)
		}
	}

	if err := a.compiled.Run(); err != nil {
		return err
	}

	w.Input.Set(component.ControlLeft, a.compiled.Get("left").Bool())
	w.Input.Set(component.ControlRight, a.compiled.Get("right").Bool())
	w.Input.Set(component.ControlJump, a.compiled.Get("jump").Bool())
	return nil
}
