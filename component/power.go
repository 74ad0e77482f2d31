package component

import "github.com/milk9111/blockjump/levels"

// PowerState holds the single power the avatar currently carries.
type PowerState struct {
	Held levels.Power
}

// Grant replaces the held power.
func (p *PowerState) Grant(power levels.Power) {
	if p == nil {
		return
	}
	p.Held = power
}
