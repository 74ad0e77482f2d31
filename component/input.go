package component

// Control is a logical input the simulation reacts to.
type Control int

const (
	ControlLeft Control = iota
	ControlRight
	ControlJump
	ControlDebug
	numControls
)

func (c Control) String() string {
	switch c {
	case ControlLeft:
		return "left"
	case ControlRight:
		return "right"
	case ControlJump:
		return "jump"
	case ControlDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// Input holds held state per control plus press/release edges that stay
// latched until a system consumes them. Edges survive between physics steps so
// a quick tap that starts and ends inside one frame is still observed.
type Input struct {
	held     [numControls]bool
	pressed  [numControls]bool
	released [numControls]bool
}

// NewInput returns an input with nothing held.
func NewInput() *Input {
	return &Input{}
}

// Set records the held state of c, latching an edge when it changes.
func (i *Input) Set(c Control, held bool) {
	if i == nil || c < 0 || c >= numControls {
		return
	}
	if i.held[c] == held {
		return
	}
	i.held[c] = held
	if held {
		i.pressed[c] = true
	} else {
		i.released[c] = true
	}
}

// Held reports whether c is currently held.
func (i *Input) Held(c Control) bool {
	if i == nil || c < 0 || c >= numControls {
		return false
	}
	return i.held[c]
}

// TakePressed reports and clears a latched press of c.
func (i *Input) TakePressed(c Control) bool {
	if i == nil || c < 0 || c >= numControls {
		return false
	}
	v := i.pressed[c]
	i.pressed[c] = false
	return v
}

// TakeReleased reports and clears a latched release of c.
func (i *Input) TakeReleased(c Control) bool {
	if i == nil || c < 0 || c >= numControls {
		return false
	}
	v := i.released[c]
	i.released[c] = false
	return v
}

// Reset releases every control and drops pending edges.
func (i *Input) Reset() {
	if i == nil {
		return
	}
	*i = Input{}
}
