package component

// Jump tracks jump availability for the avatar.
type Jump struct {
	// Timer is how much longer a jump may keep overriding vertical velocity.
	Timer    float64
	Jumping  bool
	CanJump  bool
	Grounded bool
}

// NewJump returns the initial jump state: armed, but with an empty timer
// until the first landing.
func NewJump() *Jump {
	return &Jump{CanJump: true}
}

// Land records a bottom collision and refills the timer.
func (j *Jump) Land(maxJumpTime float64) {
	j.Grounded = true
	j.Timer = maxJumpTime
}

// Cancel ends any active jump and empties the timer.
func (j *Jump) Cancel() {
	j.Jumping = false
	j.Timer = 0
}

// JumpPhase is a derived view of Jump used for events and debug output.
type JumpPhase int

const (
	JumpIdle JumpPhase = iota
	// JumpBuffered means a jump can start as soon as the control is pressed.
	JumpBuffered
	// JumpLocked has time on the timer but the control has not been released
	// since the last jump.
	JumpLocked
	JumpActive
)

func (p JumpPhase) String() string {
	switch p {
	case JumpIdle:
		return "idle"
	case JumpBuffered:
		return "buffered"
	case JumpLocked:
		return "locked"
	case JumpActive:
		return "jumping"
	default:
		return "unknown"
	}
}

// Phase classifies the current jump state.
func (j *Jump) Phase() JumpPhase {
	switch {
	case j == nil:
		return JumpIdle
	case j.Jumping:
		return JumpActive
	case j.Timer > 0 && j.CanJump:
		return JumpBuffered
	case j.Timer > 0:
		return JumpLocked
	default:
		return JumpIdle
	}
}
