package sim

// EventKind identifies what happened during a step.
type EventKind string

const (
	EventLanded     EventKind = "landed"
	EventHeadBump   EventKind = "head_bump"
	EventWallHit    EventKind = "wall_hit"
	EventJumpPhase  EventKind = "jump_phase"
	EventPowerup    EventKind = "powerup"
	EventTileEdited EventKind = "tile_edited"
	EventRespawn    EventKind = "respawn"
)

// Event is emitted by systems for presentation and logging. X/Y hold a tile
// coordinate when the event concerns a cell.
type Event struct {
	Kind EventKind
	Tick uint64
	X, Y int
	Data any
}

const maxQueuedEvents = 1024

// EventQueue is a bounded FIFO. When full, the oldest events are dropped.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	if len(q.items) >= maxQueuedEvents {
		q.items = append(q.items[:0], q.items[len(q.items)-maxQueuedEvents+1:]...)
	}
	q.items = append(q.items, evt)
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
