package engine

import "time"

// Outcome is the reported game state, never acted upon by the step
type Outcome uint8

const (
	OutcomeRunning Outcome = iota
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "running"
	}
}

// EventType classifies a per-tick simulation event
type EventType uint8

const (
	EventSpawn EventType = iota
	EventStomp
	EventHit
	EventExpire
	EventCull
)

func (t EventType) String() string {
	switch t {
	case EventSpawn:
		return "spawn"
	case EventStomp:
		return "stomp"
	case EventHit:
		return "hit"
	case EventExpire:
		return "expire"
	case EventCull:
		return "cull"
	default:
		return "unknown"
	}
}

// Event is emitted by the step for driver-side effects (sound, logs)
type Event struct {
	Type   EventType
	Entity EntityID
	At     Point
}

// EntityView is a copy of an entity's renderable state
type EntityView struct {
	ID       EntityID
	Kind     Kind
	Location Point
	Offset   Point
	Velocity Vector
	Alive    bool
}

func viewOf(e *Entity) EntityView {
	return EntityView{
		ID:       e.ID,
		Kind:     e.Kind,
		Location: e.Location,
		Offset:   e.Offset,
		Velocity: e.Velocity,
		Alive:    e.Alive,
	}
}

// Snapshot is the immutable per-tick view handed to renderers and recorders
type Snapshot struct {
	Tick         uint64
	Time         time.Time
	Board        Board
	Controlled   EntityView
	Hostiles     []EntityView
	Obstacles    []Point
	HostileCount int
	Outcome      Outcome
	BlockedLeft  bool
	BlockedRight bool
	Events       []Event
}
