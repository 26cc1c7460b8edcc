package engine

import (
	"fmt"
	"time"

	"github.com/lixenwraith/stomp/constant"
	"github.com/lixenwraith/stomp/status"
	"github.com/lixenwraith/stomp/vmath"
)

// Config carries every tunable of a world
// Board geometry lives here so no caller hard-codes it
type Config struct {
	Board           Board
	Gravity         float64
	TerminalFall    float64
	CreepSpeed      float64
	SpawnInterval   time.Duration
	Start           Point
	InitialHostiles []Point
	Seed            uint64
}

// DefaultConfig returns the stock tunables with hostiles in both top corners
func DefaultConfig() Config {
	b := DefaultBoard()
	left, right := b.TopCorners()
	return Config{
		Board:           b,
		Gravity:         constant.Gravity,
		TerminalFall:    constant.TerminalFall,
		CreepSpeed:      constant.HostileCreepSpeed,
		SpawnInterval:   constant.SpawnInterval,
		Start:           Point{X: constant.PlayerStartX, Y: constant.PlayerStartY},
		InitialHostiles: []Point{left, right},
		Seed:            1,
	}
}

// World is the whole mutable simulation state
// Owned by a single goroutine, passed explicitly to the step
type World struct {
	Config Config
	Grid   *Grid
	Store  *EntityStore
	Clock  TimeProvider
	Rand   *vmath.FastRand
	Status *status.Registry

	// Opposite-side lockouts consumed by the next key release
	BlockedLeft  bool
	BlockedRight bool

	// LastSpawn starts at the zero time so the first tick spawns
	LastSpawn time.Time
	Tick      uint64

	events []Event
}

// NewWorld builds a world from obstacles and the configured start positions
// Later placements overwrite earlier ones in the grid
func NewWorld(cfg Config, obstacles []Point, clock TimeProvider) (*World, error) {
	if err := cfg.Board.Validate(); err != nil {
		return nil, err
	}
	if !cfg.Board.Contains(cfg.Start) {
		return nil, fmt.Errorf("%w: start (%d,%d) outside board", ErrInvalidBoard, cfg.Start.X, cfg.Start.Y)
	}
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}

	w := &World{
		Config: cfg,
		Grid:   NewGrid(cfg.Board),
		Store:  NewEntityStore(),
		Clock:  clock,
		Rand:   vmath.NewFastRand(cfg.Seed),
		Status: status.NewRegistry(),
	}

	rest := cfg.Board.Rest
	for _, p := range obstacles {
		if !cfg.Board.Contains(p) {
			return nil, fmt.Errorf("%w: obstacle (%d,%d) outside board", ErrInvalidBoard, p.X, p.Y)
		}
		o := w.Store.AddObstacle(p, rest)
		w.Grid.Set(p, o.ID)
	}

	c := w.Store.SetControlled(cfg.Start, rest)
	w.Grid.Set(c.Location, c.ID)

	for _, p := range cfg.InitialHostiles {
		if !cfg.Board.Contains(p) {
			continue
		}
		w.SpawnHostile(p)
	}

	w.Status.Bools.Get(status.KeyPlayerAlive).Store(true)
	return w, nil
}

// Board returns the world geometry
func (w *World) Board() Board { return w.Config.Board }

// Controlled returns the controlled entity
func (w *World) Controlled() *Entity { return w.Store.Controlled() }

// EntityAt resolves the occupant of p, nil when empty or out of bounds
func (w *World) EntityAt(p Point) *Entity {
	return w.Store.Resolve(w.Grid.Occupant(p))
}

// Occupied reports whether p resolves to a stored entity, regardless of kind
func (w *World) Occupied(p Point) bool {
	return w.EntityAt(p) != nil
}

// SpawnHostile places a stationary live hostile at the rest offset of loc
func (w *World) SpawnHostile(loc Point) *Entity {
	h := w.Store.AddHostile(loc, w.Config.Board.Rest)
	w.Grid.Set(loc, h.ID)
	w.Status.Ints.Get(status.KeyHostilesLive).Store(int64(w.Store.HostileCount()))
	return h
}

// Emit records an event for the current tick
func (w *World) Emit(t EventType, e *Entity) {
	w.events = append(w.events, Event{Type: t, Entity: e.ID, At: e.Location})
}

// DrainEvents returns and clears the pending events
func (w *World) DrainEvents() []Event {
	if len(w.events) == 0 {
		return nil
	}
	out := make([]Event, len(w.events))
	copy(out, w.events)
	w.events = w.events[:0]
	return out
}

// Outcome reports the game state, a loss takes precedence over a win
func (w *World) Outcome() Outcome {
	if !w.Store.Controlled().Alive {
		return OutcomeLost
	}
	if w.Store.HostileCount() == 0 {
		return OutcomeWon
	}
	return OutcomeRunning
}

// Snapshot copies the renderable state and drains pending events
func (w *World) Snapshot() Snapshot {
	hostiles := w.Store.Hostiles()
	views := make([]EntityView, len(hostiles))
	for i, h := range hostiles {
		views[i] = viewOf(h)
	}

	obstacles := w.Store.Obstacles()
	points := make([]Point, len(obstacles))
	for i, o := range obstacles {
		points[i] = o.Location
	}

	return Snapshot{
		Tick:         w.Tick,
		Time:         w.Clock.Now(),
		Board:        w.Config.Board,
		Controlled:   viewOf(w.Store.Controlled()),
		Hostiles:     views,
		Obstacles:    points,
		HostileCount: len(hostiles),
		Outcome:      w.Outcome(),
		BlockedLeft:  w.BlockedLeft,
		BlockedRight: w.BlockedRight,
		Events:       w.DrainEvents(),
	}
}
