package replay

import (
	"github.com/lixenwraith/stomp/engine"
)

// BoardFrame is the recorded board geometry
type BoardFrame struct {
	TileSize int `msgpack:"ts"`
	Left     int `msgpack:"l"`
	Right    int `msgpack:"r"`
	Bottom   int `msgpack:"b"`
	Top      int `msgpack:"t"`
	RestX    int `msgpack:"rx"`
	RestY    int `msgpack:"ry"`
}

// EntityFrame is the recorded state of one entity
type EntityFrame struct {
	ID    uint64  `msgpack:"id"`
	Kind  uint8   `msgpack:"k"`
	X     int     `msgpack:"x"`
	Y     int     `msgpack:"y"`
	OX    int     `msgpack:"ox"`
	OY    int     `msgpack:"oy"`
	VX    float64 `msgpack:"vx"`
	VY    float64 `msgpack:"vy"`
	Alive bool    `msgpack:"a"`
}

// Frame is one recorded tick
type Frame struct {
	Tick       uint64        `msgpack:"tick"`
	Board      BoardFrame    `msgpack:"board"`
	Controlled EntityFrame   `msgpack:"ctl"`
	Hostiles   []EntityFrame `msgpack:"hst"`
	Obstacles  [][2]int      `msgpack:"obs"`
	Outcome    uint8         `msgpack:"out"`
	Events     []uint8       `msgpack:"ev,omitempty"`
}

func entityFrame(v engine.EntityView) EntityFrame {
	return EntityFrame{
		ID:    uint64(v.ID),
		Kind:  uint8(v.Kind),
		X:     v.Location.X,
		Y:     v.Location.Y,
		OX:    v.Offset.X,
		OY:    v.Offset.Y,
		VX:    v.Velocity.X,
		VY:    v.Velocity.Y,
		Alive: v.Alive,
	}
}

func (e EntityFrame) view() engine.EntityView {
	return engine.EntityView{
		ID:       engine.EntityID(e.ID),
		Kind:     engine.Kind(e.Kind),
		Location: engine.Point{X: e.X, Y: e.Y},
		Offset:   engine.Point{X: e.OX, Y: e.OY},
		Velocity: engine.Vector{X: e.VX, Y: e.VY},
		Alive:    e.Alive,
	}
}

// FromSnapshot converts a snapshot to its recorded form
func FromSnapshot(s engine.Snapshot) Frame {
	f := Frame{
		Tick: s.Tick,
		Board: BoardFrame{
			TileSize: s.Board.TileSize,
			Left:     s.Board.Left,
			Right:    s.Board.Right,
			Bottom:   s.Board.Bottom,
			Top:      s.Board.Top,
			RestX:    s.Board.Rest.X,
			RestY:    s.Board.Rest.Y,
		},
		Controlled: entityFrame(s.Controlled),
		Hostiles:   make([]EntityFrame, len(s.Hostiles)),
		Obstacles:  make([][2]int, len(s.Obstacles)),
		Outcome:    uint8(s.Outcome),
	}
	for i, h := range s.Hostiles {
		f.Hostiles[i] = entityFrame(h)
	}
	for i, p := range s.Obstacles {
		f.Obstacles[i] = [2]int{p.X, p.Y}
	}
	for _, ev := range s.Events {
		f.Events = append(f.Events, uint8(ev.Type))
	}
	return f
}

// BoardGeometry returns the recorded board
func (f Frame) BoardGeometry() engine.Board {
	return engine.Board{
		TileSize: f.Board.TileSize,
		Left:     f.Board.Left,
		Right:    f.Board.Right,
		Bottom:   f.Board.Bottom,
		Top:      f.Board.Top,
		Rest:     engine.Point{X: f.Board.RestX, Y: f.Board.RestY},
	}
}

// Snapshot rebuilds a renderable snapshot
// Events carry their type only, entity references are not recorded
func (f Frame) Snapshot() engine.Snapshot {
	s := engine.Snapshot{
		Tick:         f.Tick,
		Board:        f.BoardGeometry(),
		Controlled:   f.Controlled.view(),
		Hostiles:     make([]engine.EntityView, len(f.Hostiles)),
		Obstacles:    make([]engine.Point, len(f.Obstacles)),
		HostileCount: len(f.Hostiles),
		Outcome:      engine.Outcome(f.Outcome),
	}
	for i, h := range f.Hostiles {
		s.Hostiles[i] = h.view()
	}
	for i, p := range f.Obstacles {
		s.Obstacles[i] = engine.Point{X: p[0], Y: p[1]}
	}
	for _, t := range f.Events {
		s.Events = append(s.Events, engine.Event{Type: engine.EventType(t)})
	}
	return s
}
