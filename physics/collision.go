package physics

import (
	"github.com/lixenwraith/stomp/engine"
	"github.com/lixenwraith/stomp/vmath"
)

// Space is the read-only view the collision predicates need
// *engine.World satisfies it
type Space interface {
	Board() engine.Board
	Occupied(p engine.Point) bool
}

// OnFloor reports whether e stands on the bottom bound or on an occupied tile
func OnFloor(s Space, e *engine.Entity) bool {
	if e.Location.Y <= s.Board().Bottom {
		return true
	}
	return s.Occupied(engine.Point{X: e.Location.X, Y: e.Location.Y - 1})
}

// AtCeiling reports whether e is at the top bound or under an occupied tile
func AtCeiling(s Space, e *engine.Entity) bool {
	if e.Location.Y >= s.Board().Top {
		return true
	}
	return s.Occupied(engine.Point{X: e.Location.X, Y: e.Location.Y + 1})
}

// AtRightWall reports whether e is at the right bound or left of an occupied tile
func AtRightWall(s Space, e *engine.Entity) bool {
	if e.Location.X >= s.Board().Right {
		return true
	}
	return s.Occupied(engine.Point{X: e.Location.X + 1, Y: e.Location.Y})
}

// AtLeftWall reports whether e is at the left bound or right of an occupied tile
func AtLeftWall(s Space, e *engine.Entity) bool {
	if e.Location.X <= s.Board().Left {
		return true
	}
	return s.Occupied(engine.Point{X: e.Location.X - 1, Y: e.Location.Y})
}

// AtCorner reports whether the neighbour in the direction of dir is occupied
// A zero component degenerates to a cardinal check, a zero dir never collides,
// and a neighbour outside the board reads as free
func AtCorner(s Space, e *engine.Entity, dir engine.Vector) bool {
	sx, sy := vmath.SignF(dir.X), vmath.SignF(dir.Y)
	if sx == 0 && sy == 0 {
		return false
	}
	n := engine.Point{X: e.Location.X + sx, Y: e.Location.Y + sy}
	if !s.Board().Contains(n) {
		return false
	}
	return s.Occupied(n)
}
