package system

import (
	"math"

	"github.com/lixenwraith/stomp/engine"
	"github.com/lixenwraith/stomp/physics"
	"github.com/lixenwraith/stomp/status"
)

// respondControlled applies wall, ceiling, floor and corner responses to the
// controlled entity
func respondControlled(w *engine.World, c *engine.Entity) {
	rest := w.Board().Rest

	if c.Velocity.X == 0 {
		c.Offset.X = rest.X
	}

	if (c.Velocity.X >= 0 && physics.AtRightWall(w, c)) || (c.Velocity.X <= 0 && physics.AtLeftWall(w, c)) {
		// Lockout lands on the side opposite the motion
		if c.Velocity.X < 0 {
			w.BlockedRight = true
		} else if c.Velocity.X > 0 {
			w.BlockedLeft = true
		}
		physics.Stop(c, physics.AxisHorizontal, rest)
	}

	respondVertical(w, c)
	lockCorner(w, c)
}

// respondVertical stops at ceilings and floors, otherwise applies gravity
func respondVertical(w *engine.World, e *engine.Entity) {
	rest := w.Board().Rest

	if e.Velocity.Y >= 0 && physics.AtCeiling(w, e) {
		physics.Stop(e, physics.AxisVertical, rest)
	}

	if e.Velocity.Y <= 0 && physics.OnFloor(w, e) {
		physics.Stop(e, physics.AxisVertical, rest)
		return
	}
	e.Velocity.Y = math.Max(e.Velocity.Y-w.Config.Gravity, w.Config.TerminalFall)
}

// lockCorner keeps a moving entity from slipping diagonally past a corner
// The dominant axis stops, ties stop vertically
func lockCorner(w *engine.World, e *engine.Entity) {
	v := e.Velocity
	if v.IsZero() || !physics.AtCorner(w, e, v) {
		return
	}
	if math.Abs(v.X) > math.Abs(v.Y) {
		physics.Stop(e, physics.AxisHorizontal, w.Board().Rest)
	} else {
		physics.Stop(e, physics.AxisVertical, w.Board().Rest)
	}
}

// resolveContact kills a hostile stood upon, otherwise lets an adjacent live
// hostile kill the controlled entity
func resolveContact(w *engine.World, c *engine.Entity) {
	b := w.Board()
	loc := c.Location

	below := engine.Point{X: loc.X, Y: loc.Y - 1}
	if h := w.EntityAt(below); h != nil && h.Kind == engine.KindHostile {
		h.Alive = false
		w.Grid.Clear(below)
		w.Status.Ints.Get(status.KeyHostileStomped).Add(1)
		w.Emit(engine.EventStomp, h)
		return
	}

	if !c.Alive {
		return
	}
	if (loc.Y != b.Top && liveHostileAt(w, engine.Point{X: loc.X, Y: loc.Y + 1})) ||
		(loc.X != b.Left && liveHostileAt(w, engine.Point{X: loc.X - 1, Y: loc.Y})) ||
		(loc.X != b.Right && liveHostileAt(w, engine.Point{X: loc.X + 1, Y: loc.Y})) {
		c.Alive = false
		w.Emit(engine.EventHit, c)
	}
}

func liveHostileAt(w *engine.World, p engine.Point) bool {
	h := w.EntityAt(p)
	return h != nil && h.Kind == engine.KindHostile && h.Alive
}
