package physics

import (
	"github.com/lixenwraith/stomp/engine"
	"github.com/lixenwraith/stomp/vmath"
)

// Axis selects velocity components for Stop
type Axis uint8

const (
	AxisHorizontal Axis = 1 << iota
	AxisVertical
	AxisBoth = AxisHorizontal | AxisVertical
)

// Stop zeroes velocity on the given axes and recenters the matching offsets
func Stop(e *engine.Entity, axes Axis, rest engine.Point) {
	if axes&AxisHorizontal != 0 {
		e.Velocity.X = 0
		e.Offset.X = rest.X
	}
	if axes&AxisVertical != 0 {
		e.Velocity.Y = 0
		e.Offset.Y = rest.Y
	}
}

// Integrate advances e by one tick of velocity
// The offset moves by round(v*TileSize) per axis and rolls over into
// neighbouring tiles, so offsets stay in [0, TileSize). A rollover that would
// leave the board pins the tile to the edge and clamps the offset to that
// edge of the tile. The grid slot follows the entity
func Integrate(w *engine.World, e *engine.Entity) {
	b := w.Board()
	ts := b.TileSize

	dx, offX := vmath.FloorDivMod(e.Offset.X+vmath.Round(e.Velocity.X*float64(ts)), ts)
	dy, offY := vmath.FloorDivMod(e.Offset.Y+vmath.Round(e.Velocity.Y*float64(ts)), ts)
	loc := engine.Point{X: e.Location.X + dx, Y: e.Location.Y + dy}

	switch {
	case loc.X < b.Left:
		loc.X, offX = b.Left, 0
	case loc.X > b.Right:
		loc.X, offX = b.Right, ts-1
	}
	switch {
	case loc.Y < b.Bottom:
		loc.Y, offY = b.Bottom, 0
	case loc.Y > b.Top:
		loc.Y, offY = b.Top, ts-1
	}

	if loc != e.Location {
		w.Grid.ClearIf(e.Location, e.ID)
	}
	e.Location = loc
	e.Offset = engine.Point{X: offX, Y: offY}
	w.Grid.Set(loc, e.ID)
}
