package system

import (
	"github.com/lixenwraith/stomp/engine"
	"github.com/lixenwraith/stomp/physics"
	"github.com/lixenwraith/stomp/status"
)

// updateHostiles runs the hostile behaviour in store order
func updateHostiles(w *engine.World) {
	b := w.Board()
	for _, h := range w.Store.Hostiles() {
		if !h.Alive {
			// Dead hostiles drop a row per tick outside the grid
			if h.Location.Y > b.Bottom {
				h.Location.Y--
			}
			continue
		}

		if h.Location.Y == b.Bottom && (h.Location.X == b.Left || h.Location.X == b.Right) {
			h.Alive = false
			w.Status.Ints.Get(status.KeyHostileExpired).Add(1)
			w.Emit(engine.EventExpire, h)
			continue
		}

		if h.Velocity.X >= 0 && physics.AtRightWall(w, h) {
			h.Velocity.X = -w.Config.CreepSpeed
		} else if h.Velocity.X <= 0 && physics.AtLeftWall(w, h) {
			h.Velocity.X = w.Config.CreepSpeed
		}

		respondVertical(w, h)
		lockCorner(w, h)
	}
}

// integrateAll moves the controlled entity first, then every live hostile
func integrateAll(w *engine.World) {
	physics.Integrate(w, w.Controlled())
	for _, h := range w.Store.Hostiles() {
		if h.Alive {
			physics.Integrate(w, h)
		}
	}
}
