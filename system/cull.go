package system

import (
	"github.com/lixenwraith/stomp/engine"
	"github.com/lixenwraith/stomp/status"
)

// cullHostiles removes dead hostiles that reached the bottom row
// Grid slots still referencing a removed hostile are cleared
func cullHostiles(w *engine.World) {
	bottom := w.Board().Bottom
	removed := w.Store.Compact(func(h *engine.Entity) bool {
		return !h.Alive && h.Location.Y <= bottom
	})
	if len(removed) == 0 {
		return
	}

	for _, h := range removed {
		w.Grid.Purge(h.ID)
		w.Emit(engine.EventCull, h)
	}
	w.Status.Ints.Get(status.KeyHostileCulled).Add(int64(len(removed)))
}
