package system

import (
	"github.com/lixenwraith/stomp/engine"
	"github.com/lixenwraith/stomp/status"
)

// Step advances the world by exactly one tick and returns its snapshot
// Phase order is fixed: controlled response, contact, spawn, hostile
// behaviour, integration, cull. Outcomes are reported, never acted upon
func Step(w *engine.World) engine.Snapshot {
	c := w.Controlled()

	respondControlled(w, c)
	resolveContact(w, c)
	spawnTimed(w)
	updateHostiles(w)
	integrateAll(w)
	cullHostiles(w)

	w.Tick++
	w.Status.Ints.Get(status.KeyTicks).Store(int64(w.Tick))
	w.Status.Ints.Get(status.KeyHostilesLive).Store(int64(w.Store.HostileCount()))
	w.Status.Bools.Get(status.KeyPlayerAlive).Store(c.Alive)

	return w.Snapshot()
}
