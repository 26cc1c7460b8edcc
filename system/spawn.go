package system

import (
	"github.com/lixenwraith/stomp/constant"
	"github.com/lixenwraith/stomp/engine"
	"github.com/lixenwraith/stomp/status"
)

// spawnTimed places at most one hostile per tick once the spawn interval has
// strictly elapsed
func spawnTimed(w *engine.World) {
	now := w.Clock.Now()
	if now.Sub(w.LastSpawn) <= w.Config.SpawnInterval {
		return
	}

	left, right := w.Board().TopCorners()
	loc := left
	if w.Rand.Intn(constant.SpawnRoll) >= constant.SpawnRightThreshold {
		loc = right
	}

	h := w.SpawnHostile(loc)
	w.LastSpawn = now
	w.Status.Ints.Get(status.KeyHostileSpawned).Add(1)
	w.Emit(engine.EventSpawn, h)
}
