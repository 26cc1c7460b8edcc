package status

import "sync/atomic"

// Metric keys written by the simulation and read by the driver
const (
	KeyTicks          = "engine.ticks"
	KeyHostilesLive   = "hostiles.live"
	KeyHostileSpawned = "hostiles.spawned"
	KeyHostileStomped = "hostiles.stomped"
	KeyHostileExpired = "hostiles.expired"
	KeyHostileCulled  = "hostiles.culled"
	KeyPlayerAlive    = "player.alive"
	KeySoundMuted     = "audio.muted"
)

// Registry is the central metrics facade
// Writers cache pointers once; per-tick updates go straight to the atomics
type Registry struct {
	Ints  *MetricMap[atomic.Int64]
	Bools *MetricMap[atomic.Bool]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:  NewMetricMap[atomic.Int64](),
		Bools: NewMetricMap[atomic.Bool](),
	}
}

// Int reads an integer metric, 0 when unregistered
func (r *Registry) Int(key string) int64 {
	if !r.Ints.Has(key) {
		return 0
	}
	return r.Ints.Get(key).Load()
}

// Bool reads a boolean metric, false when unregistered
func (r *Registry) Bool(key string) bool {
	if !r.Bools.Has(key) {
		return false
	}
	return r.Bools.Get(key).Load()
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Bools.Count()
}
