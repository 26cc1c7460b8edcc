package engine

import "time"

// TestEpoch is the start time of worlds built by NewTestWorld
var TestEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// NewTestWorld creates a default-board world on a mock clock for tests
// The controlled entity starts at start, hostiles are placed as given and the
// spawn timer is primed at TestEpoch so no hostile appears until the clock moves
func NewTestWorld(start Point, obstacles, hostiles []Point) (*World, *MockTimeProvider) {
	clock := NewMockTimeProvider(TestEpoch)

	cfg := DefaultConfig()
	cfg.Start = start
	cfg.InitialHostiles = hostiles

	w, err := NewWorld(cfg, obstacles, clock)
	if err != nil {
		panic(err)
	}
	w.LastSpawn = TestEpoch
	return w, clock
}
