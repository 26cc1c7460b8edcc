package constant

import "time"

// Game Loop Timing
const (
	// GameUpdateInterval is the simulation tick interval
	GameUpdateInterval = 50 * time.Millisecond

	// SpawnInterval is the minimum elapsed time between hostile spawns (strictly greater triggers)
	SpawnInterval = time.Second

	// HoldTimeout is how long a held key may go without a repeat before a release is synthesized
	HoldTimeout = 150 * time.Millisecond

	// OutcomeDelay is the pause on the victory/loss screen before input may exit
	OutcomeDelay = time.Second

	// EventQueueSize is the buffer of the terminal event channel
	EventQueueSize = 256
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "stomp.log"
	MaxLogSize  = 10 * 1024 * 1024
)
