package constant

// Velocities are in tiles per tick
const (
	// Gravity is subtracted from vertical velocity once per airborne tick
	Gravity = 0.05

	// TerminalFall is the most negative vertical velocity gravity may produce
	TerminalFall = -0.5

	// HostileCreepSpeed is the horizontal speed a hostile takes after touching a wall
	HostileCreepSpeed = 0.15

	// RunDelta is the horizontal velocity change per direction key press/release
	RunDelta = 0.25

	// JumpImpulse is the vertical velocity set by ascend (and negated by descend)
	JumpImpulse = 0.7

	// SpawnRightThreshold picks the right corner when rng.Intn(SpawnRoll) >= threshold
	SpawnRoll           = 10
	SpawnRightThreshold = 5
)
