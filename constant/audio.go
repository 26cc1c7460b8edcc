package constant

import "time"

// Audio
const (
	AudioSampleRate   = 48000
	AudioBufferLength = 100 * time.Millisecond

	StompToneHz       = 880
	StompDuration     = 80 * time.Millisecond
	SpawnToneHz       = 220
	SpawnDuration     = 40 * time.Millisecond
	LossBuzzHz        = 120
	LossDuration      = 400 * time.Millisecond
	VictoryDuration   = 600 * time.Millisecond
	AudioMasterVolume = 0.25
)
