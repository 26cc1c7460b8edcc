package audio

import (
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/stomp/constant"
)

const (
	sampleRate = beep.SampleRate(constant.AudioSampleRate)
)

// SoundManager plays one-shot game cues through a shared mixer
// Every method is a silent no-op until Initialize succeeds, so the game runs
// without an audio device
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	master      *effects.Volume
	initialized bool
	muted       bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		mixer:  mixer,
		master: newVolume(mixer, constant.AudioMasterVolume),
	}
}

// Initialize opens the speaker
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constant.AudioBufferLength)); err != nil {
		return err
	}

	speaker.Play(sm.master)
	sm.initialized = true
	return nil
}

// Cleanup drops every playing cue
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker Close for this backend, clearing the mixer silences it
	sm.initialized = false
}

// SetMuted silences or restores cue playback
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = muted
	if !sm.initialized {
		sm.master.Silent = muted
		return
	}
	speaker.Lock()
	sm.master.Silent = muted
	speaker.Unlock()
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// PlayStomp plays the short high blip of a stomped hostile
func (sm *SoundManager) PlayStomp() { sm.play(CueStomp) }

// PlaySpawn plays the low tick of a new hostile
func (sm *SoundManager) PlaySpawn() { sm.play(CueSpawn) }

// PlayLoss plays the loss buzz
func (sm *SoundManager) PlayLoss() { sm.play(CueLoss) }

// PlayVictory plays the victory arpeggio
func (sm *SoundManager) PlayVictory() { sm.play(CueVictory) }

func (sm *SoundManager) play(cue Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	s, err := cueStreamer(cue, sampleRate)
	if err != nil {
		log.Printf("audio: cue %d: %v", cue, err)
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
