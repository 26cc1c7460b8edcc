package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/stomp/constant"
)

// Cue identifies a one-shot game sound
type Cue uint8

const (
	CueStomp Cue = iota
	CueSpawn
	CueLoss
	CueVictory
)

// victoryNotes is a rising major arpeggio
var victoryNotes = []float64{523.25, 659.25, 783.99}

// cueStreamer builds a finite streamer for the cue
func cueStreamer(cue Cue, sr beep.SampleRate) (beep.Streamer, error) {
	switch cue {
	case CueStomp:
		return tone(sr, constant.StompToneHz, constant.StompDuration)
	case CueSpawn:
		return tone(sr, constant.SpawnToneHz, constant.SpawnDuration)
	case CueLoss:
		return NewEnvelope(NewBuzzGenerator(sr, constant.LossBuzzHz), constant.LossDuration, 10*time.Millisecond, 150*time.Millisecond, sr), nil
	case CueVictory:
		step := constant.VictoryDuration / time.Duration(len(victoryNotes))
		notes := make([]beep.Streamer, 0, len(victoryNotes))
		for _, f := range victoryNotes {
			s, err := tone(sr, f, step)
			if err != nil {
				return nil, err
			}
			notes = append(notes, s)
		}
		return beep.Seq(notes...), nil
	default:
		return nil, fmt.Errorf("unknown cue %d", cue)
	}
}

// tone is an enveloped sine of fixed length
func tone(sr beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, fmt.Errorf("sine %vHz: %w", freq, err)
	}
	return NewEnvelope(sine, d, 5*time.Millisecond, d/2, sr), nil
}

// newVolume wraps s in a linear gain
// math.Log2(0) is -Inf, so zero volume is silent
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// BuzzGenerator generates a low-pitch buzz sound
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{sr: sr, freq: freq}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Fundamental plus two harmonics
		sample := 0.3*math.Sin(2*math.Pi*g.freq*t) +
			0.15*math.Sin(2*math.Pi*g.freq*2*t) +
			0.075*math.Sin(2*math.Pi*g.freq*3*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error { return nil }

// envelope applies attack/release shaping and ends the stream after its duration
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope limits s to duration with linear attack and release ramps
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, sr beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   sr.N(attack),
		release:  sr.N(release),
		total:    sr.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.total {
		return 0, false
	}
	if remaining := e.total - e.position; len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = e.streamer.Stream(samples)
	releaseStart := e.total - e.release
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		} else if e.position >= releaseStart && e.release > 0 {
			vol = float64(e.total-e.position) / float64(e.release)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok || n > 0
}

func (e *envelope) Err() error { return e.streamer.Err() }
