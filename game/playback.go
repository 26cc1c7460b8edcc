package game

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/stomp/engine"
	"github.com/lixenwraith/stomp/render"
	"github.com/lixenwraith/stomp/replay"
)

// ErrEmptyRecording is returned when a recording holds no frames
var ErrEmptyRecording = errors.New("recording has no frames")

// Playback draws a recording frame by frame at interval
// Any key ends playback; a finished recording holds its outcome screen until a key
func Playback(ctx context.Context, screen tcell.Screen, r *replay.Reader, interval time.Duration) error {
	frame, err := r.Next()
	if errors.Is(err, io.EOF) {
		return ErrEmptyRecording
	}
	if err != nil {
		return err
	}

	renderer := render.NewRenderer(screen, frame.BoardGeometry(), nil)
	events, stop := pollEvents(screen)
	defer stop()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var stomped int64
	for {
		snap := frame.Snapshot()
		for _, ev := range snap.Events {
			if ev.Type == engine.EventStomp {
				stomped++
			}
		}
		renderer.Draw(snap, true)

		if !waitTick(ctx, events, ticker.C, renderer) {
			return nil
		}

		next, err := r.Next()
		if errors.Is(err, io.EOF) {
			if snap.Outcome != engine.OutcomeRunning {
				renderer.DrawOutcome(snap.Outcome, stomped)
			}
			waitKey(ctx, events)
			return nil
		}
		if err != nil {
			return err
		}
		frame = next
	}
}

// waitTick blocks until the next tick, false on a key or cancellation
func waitTick(ctx context.Context, events <-chan tcell.Event, tick <-chan time.Time, renderer *render.Renderer) bool {
	for {
		select {
		case <-ctx.Done():
			return false
		case <-tick:
			return true
		case ev := <-events:
			switch ev.(type) {
			case *tcell.EventKey:
				return false
			case *tcell.EventResize:
				renderer.Resize()
			}
		}
	}
}

func waitKey(ctx context.Context, events <-chan tcell.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			if _, ok := ev.(*tcell.EventKey); ok {
				return
			}
		}
	}
}
