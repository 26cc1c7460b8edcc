package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/stomp/constant"
)

// pollEvents feeds terminal events into a buffered channel from one goroutine
// The goroutine ends when the screen is finalized or after stop once PollEvent returns
func pollEvents(screen tcell.Screen) (<-chan tcell.Event, func()) {
	events := make(chan tcell.Event, constant.EventQueueSize)
	done := make(chan struct{})

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	return events, func() { close(done) }
}
