package input

import "time"

// heldOrder fixes the order synthesized releases are reported in
var heldOrder = []Action{ActionMoveLeft, ActionMoveRight, ActionAscend, ActionDescend}

// HoldTracker infers key releases from auto-repeat gaps
// Terminals report presses and repeats only, so a held key counts as released
// once it has not repeated within the timeout
type HoldTracker struct {
	timeout time.Duration
	held    map[Action]time.Time
}

// NewHoldTracker creates a tracker with the given repeat timeout
func NewHoldTracker(timeout time.Duration) *HoldTracker {
	return &HoldTracker{
		timeout: timeout,
		held:    make(map[Action]time.Time),
	}
}

// Press records a key event for a and reports whether it starts a new hold
func (h *HoldTracker) Press(a Action, now time.Time) bool {
	_, already := h.held[a]
	h.held[a] = now
	return !already
}

// Held reports whether a is currently held
func (h *HoldTracker) Held(a Action) bool {
	_, ok := h.held[a]
	return ok
}

// Expire forgets and returns every action whose last event is at least the
// timeout old
func (h *HoldTracker) Expire(now time.Time) []Action {
	var released []Action
	for _, a := range heldOrder {
		last, ok := h.held[a]
		if !ok || now.Sub(last) < h.timeout {
			continue
		}
		delete(h.held, a)
		released = append(released, a)
	}
	return released
}

// ReleaseAll forgets and returns every held action
func (h *HoldTracker) ReleaseAll() []Action {
	var released []Action
	for _, a := range heldOrder {
		if _, ok := h.held[a]; ok {
			delete(h.held, a)
			released = append(released, a)
		}
	}
	return released
}
