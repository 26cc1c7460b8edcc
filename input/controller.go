package input

import (
	"time"

	"github.com/lixenwraith/stomp/constant"
	"github.com/lixenwraith/stomp/engine"
	"github.com/lixenwraith/stomp/physics"
)

// Impulse holds the velocity changes applied by movement keys
type Impulse struct {
	RunDelta float64
	Jump     float64
}

// DefaultImpulse returns the stock run and jump impulses
func DefaultImpulse() Impulse {
	return Impulse{RunDelta: constant.RunDelta, Jump: constant.JumpImpulse}
}

// Controller turns movement actions into velocity changes on the controlled entity
// It runs on the tick goroutine, between steps
type Controller struct {
	world   *engine.World
	impulse Impulse
	hold    *HoldTracker
}

// NewController binds a controller to the world
func NewController(w *engine.World, impulse Impulse, holdTimeout time.Duration) *Controller {
	return &Controller{
		world:   w,
		impulse: impulse,
		hold:    NewHoldTracker(holdTimeout),
	}
}

// KeyEvent feeds a raw key press or repeat; only the first event of a hold
// applies the press impulse
func (c *Controller) KeyEvent(a Action, now time.Time) {
	if !a.Held() {
		return
	}
	if c.hold.Press(a, now) {
		c.Press(a)
	}
}

// Tick synthesizes releases for holds that stopped repeating
func (c *Controller) Tick(now time.Time) {
	for _, a := range c.hold.Expire(now) {
		c.Release(a)
	}
}

// ReleaseAll releases every held key
func (c *Controller) ReleaseAll() {
	for _, a := range c.hold.ReleaseAll() {
		c.Release(a)
	}
}

// Press applies the press impulse of a
// Jumps only take effect from the floor
func (c *Controller) Press(a Action) {
	e := c.world.Controlled()
	switch a {
	case ActionMoveRight:
		e.Velocity.X += c.impulse.RunDelta
	case ActionMoveLeft:
		e.Velocity.X -= c.impulse.RunDelta
	case ActionAscend:
		if physics.OnFloor(c.world, e) {
			e.Velocity.Y = c.impulse.Jump
		}
	case ActionDescend:
		if physics.OnFloor(c.world, e) {
			e.Velocity.Y = -c.impulse.Jump
		}
	}
}

// Release undoes a horizontal press impulse
// A release consumes the wall lockout raised while moving that way instead
func (c *Controller) Release(a Action) {
	w := c.world
	e := w.Controlled()
	switch a {
	case ActionMoveRight:
		if w.BlockedLeft {
			w.BlockedLeft = false
		} else {
			e.Velocity.X -= c.impulse.RunDelta
		}
	case ActionMoveLeft:
		if w.BlockedRight {
			w.BlockedRight = false
		} else {
			e.Velocity.X += c.impulse.RunDelta
		}
	}
}
