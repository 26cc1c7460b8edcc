package input

import "strings"

// Action is a game command a key can be bound to
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionAscend
	ActionDescend
	ActionQuit
	ActionToggleSound
)

// actionRegistry maps canonical action names used by keymap files
// "none" is the unbind sentinel
var actionRegistry = map[string]Action{
	"none":         ActionNone,
	"move_left":    ActionMoveLeft,
	"move_right":   ActionMoveRight,
	"ascend":       ActionAscend,
	"descend":      ActionDescend,
	"quit":         ActionQuit,
	"toggle_sound": ActionToggleSound,
}

// ActionByName resolves a keymap action name, case-insensitive
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[strings.ToLower(strings.TrimSpace(name))]
	return a, ok
}

func (a Action) String() string {
	for name, v := range actionRegistry {
		if v == a {
			return name
		}
	}
	return "unknown"
}

// Held reports whether the action is a movement key tracked for release
func (a Action) Held() bool {
	switch a {
	case ActionMoveLeft, ActionMoveRight, ActionAscend, ActionDescend:
		return true
	default:
		return false
	}
}
