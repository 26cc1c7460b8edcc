package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps terminal keys to actions
type KeyTable struct {
	// Special keys (arrows, Ctrl+*, Escape)
	Keys map[tcell.Key]Action

	// Printable runes
	Runes map[rune]Action
}

// DefaultKeyTable returns the default key bindings: arrows plus vi-style hjkl
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]Action{
			tcell.KeyLeft:   ActionMoveLeft,
			tcell.KeyRight:  ActionMoveRight,
			tcell.KeyUp:     ActionAscend,
			tcell.KeyDown:   ActionDescend,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
			tcell.KeyCtrlQ:  ActionQuit,
			tcell.KeyCtrlS:  ActionToggleSound,
		},
		Runes: map[rune]Action{
			'h': ActionMoveLeft,
			'l': ActionMoveRight,
			'k': ActionAscend,
			'j': ActionDescend,
			' ': ActionAscend,
			'q': ActionQuit,
			'm': ActionToggleSound,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		Keys:  maps.Clone(kt.Keys),
		Runes: maps.Clone(kt.Runes),
	}
}

// Lookup resolves a key event to its bound action
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (Action, bool) {
	if ev.Key() == tcell.KeyRune {
		a, ok := kt.Runes[ev.Rune()]
		return a, ok
	}
	a, ok := kt.Keys[ev.Key()]
	return a, ok
}
