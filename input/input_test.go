package input

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/stomp/engine"
)

func TestDefaultKeyTableLookup(t *testing.T) {
	kt := DefaultKeyTable()

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Action
		ok   bool
	}{
		{"arrow right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), ActionMoveRight, true},
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), ActionAscend, true},
		{"vi left", tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), ActionMoveLeft, true},
		{"quit rune", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), ActionQuit, true},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionQuit, true},
		{"unbound rune", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := kt.Lookup(tt.ev)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadKeyConfig(t *testing.T) {
	data := []byte(`
[keys]
Left = "none"
"ctrl-p" = "toggle_sound"

[runes]
a = "move_left"
d = "move_right"
space = "none"
`)
	override, err := LoadKeyConfig(data)
	require.NoError(t, err)
	assert.Equal(t, ActionMoveLeft, override.Runes['a'])
	assert.Equal(t, ActionToggleSound, override.Keys[tcell.KeyCtrlP])

	merged := MergeKeyTable(DefaultKeyTable(), override)
	_, ok := merged.Keys[tcell.KeyLeft]
	assert.False(t, ok, "none unbinds")
	_, ok = merged.Runes[' ']
	assert.False(t, ok)
	assert.Equal(t, ActionMoveRight, merged.Runes['d'])
	assert.Equal(t, ActionMoveRight, merged.Keys[tcell.KeyRight], "untouched defaults survive")

	_, ok = DefaultKeyTable().Runes[' ']
	assert.True(t, ok, "merge must not mutate the base")
}

func TestLoadKeyConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown action", "[runes]\na = \"fly\"\n"},
		{"unknown key", "[keys]\nhyper = \"quit\"\n"},
		{"bad rune", "[runes]\nab = \"quit\"\n"},
		{"unknown section", "[mouse]\nx = \"quit\"\n"},
		{"syntax", "[runes\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadKeyConfig([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadKeymapFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keymap.toml")
	require.NoError(t, os.WriteFile(path, []byte("[runes]\nw = \"ascend\"\n"), 0644))

	kt, err := LoadKeymapFile(path)
	require.NoError(t, err)
	assert.Equal(t, ActionAscend, kt.Runes['w'])
	assert.Equal(t, ActionMoveLeft, kt.Runes['h'])

	_, err = LoadKeymapFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestActionNames(t *testing.T) {
	a, ok := ActionByName(" Move_Right ")
	require.True(t, ok)
	assert.Equal(t, ActionMoveRight, a)
	assert.Equal(t, "move_right", a.String())

	assert.True(t, ActionDescend.Held())
	assert.False(t, ActionQuit.Held())
}

func TestHoldTracker(t *testing.T) {
	h := NewHoldTracker(150 * time.Millisecond)
	t0 := engine.TestEpoch

	assert.True(t, h.Press(ActionMoveRight, t0))
	assert.False(t, h.Press(ActionMoveRight, t0.Add(100*time.Millisecond)), "repeat is not a new hold")

	assert.Empty(t, h.Expire(t0.Add(200*time.Millisecond)), "repeat refreshed the hold")
	assert.Equal(t, []Action{ActionMoveRight}, h.Expire(t0.Add(250*time.Millisecond)))
	assert.False(t, h.Held(ActionMoveRight))

	h.Press(ActionAscend, t0)
	h.Press(ActionMoveLeft, t0)
	assert.Equal(t, []Action{ActionMoveLeft, ActionAscend}, h.ReleaseAll())
}

func TestControllerRunAndRelease(t *testing.T) {
	w, _ := engine.NewTestWorld(engine.Point{X: 10, Y: 0}, nil, nil)
	c := NewController(w, DefaultImpulse(), 150*time.Millisecond)
	e := w.Controlled()
	t0 := engine.TestEpoch

	c.KeyEvent(ActionMoveRight, t0)
	c.KeyEvent(ActionMoveRight, t0.Add(50*time.Millisecond))
	assert.InDelta(t, 0.25, e.Velocity.X, 1e-9, "repeats do not stack")

	c.Tick(t0.Add(100 * time.Millisecond))
	assert.InDelta(t, 0.25, e.Velocity.X, 1e-9)

	c.Tick(t0.Add(200 * time.Millisecond))
	assert.InDelta(t, 0, e.Velocity.X, 1e-9)
}

func TestControllerReleaseConsumesLockout(t *testing.T) {
	w, _ := engine.NewTestWorld(engine.Point{X: 10, Y: 0}, nil, nil)
	c := NewController(w, DefaultImpulse(), 150*time.Millisecond)
	e := w.Controlled()

	c.Press(ActionMoveRight)
	// Wall stop while moving right
	e.Velocity.X = 0
	w.BlockedLeft = true

	c.Release(ActionMoveRight)
	assert.False(t, w.BlockedLeft)
	assert.Zero(t, e.Velocity.X)

	c.Press(ActionMoveLeft)
	e.Velocity.X = 0
	w.BlockedRight = true
	c.Release(ActionMoveLeft)
	assert.False(t, w.BlockedRight)
	assert.Zero(t, e.Velocity.X)

	c.Press(ActionMoveLeft)
	c.Release(ActionMoveLeft)
	assert.Zero(t, e.Velocity.X)
}

func TestControllerJumpNeedsFloor(t *testing.T) {
	w, _ := engine.NewTestWorld(engine.Point{X: 10, Y: 0}, nil, nil)
	c := NewController(w, DefaultImpulse(), 150*time.Millisecond)
	e := w.Controlled()

	c.Press(ActionAscend)
	assert.InDelta(t, 0.7, e.Velocity.Y, 1e-9)

	e.Location.Y = 5
	e.Velocity.Y = 0
	c.Press(ActionAscend)
	c.Press(ActionDescend)
	assert.Zero(t, e.Velocity.Y, "no impulse in the air")

	e.Location.Y = 0
	c.Press(ActionDescend)
	assert.InDelta(t, -0.7, e.Velocity.Y, 1e-9)
}
