package game

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/stomp/config"
	"github.com/lixenwraith/stomp/constant"
	"github.com/lixenwraith/stomp/engine"
	"github.com/lixenwraith/stomp/level"
	"github.com/lixenwraith/stomp/replay"
	"github.com/lixenwraith/stomp/status"
)

const screenW, screenH = 80, 24

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(screenW, screenH)
	t.Cleanup(screen.Fini)
	return screen
}

func rowText(s tcell.Screen, y int) string {
	var sb strings.Builder
	for x := 0; x < screenW; x++ {
		ch, _, _, _ := s.GetContent(x, y)
		sb.WriteRune(ch)
	}
	return sb.String()
}

func emptyLayout(t *testing.T) *level.Layout {
	t.Helper()
	l, err := level.Parse(strings.NewReader(""), engine.DefaultBoard())
	require.NoError(t, err)
	return l
}

// newTestGame builds a game on an empty level with the spawn timer primed
func newTestGame(t *testing.T, screen tcell.Screen, corners bool, rec *replay.Recorder) (*Game, *engine.MockTimeProvider) {
	t.Helper()
	cfg := config.Default()
	cfg.Spawn.InitialCorners = corners

	clock := engine.NewMockTimeProvider(engine.TestEpoch)
	g, err := New(screen, Options{
		Config:   cfg,
		Layout:   emptyLayout(t),
		Seed:     7,
		Clock:    clock,
		Recorder: rec,
	})
	require.NoError(t, err)
	g.World().LastSpawn = clock.Now()
	return g, clock
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestKeyHoldAndSynthesizedRelease(t *testing.T) {
	g, clock := newTestGame(t, newScreen(t), true, nil)
	player := g.World().Controlled()
	t0 := clock.Now()

	require.True(t, g.HandleEvent(key(tcell.KeyRight), t0))
	assert.Equal(t, constant.RunDelta, player.Velocity.X)

	// Repeats inside the hold do not stack
	require.True(t, g.HandleEvent(key(tcell.KeyRight), t0.Add(30*time.Millisecond)))
	assert.Equal(t, constant.RunDelta, player.Velocity.X)

	g.Tick(t0.Add(50 * time.Millisecond))
	assert.Equal(t, constant.RunDelta, player.Velocity.X, "hold still live")

	g.Tick(t0.Add(300 * time.Millisecond))
	assert.Zero(t, player.Velocity.X, "release synthesized after the hold timeout")
	assert.Equal(t, uint64(2), g.World().Tick)
}

func TestJumpFromFloor(t *testing.T) {
	g, clock := newTestGame(t, newScreen(t), true, nil)

	g.HandleEvent(runeKey(' '), clock.Now())
	assert.Equal(t, constant.JumpImpulse, g.World().Controlled().Velocity.Y)
}

func TestQuitAndToggleSound(t *testing.T) {
	g, clock := newTestGame(t, newScreen(t), true, nil)
	now := clock.Now()

	assert.False(t, g.Muted())
	assert.True(t, g.HandleEvent(runeKey('m'), now))
	assert.True(t, g.Muted())
	assert.True(t, g.World().Status.Bool(status.KeySoundMuted))

	assert.True(t, g.HandleEvent(key(tcell.KeyCtrlS), now))
	assert.False(t, g.Muted())

	assert.True(t, g.HandleEvent(runeKey('z'), now), "unbound keys are ignored")
	assert.False(t, g.HandleEvent(runeKey('q'), now))
	assert.False(t, g.HandleEvent(key(tcell.KeyCtrlC), now))
}

func TestWinShowsOutcomeAfterDelay(t *testing.T) {
	screen := newScreen(t)
	g, clock := newTestGame(t, screen, false, nil)
	now := clock.Now()

	g.Tick(now)
	require.Equal(t, engine.OutcomeWon, g.Outcome())
	assert.Contains(t, rowText(screen, screenH/2-1), "YOU WIN")

	g.Tick(now.Add(time.Second))
	assert.Equal(t, uint64(1), g.World().Tick, "no steps after the outcome")

	assert.True(t, g.HandleEvent(runeKey('x'), now.Add(500*time.Millisecond)), "keys swallowed during the delay")
	assert.True(t, g.HandleEvent(runeKey('q'), now.Add(500*time.Millisecond)))
	assert.False(t, g.HandleEvent(runeKey('x'), now.Add(constant.OutcomeDelay)))
}

func TestLossIsRecorded(t *testing.T) {
	var buf bytes.Buffer
	rec := replay.NewRecorder(&buf)

	screen := newScreen(t)
	g, clock := newTestGame(t, screen, false, rec)
	g.World().SpawnHostile(engine.Point{X: 11, Y: 0})

	g.Tick(clock.Now())
	require.Equal(t, engine.OutcomeLost, g.Outcome())
	assert.Contains(t, rowText(screen, screenH/2-1), "GAME OVER")
	require.NoError(t, rec.Close())

	r := replay.NewReader(&buf)
	f, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, uint8(engine.OutcomeLost), f.Outcome)
	assert.Contains(t, f.Events, uint8(engine.EventHit))
	assert.False(t, f.Controlled.Alive)
}

func TestStatusBarDrawnEachTick(t *testing.T) {
	screen := newScreen(t)
	g, clock := newTestGame(t, screen, true, nil)

	g.Tick(clock.Now())
	_, oy := g.renderer.Origin()
	assert.Contains(t, rowText(screen, oy+g.World().Board().Height()+1), "tick 1  hostiles 2  sound on")
}

func TestNewRejectsBlockedStart(t *testing.T) {
	b := engine.DefaultBoard()
	text := strings.Repeat("\n", b.Height()-1) + strings.Repeat(" ", constant.PlayerStartX) + "*"
	l, err := level.Parse(strings.NewReader(text), b)
	require.NoError(t, err)

	_, err = New(newScreen(t), Options{Layout: l, Clock: engine.NewMockTimeProvider(engine.TestEpoch)})
	assert.ErrorIs(t, err, level.ErrStartBlocked)
}

func TestRunEndsOnQuitKey(t *testing.T) {
	screen := newScreen(t)
	g, _ := newTestGame(t, screen, true, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	require.NoError(t, g.Run(ctx))
	assert.NoError(t, ctx.Err(), "returned on the key, not the deadline")
}

func TestRunEndsOnCancel(t *testing.T) {
	g, _ := newTestGame(t, newScreen(t), true, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, g.Run(ctx))
}

func recordLoss(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	rec := replay.NewRecorder(&buf)

	g, clock := newTestGame(t, newScreen(t), false, rec)
	g.World().SpawnHostile(engine.Point{X: constant.PlayerStartX, Y: 3})
	for i := 0; i < 100 && g.Outcome() == engine.OutcomeRunning; i++ {
		clock.Advance(constant.GameUpdateInterval)
		g.World().LastSpawn = clock.Now()
		g.Tick(clock.Now())
	}
	require.Equal(t, engine.OutcomeLost, g.Outcome())
	require.NoError(t, rec.Close())
	require.Greater(t, rec.Frames(), 1)
	return &buf
}

func TestPlaybackHoldsOutcome(t *testing.T) {
	buf := recordLoss(t)
	screen := newScreen(t)

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	require.NoError(t, Playback(ctx, screen, replay.NewReader(buf), time.Millisecond))
	assert.Contains(t, rowText(screen, screenH/2-1), "GAME OVER")
}

func TestPlaybackStopsOnKey(t *testing.T) {
	buf := recordLoss(t)
	screen := newScreen(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	require.NoError(t, Playback(ctx, screen, replay.NewReader(buf), time.Second))
	assert.NoError(t, ctx.Err())
}

func TestPlaybackEmptyRecording(t *testing.T) {
	err := Playback(context.Background(), newScreen(t), replay.NewReader(&bytes.Buffer{}), time.Millisecond)
	assert.ErrorIs(t, err, ErrEmptyRecording)
}
