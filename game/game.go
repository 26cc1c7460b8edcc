package game

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/stomp/audio"
	"github.com/lixenwraith/stomp/config"
	"github.com/lixenwraith/stomp/engine"
	"github.com/lixenwraith/stomp/input"
	"github.com/lixenwraith/stomp/level"
	"github.com/lixenwraith/stomp/render"
	"github.com/lixenwraith/stomp/replay"
	"github.com/lixenwraith/stomp/status"
	"github.com/lixenwraith/stomp/system"
)

// Options bundles the collaborators of a game; nil fields take defaults
type Options struct {
	Config   *config.Config
	Layout   *level.Layout
	Keys     *input.KeyTable
	Seed     uint64
	Sound    *audio.SoundManager
	Recorder *replay.Recorder
	Clock    engine.TimeProvider
}

// Game drives one world: input, stepping, sound, recording and drawing
// Every method runs on the goroutine that calls Run
type Game struct {
	screen     tcell.Screen
	cfg        *config.Config
	world      *engine.World
	clock      engine.TimeProvider
	controller *input.Controller
	keys       *input.KeyTable
	renderer   *render.Renderer
	sound      *audio.SoundManager
	recorder   *replay.Recorder

	muted   *atomic.Bool
	stomped *atomic.Int64

	outcome   engine.Outcome
	outcomeAt time.Time
}

// New builds the world from the options and binds it to screen
func New(screen tcell.Screen, opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	keys := opts.Keys
	if keys == nil {
		keys = input.DefaultKeyTable()
	}
	clock := opts.Clock
	if clock == nil {
		clock = engine.NewMonotonicTimeProvider()
	}
	sound := opts.Sound
	if sound == nil {
		sound = audio.NewSoundManager()
	}

	wcfg := cfg.World(opts.Seed)
	layout := opts.Layout
	if layout == nil {
		var err error
		if layout, err = level.Default(wcfg.Board); err != nil {
			return nil, err
		}
	}
	if err := layout.CheckStart(wcfg.Start); err != nil {
		return nil, err
	}

	w, err := engine.NewWorld(wcfg, layout.Obstacles, clock)
	if err != nil {
		return nil, fmt.Errorf("failed to create world: %w", err)
	}

	g := &Game{
		screen:     screen,
		cfg:        cfg,
		world:      w,
		clock:      clock,
		controller: input.NewController(w, cfg.Impulse(), cfg.Player.HoldTimeout.Duration),
		keys:       keys,
		renderer:   render.NewRenderer(screen, wcfg.Board, w.Status),
		sound:      sound,
		recorder:   opts.Recorder,
		muted:      w.Status.Bools.Get(status.KeySoundMuted),
		stomped:    w.Status.Ints.Get(status.KeyHostileStomped),
	}
	g.setMuted(cfg.Driver.Mute || sound.Muted())

	log.Printf("game: board %dx%d, %d obstacles, seed %d",
		wcfg.Board.Width(), wcfg.Board.Height(), len(layout.Obstacles), wcfg.Seed)
	return g, nil
}

// World exposes the simulated world
func (g *Game) World() *engine.World { return g.world }

// Outcome returns the settled outcome, Running until the game ends
func (g *Game) Outcome() engine.Outcome { return g.outcome }

// Muted reports whether sound cues are silenced
func (g *Game) Muted() bool { return g.muted.Load() }

func (g *Game) setMuted(muted bool) {
	g.sound.SetMuted(muted)
	g.muted.Store(muted)
}

// Run paces ticks and applies terminal events until quit, the post-outcome key or ctx ends
func (g *Game) Run(ctx context.Context) error {
	events, stop := pollEvents(g.screen)
	defer stop()

	ticker := time.NewTicker(g.cfg.Driver.TickInterval.Duration)
	defer ticker.Stop()

	g.renderer.Draw(g.world.Snapshot(), g.Muted())

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !g.HandleEvent(ev, g.clock.Now()) {
				return nil
			}
		case <-ticker.C:
			g.Tick(g.clock.Now())
		}
	}
}

// HandleEvent applies one terminal event, false when the game should exit
func (g *Game) HandleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.renderer.Resize()
		g.screen.Sync()
	case *tcell.EventKey:
		if g.outcome != engine.OutcomeRunning {
			// Keys during the outcome delay are swallowed
			return now.Sub(g.outcomeAt) < g.cfg.Driver.OutcomeDelay.Duration
		}

		a, ok := g.keys.Lookup(ev)
		if !ok {
			return true
		}
		switch a {
		case input.ActionQuit:
			log.Printf("game: quit at tick %d", g.world.Tick)
			return false
		case input.ActionToggleSound:
			g.setMuted(!g.Muted())
		default:
			g.controller.KeyEvent(a, now)
		}
	}
	return true
}

// Tick advances the world one step; after the outcome it is a no-op
func (g *Game) Tick(now time.Time) {
	if g.outcome != engine.OutcomeRunning {
		return
	}

	g.controller.Tick(now)
	snap := system.Step(g.world)
	g.dispatch(snap.Events)

	if g.recorder != nil {
		if err := g.recorder.Record(snap); err != nil {
			log.Printf("game: recording stopped: %v", err)
			g.recorder = nil
		}
	}

	if snap.Outcome != engine.OutcomeRunning {
		g.finish(snap.Outcome, now)
		return
	}
	g.renderer.Draw(snap, g.Muted())
}

func (g *Game) dispatch(events []engine.Event) {
	for _, ev := range events {
		log.Printf("game: tick %d %s entity %d at (%d,%d)", g.world.Tick, ev.Type, ev.Entity, ev.At.X, ev.At.Y)
		switch ev.Type {
		case engine.EventSpawn:
			g.sound.PlaySpawn()
		case engine.EventStomp:
			g.sound.PlayStomp()
		}
	}
}

func (g *Game) finish(o engine.Outcome, now time.Time) {
	g.outcome = o
	g.outcomeAt = now
	g.controller.ReleaseAll()

	switch o {
	case engine.OutcomeWon:
		g.sound.PlayVictory()
	case engine.OutcomeLost:
		g.sound.PlayLoss()
	}
	log.Printf("game: %s at tick %d, %d stomped", o, g.world.Tick, g.stomped.Load())
	g.renderer.DrawOutcome(o, g.stomped.Load())
}
