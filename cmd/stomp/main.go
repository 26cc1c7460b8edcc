package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/stomp/audio"
	"github.com/lixenwraith/stomp/config"
	"github.com/lixenwraith/stomp/game"
	"github.com/lixenwraith/stomp/input"
	"github.com/lixenwraith/stomp/level"
	"github.com/lixenwraith/stomp/replay"
	"github.com/lixenwraith/stomp/terminal"
)

var (
	configFlag = flag.String("config", "", "TOML configuration file")
	levelFlag  = flag.String("level", "", "Level map file (default: built-in level)")
	keymapFlag = flag.String("keymap", "", "TOML keymap merged over the default bindings")
	seedFlag   = flag.Uint64("seed", 0, "Spawn seed (0: config seed, else time-derived)")
	recordFlag = flag.String("record", "", "Record the game to FILE")
	replayFlag = flag.String("replay", "", "Play back the recording in FILE")
	muteFlag   = flag.Bool("mute", false, "Start with sound muted")
	debugFlag  = flag.Bool("debug", false, "Write a debug log under "+logDir)
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSTOMP CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	logFile := setupLogging(*debugFlag)
	err := run()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "stomp: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Default()
	if *configFlag != "" {
		var err error
		if cfg, err = config.Load(*configFlag); err != nil {
			return err
		}
	}
	if *muteFlag {
		cfg.Driver.Mute = true
	}

	if !terminal.IsInteractive(os.Stdin) {
		return errors.New("stdin is not a terminal")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *replayFlag != "" {
		return playback(ctx, *replayFlag, cfg.Driver.TickInterval.Duration)
	}
	return play(ctx, cfg)
}

func play(ctx context.Context, cfg *config.Config) error {
	seed := *seedFlag
	if seed == 0 && cfg.Spawn.Seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	board := cfg.World(seed).Board

	var layout *level.Layout
	var err error
	if *levelFlag != "" {
		layout, err = level.Load(*levelFlag, board)
	} else {
		layout, err = level.Default(board)
	}
	if err != nil {
		return err
	}

	keys := input.DefaultKeyTable()
	if *keymapFlag != "" {
		if keys, err = input.LoadKeymapFile(*keymapFlag); err != nil {
			return err
		}
	}

	var rec *replay.Recorder
	if *recordFlag != "" {
		if rec, err = replay.Create(*recordFlag); err != nil {
			return err
		}
		defer func() {
			if err := rec.Close(); err != nil {
				log.Printf("stomp: %v", err)
			}
			log.Printf("stomp: recorded %d frames to %s", rec.Frames(), *recordFlag)
		}()
	}

	sound := audio.NewSoundManager()
	if err := sound.Initialize(); err != nil {
		log.Printf("stomp: audio unavailable: %v (continuing without audio)", err)
	} else {
		defer sound.Cleanup()
	}

	screen, err := newScreen()
	if err != nil {
		return err
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	g, err := game.New(screen, game.Options{
		Config:   cfg,
		Layout:   layout,
		Keys:     keys,
		Seed:     seed,
		Sound:    sound,
		Recorder: rec,
	})
	if err != nil {
		return err
	}
	return g.Run(ctx)
}

func playback(ctx context.Context, path string, interval time.Duration) error {
	r, err := replay.Open(path)
	if err != nil {
		return err
	}
	defer r.Close()

	screen, err := newScreen()
	if err != nil {
		return err
	}
	defer screen.Fini()

	return game.Playback(ctx, screen, r, interval)
}

func newScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %w", err)
	}
	screen.HideCursor()
	screen.Clear()
	return screen, nil
}
