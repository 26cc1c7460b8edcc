package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/stomp/constant"
	"github.com/lixenwraith/stomp/engine"
	"github.com/lixenwraith/stomp/input"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Duration decodes TOML strings such as "50ms" or "1s"
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

type BoardConfig struct {
	TileSize int `toml:"tile_size"`
	Left     int `toml:"left"`
	Right    int `toml:"right"`
	Bottom   int `toml:"bottom"`
	Top      int `toml:"top"`
}

type PhysicsConfig struct {
	Gravity      float64 `toml:"gravity"`
	TerminalFall float64 `toml:"terminal_fall"`
	CreepSpeed   float64 `toml:"creep_speed"`
	RunDelta     float64 `toml:"run_delta"`
	JumpImpulse  float64 `toml:"jump_impulse"`
}

type SpawnConfig struct {
	Interval Duration `toml:"interval"`
	// Seed 0 picks a time-derived seed at startup
	Seed           uint64 `toml:"seed"`
	InitialCorners bool   `toml:"initial_corners"`
}

type PlayerConfig struct {
	StartX      int      `toml:"start_x"`
	StartY      int      `toml:"start_y"`
	HoldTimeout Duration `toml:"hold_timeout"`
}

type DriverConfig struct {
	TickInterval Duration `toml:"tick_interval"`
	OutcomeDelay Duration `toml:"outcome_delay"`
	Mute         bool     `toml:"mute"`
}

// Config is the full game configuration
type Config struct {
	Board   BoardConfig   `toml:"board"`
	Physics PhysicsConfig `toml:"physics"`
	Spawn   SpawnConfig   `toml:"spawn"`
	Player  PlayerConfig  `toml:"player"`
	Driver  DriverConfig  `toml:"driver"`
}

// Default returns the stock configuration
func Default() *Config {
	return &Config{
		Board: BoardConfig{
			TileSize: constant.TileSize,
			Left:     constant.BoardLeft,
			Right:    constant.BoardRight,
			Bottom:   constant.BoardBottom,
			Top:      constant.BoardTop,
		},
		Physics: PhysicsConfig{
			Gravity:      constant.Gravity,
			TerminalFall: constant.TerminalFall,
			CreepSpeed:   constant.HostileCreepSpeed,
			RunDelta:     constant.RunDelta,
			JumpImpulse:  constant.JumpImpulse,
		},
		Spawn: SpawnConfig{
			Interval:       Duration{constant.SpawnInterval},
			InitialCorners: true,
		},
		Player: PlayerConfig{
			StartX:      constant.PlayerStartX,
			StartY:      constant.PlayerStartY,
			HoldTimeout: Duration{constant.HoldTimeout},
		},
		Driver: DriverConfig{
			TickInterval: Duration{constant.GameUpdateInterval},
			OutcomeDelay: Duration{constant.OutcomeDelay},
		},
	}
}

// Load reads a TOML file over the defaults and validates the result
// Keys absent from the file keep their default, unknown keys are an error
func Load(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %q in %s", ErrInvalid, undecoded[0].String(), path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as TOML
func (c *Config) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// Validate checks every tunable is usable
func (c *Config) Validate() error {
	b := c.board()
	if err := b.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if !b.Contains(c.start()) {
		return fmt.Errorf("%w: start (%d,%d) outside board", ErrInvalid, c.Player.StartX, c.Player.StartY)
	}

	p := c.Physics
	switch {
	case p.Gravity <= 0:
		return fmt.Errorf("%w: gravity must be positive, got %v", ErrInvalid, p.Gravity)
	case p.TerminalFall >= 0:
		return fmt.Errorf("%w: terminal_fall must be negative, got %v", ErrInvalid, p.TerminalFall)
	case p.CreepSpeed < 0:
		return fmt.Errorf("%w: creep_speed must not be negative, got %v", ErrInvalid, p.CreepSpeed)
	case p.RunDelta <= 0:
		return fmt.Errorf("%w: run_delta must be positive, got %v", ErrInvalid, p.RunDelta)
	case p.JumpImpulse < 0:
		return fmt.Errorf("%w: jump_impulse must not be negative, got %v", ErrInvalid, p.JumpImpulse)
	}

	if c.Spawn.Interval.Duration <= 0 {
		return fmt.Errorf("%w: spawn interval must be positive", ErrInvalid)
	}
	if c.Player.HoldTimeout.Duration <= 0 {
		return fmt.Errorf("%w: hold_timeout must be positive", ErrInvalid)
	}
	if c.Driver.TickInterval.Duration <= 0 {
		return fmt.Errorf("%w: tick_interval must be positive", ErrInvalid)
	}
	if c.Driver.OutcomeDelay.Duration < 0 {
		return fmt.Errorf("%w: outcome_delay must not be negative", ErrInvalid)
	}
	return nil
}

func (c *Config) board() engine.Board {
	rest := (c.Board.TileSize - 1) / 2
	return engine.Board{
		TileSize: c.Board.TileSize,
		Left:     c.Board.Left,
		Right:    c.Board.Right,
		Bottom:   c.Board.Bottom,
		Top:      c.Board.Top,
		Rest:     engine.Point{X: rest, Y: rest},
	}
}

func (c *Config) start() engine.Point {
	return engine.Point{X: c.Player.StartX, Y: c.Player.StartY}
}

// World derives the engine configuration; seed overrides the configured seed when non-zero
func (c *Config) World(seed uint64) engine.Config {
	b := c.board()
	var hostiles []engine.Point
	if c.Spawn.InitialCorners {
		left, right := b.TopCorners()
		hostiles = []engine.Point{left, right}
	}
	if seed == 0 {
		seed = c.Spawn.Seed
	}
	return engine.Config{
		Board:           b,
		Gravity:         c.Physics.Gravity,
		TerminalFall:    c.Physics.TerminalFall,
		CreepSpeed:      c.Physics.CreepSpeed,
		SpawnInterval:   c.Spawn.Interval.Duration,
		Start:           c.start(),
		InitialHostiles: hostiles,
		Seed:            seed,
	}
}

// Impulse derives the input impulses
func (c *Config) Impulse() input.Impulse {
	return input.Impulse{RunDelta: c.Physics.RunDelta, Jump: c.Physics.JumpImpulse}
}
