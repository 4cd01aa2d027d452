// Package config handles game configuration and level file loading.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned for settings the game cannot run with
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all game settings.
type Config struct {
	Display    DisplayConfig    `yaml:"display"`
	Grid       GridConfig       `yaml:"grid"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Glutton    GluttonConfig    `yaml:"glutton"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Bow        BowConfig        `yaml:"bow"`
	Levels     []LevelConfig    `yaml:"levels"`
	StartLevel int              `yaml:"start_level"`
	Logging    LoggingConfig    `yaml:"logging"`
	Save       SaveConfig       `yaml:"save"`
}

// DisplayConfig holds window settings.
type DisplayConfig struct {
	ScreenWidth  int `yaml:"screen_width"`
	ScreenHeight int `yaml:"screen_height"`
	Scale        int `yaml:"scale"`
	Framerate    int `yaml:"framerate"`
	TilePixels   int `yaml:"tile_pixels"` // drawn size of one tile
}

// GridConfig describes the tile grid and its fixed-point resolution.
type GridConfig struct {
	NumTilesX     int     `yaml:"num_tiles_x"`
	NumTilesY     int     `yaml:"num_tiles_y"`
	StepsPerTileX int     `yaml:"steps_per_tile_x"`
	StepsPerTileY int     `yaml:"steps_per_tile_y"`
	TileWidth     float64 `yaml:"tile_width"` // world units
	TileHeight    float64 `yaml:"tile_height"`
}

// PhysicsConfig configures the vertical integrator. Units are world units
// per second, positive is up.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`
	JumpVelocity     float64 `yaml:"jump_velocity"`
	HighJumpVelocity float64 `yaml:"high_jump_velocity"`
	MaxJumps         int     `yaml:"max_jumps"`
}

// PlayerConfig holds player stats and pickup effects.
type PlayerConfig struct {
	MaxHealth           int     `yaml:"max_health"`
	Lives               int     `yaml:"lives"`
	WalkSteps           float64 `yaml:"walk_steps"`  // microsteps per tick
	SpeedSteps          float64 `yaml:"speed_steps"` // while the speed potion lasts
	SpeedDuration       float64 `yaml:"speed_duration"`
	HighJumpCharges     int     `yaml:"high_jump_charges"`
	HealAmount          int     `yaml:"heal_amount"`
	HazardDamage        int     `yaml:"hazard_damage"`
	BreakInterval       float64 `yaml:"break_interval"`
	ShovelBreakInterval float64 `yaml:"shovel_break_interval"`
}

// GluttonConfig parameterizes the chaser state machine.
type GluttonConfig struct {
	WalkSteps         float64 `yaml:"walk_steps"`
	PatrolTimeout     int     `yaml:"patrol_timeout"` // frames
	ProximityRadius   float64 `yaml:"proximity_radius"`
	TraceStopDistance float64 `yaml:"trace_stop_distance"`
	TracePathDepth    int     `yaml:"trace_path_depth"`
	WallPathDepth     int     `yaml:"wall_path_depth"`
	WallScanRange     int     `yaml:"wall_scan_range"`
	ShotInterval      float64 `yaml:"shot_interval"`
	JumpVelocity      float64 `yaml:"jump_velocity"`
	JumpTriggerRows   int     `yaml:"jump_trigger_rows"`
	Health            int     `yaml:"health"`
}

// ProjectileConfig configures enemy shots.
type ProjectileConfig struct {
	Speed  float64 `yaml:"speed"` // microsteps per tick
	Damage int     `yaml:"damage"`
}

// BowConfig configures the player's arrows. Holding fire raises the charge
// from MinCharge toward MaxCharge; speed, reach and damage scale with it.
type BowConfig struct {
	MinCharge  float64 `yaml:"min_charge"`
	MaxCharge  float64 `yaml:"max_charge"`
	ChargeRate float64 `yaml:"charge_rate"` // per second held

	// Per unit of charge: microsteps per tick, tiles of reach, hit points
	SpeedPerCharge float64 `yaml:"speed_per_charge"`
	RangePerCharge float64 `yaml:"range_per_charge"`
	Damage         int     `yaml:"damage"`

	StrengthMultiplier float64 `yaml:"strength_multiplier"`
}

// LevelConfig points at one level file.
type LevelConfig struct {
	Name   string `yaml:"name"`
	File   string `yaml:"file"`
	Format string `yaml:"format"` // csv or tmx; derived from the extension when empty
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// SaveConfig controls progress persistence.
type SaveConfig struct {
	Enabled bool   `yaml:"enabled"`
	AppName string `yaml:"app_name"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			ScreenWidth:  512,
			ScreenHeight: 384,
			Scale:        2,
			Framerate:    60,
			TilePixels:   16,
		},
		Grid: GridConfig{
			NumTilesX:     32,
			NumTilesY:     24,
			StepsPerTileX: 8,
			StepsPerTileY: 8,
			TileWidth:     1,
			TileHeight:    1,
		},
		Physics: PhysicsConfig{
			Gravity:          -117.6,
			JumpVelocity:     24,
			HighJumpVelocity: 36,
			MaxJumps:         2,
		},
		Player: PlayerConfig{
			MaxHealth:           100,
			Lives:               3,
			WalkSteps:           1,
			SpeedSteps:          2,
			SpeedDuration:       10,
			HighJumpCharges:     3,
			HealAmount:          20,
			HazardDamage:        1,
			BreakInterval:       0.2,
			ShovelBreakInterval: 0.1,
		},
		Glutton: GluttonConfig{
			WalkSteps:         1,
			PatrolTimeout:     60,
			ProximityRadius:   25,
			TraceStopDistance: 10,
			TracePathDepth:    10,
			WallPathDepth:     3,
			WallScanRange:     10,
			ShotInterval:      1.5,
			JumpVelocity:      30,
			JumpTriggerRows:   5,
			Health:            60,
		},
		Projectile: ProjectileConfig{
			Speed:  0.4,
			Damage: 10,
		},
		Bow: BowConfig{
			MinCharge:          1,
			MaxCharge:          3,
			ChargeRate:         1,
			SpeedPerCharge:     1,
			RangePerCharge:     5,
			Damage:             20,
			StrengthMultiplier: 1.5,
		},
		Levels: []LevelConfig{
			{Name: "level01", File: "levels/level01.csv"},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Save: SaveConfig{
			Enabled: true,
			AppName: "gridrun",
		},
	}
}

// Validate rejects settings that would stall or divide by zero at runtime
func (c *Config) Validate() error {
	positive := []struct {
		key string
		ok  bool
	}{
		{"display.framerate", c.Display.Framerate > 0},
		{"display.tile_pixels", c.Display.TilePixels > 0},
		{"grid.num_tiles_x", c.Grid.NumTilesX > 0},
		{"grid.num_tiles_y", c.Grid.NumTilesY > 0},
		{"grid.steps_per_tile_x", c.Grid.StepsPerTileX > 0},
		{"grid.steps_per_tile_y", c.Grid.StepsPerTileY > 0},
		{"grid.tile_width", c.Grid.TileWidth > 0},
		{"grid.tile_height", c.Grid.TileHeight > 0},
		{"physics.max_jumps", c.Physics.MaxJumps > 0},
		{"bow.min_charge", c.Bow.MinCharge > 0},
	}
	for _, p := range positive {
		if !p.ok {
			return fmt.Errorf("%w: %s must be positive", ErrInvalidConfig, p.key)
		}
	}
	if c.Bow.MaxCharge < c.Bow.MinCharge {
		return fmt.Errorf("%w: bow.max_charge below bow.min_charge", ErrInvalidConfig)
	}
	return nil
}
