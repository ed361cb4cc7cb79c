// Package config provides YAML-based configuration loading for the shooter.
package config

import (
	"errors"
	"fmt"
)

// Config contains all tunable parameters of the simulation and its terminal host.
type Config struct {
	TickRate      int         `yaml:"tick_rate"`
	Playfield     Playfield   `yaml:"playfield"`
	Player        PlayerShip  `yaml:"player"`
	Enemy         Body        `yaml:"enemy"`
	PlayerShot    Body        `yaml:"player_shot"`
	EnemyShot     Body        `yaml:"enemy_shot"`
	Spawn         SpawnConfig `yaml:"spawn"`
	CullOffscreen bool        `yaml:"cull_offscreen"` // Destroy entities that leave the playfield
	Input         InputConfig `yaml:"input"`
}

// Playfield defines the visible world area, centered on the origin.
type Playfield struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Body defines the speed and box size of one entity category.
type Body struct {
	Speed  float64 `yaml:"speed"`  // Units per second
	Width  float64 `yaml:"width"`  // Full box width
	Height float64 `yaml:"height"` // Full box height
}

// PlayerShip defines the player's body and spawn point.
type PlayerShip struct {
	Body   `yaml:",inline"`
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
}

// SpawnConfig defines the per-tick spawn rolls.
// A spawn happens when a uniform draw in [0, RollRange) equals Sentinel.
type SpawnConfig struct {
	RollRange int `yaml:"roll_range"`
	Sentinel  int `yaml:"sentinel"`
}

// InputConfig defines how the terminal host derives held keys.
type InputConfig struct {
	// HoldTicks is how many ticks a key stays held after its last key event.
	// Terminals only report presses and auto-repeat, never releases.
	HoldTicks int `yaml:"hold_ticks"`
	// RepressTicks is the quiet gap after which a key event counts as a new
	// press. It must exceed the keyboard auto-repeat interval.
	RepressTicks int `yaml:"repress_ticks"`
}

// ErrInvalid is returned by Validate for out-of-range values.
var ErrInvalid = errors.New("config: invalid value")

// Validate checks that every size, speed and rate is usable.
func (c Config) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalid, c.TickRate)
	}
	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		return fmt.Errorf("%w: playfield must have positive size", ErrInvalid)
	}
	bodies := map[string]Body{
		"player":      c.Player.Body,
		"enemy":       c.Enemy,
		"player_shot": c.PlayerShot,
		"enemy_shot":  c.EnemyShot,
	}
	for name, b := range bodies {
		if b.Width <= 0 || b.Height <= 0 {
			return fmt.Errorf("%w: %s box must have positive size", ErrInvalid, name)
		}
		if b.Speed < 0 {
			return fmt.Errorf("%w: %s speed must not be negative", ErrInvalid, name)
		}
	}
	if c.Spawn.RollRange <= 0 {
		return fmt.Errorf("%w: spawn.roll_range must be positive, got %d", ErrInvalid, c.Spawn.RollRange)
	}
	if c.Spawn.Sentinel < 0 || c.Spawn.Sentinel >= c.Spawn.RollRange {
		return fmt.Errorf("%w: spawn.sentinel %d outside [0, %d)", ErrInvalid, c.Spawn.Sentinel, c.Spawn.RollRange)
	}
	if c.Input.HoldTicks < 1 {
		return fmt.Errorf("%w: input.hold_ticks must be at least 1", ErrInvalid)
	}
	if c.Input.RepressTicks < 1 || c.Input.RepressTicks > c.Input.HoldTicks {
		return fmt.Errorf("%w: input.repress_ticks %d outside [1, %d]", ErrInvalid, c.Input.RepressTicks, c.Input.HoldTicks)
	}
	return nil
}
