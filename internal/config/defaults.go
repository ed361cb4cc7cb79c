package config

import (
	_ "embed"
)

//go:embed defaults/stg.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TickRate: 60,
		Playfield: Playfield{
			Width:  600,
			Height: 600,
		},
		Player: PlayerShip{
			Body:   Body{Speed: 800, Width: 100, Height: 100},
			StartX: 0,
			StartY: 0,
		},
		Enemy:      Body{Speed: 100, Width: 50, Height: 50},
		PlayerShot: Body{Speed: 1000, Width: 10, Height: 10},
		EnemyShot:  Body{Speed: 500, Width: 10, Height: 10},
		Spawn: SpawnConfig{
			RollRange: 100,
			Sentinel:  0,
		},
		CullOffscreen: false,
		Input: InputConfig{
			HoldTicks:    37,
			RepressTicks: 3,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
