package config

import (
	_ "embed"
)

//go:embed defaults/xmas.yaml
var defaultYAML []byte

// Default returns the built-in configuration for real puzzle inputs.
func Default() Config {
	return Config{
		Inputs: InputsConfig{
			Dir: "inputs",
		},
		Storage: StorageConfig{
			Path: "~/.xmas/answers.db",
		},
		Days: DefaultDays(),
	}
}

// DefaultDays returns the built-in per-day parameters.
func DefaultDays() DaysConfig {
	return DaysConfig{
		Day06: PatrolConfig{Workers: 0},
		Day11: BlinkConfig{Part1: 25, Part2: 75},
		Day13: ClawConfig{PrizeOffset: 10000000000000},
		Day14: RobotConfig{Width: 101, Height: 103, Seconds: 100},
		Day18: MemoryConfig{Size: 71, Bytes: 1024},
		Day20: CheatConfig{MinSaving: 100, Short: 2, Long: 20},
	}
}
