// Package config provides YAML-based configuration loading for the puzzle
// runner: where inputs and answers live, and the per-day parameters that
// differ between the published samples and the real inputs.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate for out-of-range parameters.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the top-level configuration.
type Config struct {
	Inputs  InputsConfig  `yaml:"inputs"`
	Storage StorageConfig `yaml:"storage"`
	Days    DaysConfig    `yaml:"days"`
}

// InputsConfig locates puzzle input files.
type InputsConfig struct {
	Dir string `yaml:"dir"`
}

// StorageConfig locates the answer history database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// DaysConfig holds the parameters of the days that need any.
type DaysConfig struct {
	Day06 PatrolConfig `yaml:"day06"`
	Day11 BlinkConfig  `yaml:"day11"`
	Day13 ClawConfig   `yaml:"day13"`
	Day14 RobotConfig  `yaml:"day14"`
	Day18 MemoryConfig `yaml:"day18"`
	Day20 CheatConfig  `yaml:"day20"`
}

// PatrolConfig controls the guard patrol loop search.
type PatrolConfig struct {
	Workers int `yaml:"workers"` // 0 = one per CPU
}

// BlinkConfig sets how many times the stones blink in each part.
type BlinkConfig struct {
	Part1 int `yaml:"part1"`
	Part2 int `yaml:"part2"`
}

// ClawConfig sets the prize offset added in part 2.
type ClawConfig struct {
	PrizeOffset int64 `yaml:"prize_offset"`
}

// RobotConfig describes the robots' wrapping space.
type RobotConfig struct {
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	Seconds int `yaml:"seconds"`
}

// MemoryConfig describes the falling-bytes memory space.
type MemoryConfig struct {
	Size  int `yaml:"size"`  // side length
	Bytes int `yaml:"bytes"` // bytes fallen before part 1
}

// CheatConfig controls the race condition cheats.
type CheatConfig struct {
	MinSaving int `yaml:"min_saving"`
	Short     int `yaml:"short"` // cheat duration in part 1
	Long      int `yaml:"long"`  // cheat duration in part 2
}

// Validate reports the first parameter that cannot produce an answer.
func (c Config) Validate() error {
	d := c.Days
	checks := []struct {
		name  string
		value int64
	}{
		{"days.day11.part1", int64(d.Day11.Part1)},
		{"days.day11.part2", int64(d.Day11.Part2)},
		{"days.day14.width", int64(d.Day14.Width)},
		{"days.day14.height", int64(d.Day14.Height)},
		{"days.day18.size", int64(d.Day18.Size)},
		{"days.day20.short", int64(d.Day20.Short)},
		{"days.day20.long", int64(d.Day20.Long)},
	}
	for _, check := range checks {
		if check.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, check.name, check.value)
		}
	}
	if d.Day06.Workers < 0 {
		return fmt.Errorf("%w: days.day06.workers must not be negative", ErrInvalidConfig)
	}
	if d.Day13.PrizeOffset < 0 || d.Day14.Seconds < 0 || d.Day18.Bytes < 0 || d.Day20.MinSaving < 0 {
		return fmt.Errorf("%w: offsets and counts must not be negative", ErrInvalidConfig)
	}
	return nil
}

// ApplySample swaps in the parameters used by the published sample inputs.
func ApplySample(cfg *Config) {
	cfg.Days.Day14.Width = 11
	cfg.Days.Day14.Height = 7
	cfg.Days.Day18.Size = 7
	cfg.Days.Day18.Bytes = 12
	cfg.Days.Day20.MinSaving = 50
}
