// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads pmergeme settings from a TOML file and the environment.
//
// Precedence, lowest first: Default, the TOML file, PMERGEME_* environment
// variables, command-line flags (applied by the caller).
package config

import (
	"math"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap/zapcore"

	"github.com/ajroetker/go-mergeinsertion/cmd/pmergeme/input"
	"github.com/ajroetker/go-mergeinsertion/mergeinsert"
)

// ErrInvalidConfig marks configuration values that cannot be used.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the full pmergeme configuration.
type Config struct {
	Sort    SortConfig    `toml:"sort"`
	Input   InputConfig   `toml:"input"`
	Display DisplayConfig `toml:"display"`
	Bound   BoundConfig   `toml:"bound"`
	Log     LogConfig     `toml:"log"`
}

// SortConfig selects the search mode: "paired" or "full".
type SortConfig struct {
	Search string `toml:"search"`
}

type InputConfig struct {
	// largest accepted value, at most 4294967295
	MaxValue int64 `toml:"max_value"`
}

type DisplayConfig struct {
	// 0 prints every element
	MaxElements int `toml:"max_elements"`
}

type BoundConfig struct {
	// 0 uses GOMAXPROCS
	Workers int    `toml:"workers"`
	Trials  int    `toml:"trials"`
	Seed    uint64 `toml:"seed"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the built-in configuration. The search mode starts from
// mergeinsert.CurrentSearchMode, so MERGEINSERT_SEARCH seeds it.
func Default() Config {
	return Config{
		Sort:    SortConfig{Search: mergeinsert.CurrentSearchMode().String()},
		Input:   InputConfig{MaxValue: input.DefaultMaxValue},
		Display: DisplayConfig{MaxElements: 0},
		Bound:   BoundConfig{Workers: 0, Trials: 100, Seed: 1},
		Log:     LogConfig{Level: "warn"},
	}
}

// Load returns Default overlaid with the file at path (if path is not empty)
// and the environment. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "load config %s", path)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("PMERGEME_SEARCH"); ok {
		c.Sort.Search = v
	}
	if v, ok := lookup("PMERGEME_LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	if v, ok := lookup("PMERGEME_MAX_DISPLAY"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Mark(errors.Newf("PMERGEME_MAX_DISPLAY=%q is not an integer", v), ErrInvalidConfig)
		}
		c.Display.MaxElements = n
	}
	if v, ok := lookup("PMERGEME_WORKERS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Mark(errors.Newf("PMERGEME_WORKERS=%q is not an integer", v), ErrInvalidConfig)
		}
		c.Bound.Workers = n
	}
	return nil
}

// Validate checks every field. Errors are marked with ErrInvalidConfig.
func (c Config) Validate() error {
	if _, err := c.SearchMode(); err != nil {
		return errors.Mark(errors.Wrap(err, "sort.search"), ErrInvalidConfig)
	}
	if c.Input.MaxValue < 0 || c.Input.MaxValue > math.MaxUint32 {
		return errors.Mark(errors.Newf("input.max_value %d out of range [0, %d]", c.Input.MaxValue, uint64(math.MaxUint32)), ErrInvalidConfig)
	}
	if c.Display.MaxElements < 0 {
		return errors.Mark(errors.Newf("display.max_elements %d is negative", c.Display.MaxElements), ErrInvalidConfig)
	}
	if c.Bound.Workers < 0 {
		return errors.Mark(errors.Newf("bound.workers %d is negative", c.Bound.Workers), ErrInvalidConfig)
	}
	if c.Bound.Trials <= 0 {
		return errors.Mark(errors.Newf("bound.trials %d must be positive", c.Bound.Trials), ErrInvalidConfig)
	}
	if _, err := c.LogLevel(); err != nil {
		return errors.Mark(errors.Wrap(err, "log.level"), ErrInvalidConfig)
	}
	return nil
}

// SearchMode parses Sort.Search.
func (c Config) SearchMode() (mergeinsert.SearchMode, error) {
	return mergeinsert.ParseSearchMode(c.Sort.Search)
}

// LogLevel parses Log.Level.
func (c Config) LogLevel() (zapcore.Level, error) {
	return zapcore.ParseLevel(c.Log.Level)
}
