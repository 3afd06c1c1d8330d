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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/ajroetker/go-mergeinsertion/mergeinsert"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pmergeme.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	mode, err := cfg.SearchMode()
	require.NoError(t, err)
	require.Equal(t, mergeinsert.CurrentSearchMode(), mode)
	require.EqualValues(t, 2147483647, cfg.Input.MaxValue)
}

func TestDefaultFollowsPackageSearchMode(t *testing.T) {
	prev := mergeinsert.SetSearchMode(mergeinsert.SearchFull)
	defer mergeinsert.SetSearchMode(prev)

	cfg := Default()
	require.Equal(t, "full", cfg.Sort.Search)
	mode, err := cfg.SearchMode()
	require.NoError(t, err)
	require.Equal(t, mergeinsert.SearchFull, mode)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[sort]
search = "full"

[input]
max_value = 1000

[display]
max_elements = 8

[bound]
workers = 2
trials = 10
seed = 42

[log]
level = "debug"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "full", cfg.Sort.Search)
	require.EqualValues(t, 1000, cfg.Input.MaxValue)
	require.Equal(t, 8, cfg.Display.MaxElements)
	require.Equal(t, BoundConfig{Workers: 2, Trials: 10, Seed: 42}, cfg.Bound)

	level, err := cfg.LogLevel()
	require.NoError(t, err)
	require.Equal(t, zapcore.DebugLevel, level)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "[display]\nmax_elements = 3\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Display.MaxElements)
	require.Equal(t, Default().Bound, cfg.Bound)
	require.Equal(t, Default().Sort, cfg.Sort)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestLoadMalformedFile(t *testing.T) {
	_, err := Load(writeConfig(t, "[sort\nsearch="))
	require.Error(t, err)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("PMERGEME_SEARCH", "full")
	t.Setenv("PMERGEME_MAX_DISPLAY", "5")
	t.Setenv("PMERGEME_WORKERS", "3")
	t.Setenv("PMERGEME_LOG_LEVEL", "error")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "full", cfg.Sort.Search)
	require.Equal(t, 5, cfg.Display.MaxElements)
	require.Equal(t, 3, cfg.Bound.Workers)
	require.Equal(t, "error", cfg.Log.Level)
}

func TestLoadEnvNotInteger(t *testing.T) {
	t.Setenv("PMERGEME_WORKERS", "many")
	_, err := Load("")
	require.True(t, errors.Is(err, ErrInvalidConfig), "got %v", err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"search", func(c *Config) { c.Sort.Search = "sideways" }},
		{"max value negative", func(c *Config) { c.Input.MaxValue = -1 }},
		{"max value too large", func(c *Config) { c.Input.MaxValue = 1 << 33 }},
		{"display", func(c *Config) { c.Display.MaxElements = -1 }},
		{"workers", func(c *Config) { c.Bound.Workers = -2 }},
		{"trials", func(c *Config) { c.Bound.Trials = 0 }},
		{"log level", func(c *Config) { c.Log.Level = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrInvalidConfig), "got %v", err)
		})
	}
}
