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

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ajroetker/go-mergeinsertion/cmd/pmergeme/config"
)

// globalOptions are the flags shared by every subcommand.
type globalOptions struct {
	configPath string
	search     string
	logLevel   string
}

func (o *globalOptions) register(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&o.configPath, "config", "", "TOML configuration file")
	flags.StringVar(&o.search, "search", "", "search range for smalls: paired or full")
	flags.StringVar(&o.logLevel, "log-level", "", "log level: debug, info, warn, error")
}

// load resolves the configuration for cmd and builds a logger writing to the
// command's stderr. Flags win over the environment and the config file.
func (o *globalOptions) load(cmd *cobra.Command) (config.Config, *zap.Logger, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return cfg, nil, err
	}
	if cmd.Flags().Changed("search") {
		cfg.Sort.Search = o.search
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return cfg, nil, err
	}

	level, _ := cfg.LogLevel()
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(cmd.ErrOrStderr()), level)
	return cfg, zap.New(core).Named("pmergeme"), nil
}
