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
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-mergeinsertion/cmd/pmergeme/input"
	"github.com/ajroetker/go-mergeinsertion/cmd/pmergeme/report"
	"github.com/ajroetker/go-mergeinsertion/mergeinsert"
)

func newOrderCommand(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "order <n>",
		Short: "Print the order in which n smalls are inserted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := global.load(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			n, err := strconv.Atoi(args[0])
			if err != nil || n < 0 {
				return errors.Mark(errors.Newf("invalid input -> %s", args[0]), input.ErrInvalidInput)
			}
			p := report.NewPrinter(cmd.OutOrStdout(), cfg.Display.MaxElements)
			return p.Order(n, mergeinsert.InsertionOrder(n))
		},
	}
}
