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
	"cmp"
	"io"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/go-mergeinsertion/cmd/pmergeme/input"
	"github.com/ajroetker/go-mergeinsertion/cmd/pmergeme/report"
	"github.com/ajroetker/go-mergeinsertion/mergeinsert"
)

type sortOptions struct {
	file       string
	count      bool
	maxDisplay int
}

func newRootCommand() *cobra.Command {
	global := &globalOptions{}
	opts := &sortOptions{}

	cmd := &cobra.Command{
		Use:   "pmergeme [numbers...]",
		Short: "Sort distinct non-negative integers with Ford-Johnson merge-insertion",
		Args: func(cmd *cobra.Command, args []string) error {
			if opts.file == "" && len(args) == 0 {
				return errors.New("expected at least one number or --file")
			}
			if opts.file != "" && len(args) > 0 {
				return errors.New("numbers and --file are mutually exclusive")
			}
			return nil
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort(cmd, global, opts, args)
		},
	}
	global.register(cmd)

	flags := cmd.Flags()
	flags.StringVarP(&opts.file, "file", "f", "", "read whitespace-separated numbers from a file ('-' for stdin)")
	flags.BoolVar(&opts.count, "count", false, "print the number of comparisons and the bounds")
	flags.IntVar(&opts.maxDisplay, "max-display", 0, "print at most this many elements per line (0 for all)")

	cmd.AddCommand(newOrderCommand(global), newBoundCommand(global))
	return cmd
}

func runSort(cmd *cobra.Command, global *globalOptions, opts *sortOptions, args []string) error {
	cfg, log, err := global.load(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if cmd.Flags().Changed("max-display") {
		cfg.Display.MaxElements = opts.maxDisplay
	}
	if cfg.Display.MaxElements < 0 {
		return errors.Newf("--max-display %d is negative", cfg.Display.MaxElements)
	}

	parser := input.NewParser(uint32(cfg.Input.MaxValue))
	var data []int
	if opts.file != "" {
		data, err = readFile(cmd, parser, opts.file)
	} else {
		data, err = parser.Parse(args)
	}
	if err != nil {
		return err
	}

	mode, _ := cfg.SearchMode()
	p := report.NewPrinter(cmd.OutOrStdout(), cfg.Display.MaxElements)
	if err := p.Sequence("Before", data); err != nil {
		return err
	}

	var counter mergeinsert.Counter
	less := cmp.Less[int]
	if opts.count {
		less = mergeinsert.CountLess(&counter, less)
	}

	start := time.Now()
	mergeinsert.SortFuncMode(data, less, mode)
	elapsed := time.Since(start)

	log.Debug("sorted",
		zap.Int("n", len(data)),
		zap.Stringer("mode", mode),
		zap.Duration("elapsed", elapsed))

	if err := p.Sequence("After ", data); err != nil {
		return err
	}
	if err := p.Timing(len(data), "[]int", elapsed); err != nil {
		return err
	}
	if opts.count {
		return p.Comparisons(len(data), counter.Count(),
			mergeinsert.InfoBound(len(data)), mergeinsert.FordJohnsonBound(len(data)))
	}
	return nil
}

func readFile(cmd *cobra.Command, parser *input.Parser, path string) ([]int, error) {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "open input")
		}
		defer f.Close()
		r = f
	}
	return parser.Read(r)
}
