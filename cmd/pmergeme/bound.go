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
	"fmt"
	"text/tabwriter"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-mergeinsertion/mergeinsert/contrib/bound"
	"github.com/ajroetker/go-mergeinsertion/mergeinsert/contrib/workerpool"
)

type boundOptions struct {
	from, to int
	trials   int
	workers  int
	seed     uint64
}

func newBoundCommand(global *globalOptions) *cobra.Command {
	opts := &boundOptions{}
	cmd := &cobra.Command{
		Use:   "bound",
		Short: "Count comparisons on random inputs and compare with the theoretical bounds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBound(cmd, global, opts)
		},
	}
	flags := cmd.Flags()
	flags.IntVar(&opts.from, "from", 1, "smallest input size")
	flags.IntVar(&opts.to, "to", 32, "largest input size")
	flags.IntVar(&opts.trials, "trials", 0, "random inputs per size (default from config)")
	flags.IntVar(&opts.workers, "workers", 0, "worker goroutines (default from config, 0 for GOMAXPROCS)")
	flags.Uint64Var(&opts.seed, "seed", 0, "random seed (default from config)")
	return cmd
}

func runBound(cmd *cobra.Command, global *globalOptions, opts *boundOptions) error {
	cfg, log, err := global.load(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	flags := cmd.Flags()
	if flags.Changed("trials") {
		cfg.Bound.Trials = opts.trials
	}
	if flags.Changed("workers") {
		cfg.Bound.Workers = opts.workers
	}
	if flags.Changed("seed") {
		cfg.Bound.Seed = opts.seed
	}
	if cfg.Bound.Trials <= 0 {
		return errors.Newf("--trials %d must be positive", cfg.Bound.Trials)
	}

	pool := workerpool.New(cfg.Bound.Workers)
	defer pool.Close()

	mode, _ := cfg.SearchMode()
	survey := &bound.Survey{
		Pool:   pool,
		Trials: cfg.Bound.Trials,
		Seed:   cfg.Bound.Seed,
		Mode:   mode,
		Logger: log,
	}
	results, err := survey.Run(cmd.Context(), opts.from, opts.to)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "n\ttrials\tmax\tmean\tceil(log2 n!)\tford-johnson\texcess\t")
	for _, r := range results {
		fmt.Fprintf(w, "%d\t%d\t%d\t%.2f\t%d\t%d\t%d\t\n",
			r.N, r.Trials, r.Max, r.Mean, r.InfoBound, r.FordJohnson, r.Excess())
	}
	return w.Flush()
}
