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

// Package bound measures how many comparisons merge-insertion actually makes.
//
// A Survey sorts random permutations of every size in a range, records the
// worst and mean comparison counts, and sets them against ceil(log2(n!)) and
// the classical Ford-Johnson worst case. Sizes are surveyed in parallel on a
// workerpool; each individual sort stays sequential.
package bound

import (
	"cmp"
	"context"
	"math/rand/v2"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-mergeinsertion/mergeinsert"
	"github.com/ajroetker/go-mergeinsertion/mergeinsert/contrib/workerpool"
)

// Result is the outcome for one input size.
type Result struct {
	N           int
	Trials      int
	Max         int
	Mean        float64
	InfoBound   int
	FordJohnson int
}

// Excess returns how far the worst observed count lies above ceil(log2(n!)).
func (r Result) Excess() int {
	return r.Max - r.InfoBound
}

// Survey configures a comparison survey.
type Survey struct {
	// Pool runs the per-size jobs. Required.
	Pool *workerpool.Pool

	// Trials is the number of random permutations sorted per size.
	// Values <= 0 mean 1.
	Trials int

	// Seed makes the permutations reproducible.
	Seed uint64

	// Mode is the search mode used for every sort.
	Mode mergeinsert.SearchMode

	// Logger receives per-size results at debug level. Nil disables logging.
	Logger *zap.Logger
}

// slot keeps each worker's result on its own cache line.
type slot struct {
	Result
	_ cpu.CacheLinePad
}

// Run surveys every size in [from, to] and returns one Result per size in
// ascending order of N.
func (s *Survey) Run(ctx context.Context, from, to int) ([]Result, error) {
	if from < 0 || to < from {
		return nil, errors.Newf("bound: invalid range [%d, %d]", from, to)
	}
	if s.Pool == nil {
		return nil, errors.New("bound: survey has no pool")
	}
	log := s.Logger
	if log == nil {
		log = zap.NewNop()
	}
	trials := max(s.Trials, 1)

	slots := make([]slot, to-from+1)
	err := s.Pool.ForEach(ctx, len(slots), func(ctx context.Context, i int) error {
		n := from + i
		res, err := s.measure(ctx, n, trials)
		if err != nil {
			return err
		}
		slots[i].Result = res
		log.Debug("surveyed size",
			zap.Int("n", n),
			zap.Int("max", res.Max),
			zap.Float64("mean", res.Mean),
			zap.Int("info_bound", res.InfoBound),
			zap.Int("ford_johnson", res.FordJohnson))
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "bound: survey [%d, %d]", from, to)
	}

	results := lo.Map(slots, func(sl slot, _ int) Result { return sl.Result })
	worst := lo.MaxBy(results, func(a, b Result) bool { return a.Excess() > b.Excess() })
	log.Info("survey complete",
		zap.Int("from", from),
		zap.Int("to", to),
		zap.Int("trials", trials),
		zap.Stringer("mode", s.Mode),
		zap.Int("worst_excess", worst.Excess()),
		zap.Int("worst_excess_n", worst.N))
	return results, nil
}

// measure sorts trials random permutations of size n.
func (s *Survey) measure(ctx context.Context, n, trials int) (Result, error) {
	r := rand.New(rand.NewPCG(s.Seed, uint64(n)))
	data := make([]int, n)
	counts := make([]int, trials)

	var c mergeinsert.Counter
	less := mergeinsert.CountLess(&c, cmp.Less[int])
	for t := range trials {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		for i := range data {
			data[i] = i
		}
		r.Shuffle(n, func(i, j int) { data[i], data[j] = data[j], data[i] })

		c.Reset()
		mergeinsert.SortFuncMode(data, less, s.Mode)
		counts[t] = c.Count()
	}

	return Result{
		N:           n,
		Trials:      trials,
		Max:         lo.Max(counts),
		Mean:        float64(lo.Sum(counts)) / float64(trials),
		InfoBound:   mergeinsert.InfoBound(n),
		FordJohnson: mergeinsert.FordJohnsonBound(n),
	}, nil
}
