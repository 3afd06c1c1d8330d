// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs independent sort jobs on a fixed set of goroutines.
// A Pool is created once and reused across many batches, so a survey that
// sorts thousands of small inputs does not pay a goroutine spawn per input.
//
// A single merge-insertion sort is sequential; the pool only parallelizes
// across sorts that share nothing.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	err := pool.ForEach(ctx, len(inputs), func(ctx context.Context, i int) error {
//	    mergeinsert.Sort(inputs[i])
//	    return nil
//	})
package workerpool

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Pool is a persistent worker pool. Workers are spawned once at creation and
// reused by every call until Close.
type Pool struct {
	numWorkers int
	jobC       chan batch
	closeOnce  sync.Once
	closed     atomic.Bool
}

// batch is one worker's share of a ForEach call. The result of run is sent
// on done.
type batch struct {
	run  func() error
	done chan<- error
}

// New creates a pool with numWorkers workers.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		jobC:       make(chan batch, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for b := range p.jobC {
		b.done <- b.run()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool after pending batches finish.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.jobC)
	})
}

// ForEach calls fn for every job index in [0, n) and blocks until all calls
// return. Indices are handed out one at a time so that jobs of uneven size
// (larger n sorts take longer) balance across workers.
//
// The first error returned by fn cancels the context passed to the remaining
// calls and is returned. Jobs not yet started when ctx is done are skipped and
// ctx.Err() is returned.
func (p *Pool) ForEach(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	if n <= 0 {
		return ctx.Err()
	}

	g, gctx := errgroup.WithContext(ctx)

	var next, finished atomic.Int64
	loop := func() error {
		for {
			i := int(next.Add(1)) - 1
			if i >= n || gctx.Err() != nil {
				return nil
			}
			if err := fn(gctx, i); err != nil {
				return err
			}
			finished.Add(1)
		}
	}

	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		// Sequential when the pool is closed or there is nothing to share.
		g.Go(loop)
	} else {
		for range workers {
			g.Go(func() error {
				done := make(chan error, 1)
				p.jobC <- batch{run: loop, done: done}
				return <-done
			})
		}
	}

	if err := g.Wait(); err != nil {
		return err
	}
	if int(finished.Load()) < n {
		return ctx.Err()
	}
	return nil
}
