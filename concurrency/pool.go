// SPDX-License-Identifier: MIT

package concurrency

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/katalvlaran/gdsgo/errkind"
)

const opRun = "concurrency.run"

// Pool is a fixed set of worker slots shared across runs. Safe for concurrent use.
type Pool struct {
	sem  *semaphore.Weighted
	size int
}

// NewPool returns a pool with size slots. size < 1 is a Configuration error.
func NewPool(size int) (*Pool, error) {
	if size < 1 {
		return nil, errkind.Configf("concurrency.pool", "pool size must be positive, got %d", size)
	}

	return &Pool{sem: semaphore.NewWeighted(int64(size)), size: size}, nil
}

var (
	defaultOnce sync.Once
	defaultPool *Pool
)

// Default returns the process-wide pool sized to runtime.GOMAXPROCS(0).
func Default() *Pool {
	defaultOnce.Do(func() {
		defaultPool, _ = NewPool(runtime.GOMAXPROCS(0))
	})

	return defaultPool
}

// Size returns the number of slots.
func (p *Pool) Size() int {
	return p.size
}

// Task is one unit of work; task is its index in [0, tasks).
type Task func(ctx context.Context, task int) error

// Run executes fn for every index in [0, tasks), at most Size() at a time
// across all runs sharing p.
//
// Stages:
//  1. Acquire a slot (blocks while the pool is saturated).
//  2. Start the task; it releases its slot when it returns.
//  3. Wait for every started task.
//
// The first task error wins. If ctx ends before all tasks were dispatched and
// no task failed, Run returns ctx.Err().
func (p *Pool) Run(ctx context.Context, tasks int, fn Task) error {
	g, gctx := errgroup.WithContext(ctx)

	var dispatchErr error
	for i := 0; i < tasks; i++ {
		// 1) Acquire.
		if err := gctx.Err(); err != nil {
			dispatchErr = err
			break
		}
		if err := p.sem.Acquire(gctx, 1); err != nil {
			dispatchErr = err
			break
		}
		// 2) Start.
		task := i
		g.Go(func() (err error) {
			defer p.sem.Release(1)
			defer func() {
				if r := recover(); r != nil {
					err = errkind.ExecutionWrap(opRun, fmt.Errorf("panic in task %d: %v", task, r))
				}
			}()

			return fn(gctx, task)
		})
	}

	// 3) Wait.
	if err := g.Wait(); err != nil {
		return err
	}
	if dispatchErr != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		return dispatchErr
	}

	return nil
}
