// Package workerpool provides a fixed-capacity task dispatch substrate
// shared by the scanner and hasher stages.
//
// It combines golang.org/x/sync/errgroup (error propagation and
// first-error cancellation) with golang.org/x/sync/semaphore (bounded
// fan-out), following the pattern demonstrated by the corpus's
// errgroup-bounded walker and semaphore-gated recursive scanner: a
// goroutine is spawned per unit of work, but a weighted semaphore caps how
// many run concurrently, so a tree with a million files doesn't spawn a
// million live goroutines waiting on I/O at once.
package workerpool

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Pool dispatches work-items with bounded concurrency and first-error
// cancellation, per spec.md §4.J.
type Pool struct {
	sem *semaphore.Weighted
	g   *errgroup.Group
	ctx context.Context
}

// New creates a Pool with the given root context and capacity. A capacity
// of 0 or less defaults to runtime.NumCPU().
func New(ctx context.Context, capacity int) *Pool {
	if capacity <= 0 {
		capacity = runtime.NumCPU()
	}
	g, gctx := errgroup.WithContext(ctx)
	return &Pool{
		sem: semaphore.NewWeighted(int64(capacity)),
		g:   g,
		ctx: gctx,
	}
}

// Context returns the pool's cancelable context; it is canceled as soon as
// any submitted task returns an error.
func (p *Pool) Context() context.Context {
	return p.ctx
}

// Go submits fn to run once a slot is free. fn's error, if any, cancels
// every other in-flight and future task via the pool's context.
func (p *Pool) Go(fn func(ctx context.Context) error) {
	p.g.Go(func() error {
		if err := p.sem.Acquire(p.ctx, 1); err != nil {
			return err
		}
		defer p.sem.Release(1)
		return fn(p.ctx)
	})
}

// Wait blocks until every submitted task has returned, and reports the
// first error encountered, if any.
func (p *Pool) Wait() error {
	return p.g.Wait()
}
