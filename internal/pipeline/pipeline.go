// Package pipeline coordinates the crawl (scan+hash+accumulate) stage for
// one tree and the two-pass match stage across both trees, per spec.md
// §4.G and original_source/src/crawler.rs::crawl / src/lib.rs::compare.
package pipeline

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/m-lima/dircmp/internal/accumulator"
	"github.com/m-lima/dircmp/internal/directory"
	"github.com/m-lima/dircmp/internal/matcher"
	"github.com/m-lima/dircmp/internal/scanner"
	"github.com/m-lima/dircmp/internal/workerpool"
)

// Crawl walks and hashes every file under root, returning the sorted
// Directory, per spec.md §4.G.
func Crawl(ctx context.Context, pool *workerpool.Pool, root string) (*directory.Directory, error) {
	log := logrus.WithField("root", root)
	log.Info("indexing")
	start := time.Now()

	messages := scanner.Scan(ctx, pool, root)
	entries, err := accumulator.Accumulate(messages, log)
	if err != nil {
		return nil, err
	}

	log.Infof("finished indexing %d items in %s", len(entries), time.Since(start))
	return directory.New(root, entries), nil
}

// Compare crawls left and right concurrently, then runs the two-pass
// matcher across them, per original_source/src/lib.rs::compare. The
// worker pool is shared across both crawls; the match stage does not use
// it and runs on its own goroutines inside matcher.Run.
func Compare(ctx context.Context, leftRoot, rightRoot string, capacity int) (*directory.Directory, *directory.Directory, error) {
	pool := workerpool.New(ctx, capacity)

	var left, right *directory.Directory
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		left, err = Crawl(gctx, pool, leftRoot)
		return err
	})
	g.Go(func() error {
		var err error
		right, err = Crawl(gctx, pool, rightRoot)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	if err := pool.Wait(); err != nil {
		return nil, nil, err
	}

	if err := matcher.Run(ctx, left.Entries, right.Entries); err != nil {
		return nil, nil, err
	}

	return left, right, nil
}
