// Package matcher implements the two-pass algorithm that classifies every
// entry in a left tree against a right tree, and vice versa.
//
// Both passes parallelize over one side's entries while writing into the
// opposite side's slice. This is safe without locking because each
// goroutine only ever writes its own index in its own slice plus, at most,
// one index in the opposite slice (the corresponding match) — and no two
// goroutines in the same pass share a corresponding index, since a digest
// equal to an empty file's digest is special-cased away from the
// cross-write path and every other correspondence is 1:1 for the indices
// actually written to (Same/Moved/Modified). See spec.md §5 and §9 for the
// full argument; this mirrors the disjoint raw-pointer writes in
// original_source/src/linker.rs, expressed in Go without unsafe since Go
// slices already hand each goroutine a distinct backing address per index.
package matcher

import (
	"context"
	"sort"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/m-lima/dircmp/internal/digest"
	"github.com/m-lima/dircmp/internal/directory"
	"github.com/m-lima/dircmp/internal/entry"
)

// concurrency caps how many goroutines a pass spawns at once; 0 leaves the
// choice to runtime.GOMAXPROCS via errgroup.SetLimit(-1) semantics (no
// limit), which is fine here since each unit of work is cheap (index math
// plus a couple of binary searches, no I/O).
const concurrency = 0

// Run performs PassOne followed by PassTwo, mutating left and right's
// Status fields in place.
func Run(ctx context.Context, left, right []entry.Entry) error {
	if err := PassOne(ctx, left, right); err != nil {
		return err
	}
	return PassTwo(ctx, left, right)
}

// PassOne classifies every entry in left against right, per
// original_source/src/linker.rs::first_pass. Entries with an exact
// (digest, path) match, or with no digest match but a same-path entry in
// right, are written as Same/Modified on both sides; entries whose digest
// occurs in right become Maybe listing every candidate (PassTwo may later
// upgrade a single-candidate Maybe to Moved); entries with neither are
// left Unique.
func PassOne(ctx context.Context, left, right []entry.Entry) error {
	log := logrus.WithField("pass", 1)
	log.Debug("starting first pass")

	rightDir := &directory.Directory{Entries: right}

	g, gctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	for i := range left {
		i := i
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			classifyLeft(left, right, rightDir, i)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	log.Debug("finished first pass")
	return nil
}

func classifyLeft(left, right []entry.Entry, rightDir *directory.Directory, leftIdx int) {
	e := &left[leftIdx]
	target := *e

	if i, ok := binarySearchEntry(right, target); ok {
		e.Status = entry.Status{Kind: entry.Same, Index: i}
		right[i].Status = entry.Status{Kind: entry.Same, Index: leftIdx}
		return
	} else if e.Digest.IsEmpty() {
		e.Status = entry.Status{Kind: entry.Empty}
		return
	} else {
		indices := matchingHashes(rightDir, e.Digest)
		switch len(indices) {
		case 0:
			if j, found := findByPath(right, e.Path); found {
				e.Status = entry.Status{Kind: entry.Modified, Index: j}
				right[j].Status = entry.Status{Kind: entry.Modified, Index: leftIdx}
			} else {
				e.Status = entry.Status{Kind: entry.Unique}
			}
		default:
			e.Status = entry.Status{Kind: entry.Maybe, Indices: indices}
		}
	}
}

// PassTwo classifies every entry in right still marked Unique against
// left, per original_source/src/linker.rs::second_pass. A right-side entry
// resolving to exactly one left candidate becomes Moved, and if that left
// candidate was a single-candidate Maybe it is upgraded to Moved too.
func PassTwo(ctx context.Context, left, right []entry.Entry) error {
	log := logrus.WithField("pass", 2)
	log.Debug("starting second pass")

	leftDir := &directory.Directory{Entries: left}

	g, gctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	for i := range right {
		i := i
		if right[i].Status.Kind != entry.Unique {
			continue
		}
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			classifyRight(left, right, leftDir, i, log)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	log.Debug("finished second pass")
	return nil
}

func classifyRight(left, right []entry.Entry, leftDir *directory.Directory, rightIdx int, log *logrus.Entry) {
	e := &right[rightIdx]
	target := *e

	if i, ok := binarySearchEntry(left, target); ok {
		e.Status = entry.Status{Kind: entry.Same, Index: i}
		log.Warnf("marking unexpected SAME on second pass for %s", e.Path)
		return
	} else if e.Digest.IsEmpty() {
		e.Status = entry.Status{Kind: entry.Empty}
		return
	} else {
		indices := matchingHashes(leftDir, e.Digest)
		switch len(indices) {
		case 0:
			e.Status = entry.Status{Kind: entry.Unique}
		case 1:
			leftIdx := indices[0]
			correspondent := &left[leftIdx]
			if correspondent.Status.Kind == entry.Maybe {
				if len(correspondent.Status.Indices) == 1 {
					correspondent.Status = entry.Status{Kind: entry.Moved, Index: correspondent.Status.Indices[0]}
				}
			} else {
				log.Warnf("expected MAYBE on left side during second pass for %s, but got %s", e.Path, correspondent.Status.Kind)
			}
			e.Status = entry.Status{Kind: entry.Moved, Index: leftIdx}
		default:
			e.Status = entry.Status{Kind: entry.Maybe, Indices: indices}
		}
	}
}

// binarySearchEntry mirrors Vec::binary_search on the full (digest, path)
// ordering, returning the exact index and true on a hit, or the insertion
// point and false otherwise.
func binarySearchEntry(haystack []entry.Entry, target entry.Entry) (int, bool) {
	i := sort.Search(len(haystack), func(i int) bool {
		return !entry.Less(haystack[i], target)
	})
	if i < len(haystack) && entry.Compare(haystack[i], target) == 0 {
		return i, true
	}
	return i, false
}

// findByPath linearly scans haystack for an entry at the given relative
// path, mirroring linker.rs's right.iter().position(...) fallback used to
// distinguish Modified (same path, different content) from Unique.
func findByPath(haystack []entry.Entry, path string) (int, bool) {
	for i, e := range haystack {
		if e.Path == path {
			return i, true
		}
	}
	return 0, false
}

// matchingHashes finds every index in children sharing digest h, delegating
// to Directory.HashRange for the bounded-prefix search that
// original_source/src/linker.rs::matching_hashes performs inline; reusing
// it here keeps this one binary-search-then-scan implementation as the
// single source of truth instead of a second, independently-maintained copy.
func matchingHashes(children *directory.Directory, h digest.Digest) []int {
	lo, hi := children.HashRange(h)
	if lo == hi {
		return nil
	}
	indices := make([]int, hi-lo)
	for i := range indices {
		indices[i] = lo + i
	}
	return indices
}
