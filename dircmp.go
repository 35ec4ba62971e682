// Package dircmp compares two directory trees, classifying every regular
// file's relationship to the opposite tree as Same, Moved, Modified,
// Maybe, Unique, or Empty, per spec.md.
//
// Grounded on original_source/src/lib.rs's public `compare` entry point.
package dircmp

import (
	"context"
	"runtime"

	"github.com/m-lima/dircmp/internal/directory"
	"github.com/m-lima/dircmp/internal/entry"
	"github.com/m-lima/dircmp/internal/errs"
	"github.com/m-lima/dircmp/internal/pipeline"
)

// Re-exported types so callers of this package never need to import the
// internal packages directly.
type (
	// Directory is the sorted snapshot of one crawled tree.
	Directory = directory.Directory
	// Entry is one file discovered while crawling a tree.
	Entry = entry.Entry
	// Status is an Entry's classification relative to the opposite tree.
	Status = entry.Status
	// Kind discriminates a Status's classification.
	Kind = entry.Kind
	// Error is the classified failure produced while crawling a tree.
	Error = errs.Error
)

// Status kind constants, re-exported for callers.
const (
	Same     = entry.Same
	Moved    = entry.Moved
	Modified = entry.Modified
	Maybe    = entry.Maybe
	Unique   = entry.Unique
	Empty    = entry.Empty
)

// Compare crawls leftRoot and rightRoot concurrently and classifies every
// file found in either tree against the other, returning both trees as
// sorted Directory values with their Entries' Status fields populated.
func Compare(ctx context.Context, leftRoot, rightRoot string) (*Directory, *Directory, error) {
	return pipeline.Compare(ctx, leftRoot, rightRoot, runtime.NumCPU())
}

// CompareWithConcurrency behaves like Compare but overrides the worker
// pool capacity; a capacity of 0 or less defaults to runtime.NumCPU().
func CompareWithConcurrency(ctx context.Context, leftRoot, rightRoot string, concurrency int) (*Directory, *Directory, error) {
	return pipeline.Compare(ctx, leftRoot, rightRoot, concurrency)
}
