// Package errs defines the error taxonomy shared by the crawl, match, and
// persistence stages, per spec.md §7.
package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies an Error by the stage and condition that produced it.
type Kind uint8

const (
	// DirUnreadable: a directory could not be opened for listing.
	DirUnreadable Kind = iota
	// EntryUnreadable: a directory entry could not be read during listing.
	EntryUnreadable
	// BrokenSymlink: a symlink's target could not be resolved. Non-fatal;
	// the scanner logs a warning and skips the entry.
	BrokenSymlink
	// OpenFailed: a file could not be opened for hashing.
	OpenFailed
	// ReadFailed: a file could not be read while hashing.
	ReadFailed
	// PrefixStripFailed: an absolute path could not be rebased onto its
	// root to produce a relative path.
	PrefixStripFailed
	// FullCollision: two entries share the same (digest, path) pair.
	FullCollision
	// PoolBuild: the worker pool could not be constructed.
	PoolBuild
)

func (k Kind) String() string {
	switch k {
	case DirUnreadable:
		return "dir_unreadable"
	case EntryUnreadable:
		return "entry_unreadable"
	case BrokenSymlink:
		return "broken_symlink"
	case OpenFailed:
		return "open_failed"
	case ReadFailed:
		return "read_failed"
	case PrefixStripFailed:
		return "prefix_strip_failed"
	case FullCollision:
		return "full_collision"
	case PoolBuild:
		return "pool_build"
	default:
		return "unknown"
	}
}

// Fatal reports whether an error of this Kind must abort the whole
// comparison run. Only BrokenSymlink is recoverable.
func (k Kind) Fatal() bool {
	return k != BrokenSymlink
}

// Error wraps an underlying error with a Kind and the path(s) involved.
type Error struct {
	Kind  Kind
	Path  string
	cause error
}

// New builds an Error of the given Kind, wrapping cause via
// github.com/pkg/errors so callers retain a stack trace and can still
// unwrap to the original error.
func New(kind Kind, path string, cause error) *Error {
	return &Error{Kind: kind, Path: path, cause: errors.WithStack(cause)}
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.cause)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.cause)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Cause returns the root cause, matching github.com/pkg/errors's
// convention used elsewhere in this module.
func (e *Error) Cause() error {
	return errors.Cause(e.cause)
}
