// Package reconcile implements the `copy` post-processor: materializing a
// single reconciled tree out of a comparison result.
//
// Grounded on original_source/src/bin/dircmp/cli/copy.rs: unconflicting
// files (Same in the reference/left tree) are copied first, then every
// derived/right-tree file that isn't Same or Modified (Moved, Maybe,
// Unique, Empty) is copied in, tagged by the reason it's being copied.
package reconcile

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/m-lima/dircmp/internal/directory"
	"github.com/m-lima/dircmp/internal/entry"
)

// Copy reconciles reference (left) and derived (right) into target,
// returning the number of files copied.
func Copy(reference, derived *directory.Directory, target string) (int, error) {
	n, err := copyReference(reference, target)
	if err != nil {
		return 0, err
	}

	m, err := copyDerived(derived, target)
	if err != nil {
		return 0, err
	}

	return n + m, nil
}

func copyReference(reference *directory.Directory, target string) (int, error) {
	count := 0
	for _, e := range reference.Entries {
		if e.Status.Kind != entry.Same {
			continue
		}
		if err := copyFile("unconflicting", reference.Root, target, e.Path); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func copyDerived(derived *directory.Directory, target string) (int, error) {
	count := 0
	for _, e := range derived.Entries {
		var reason string
		switch e.Status.Kind {
		case entry.Moved:
			reason = "moved"
		case entry.Maybe:
			reason = "merged"
		case entry.Unique:
			reason = "new"
		case entry.Empty:
			reason = "empty"
		default:
			continue
		}
		if err := copyFile(reason, derived.Root, target, e.Path); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func copyFile(reason, src, dst, relPath string) error {
	target := filepath.Join(dst, relPath)
	logrus.Infof("copying %s file %q", reason, target)

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return errors.Wrapf(err, "could not create dir for %s", target)
	}

	in, err := os.Open(filepath.Join(src, relPath))
	if err != nil {
		return errors.Wrapf(err, "could not open %s", relPath)
	}
	defer in.Close()

	out, err := os.Create(target)
	if err != nil {
		return errors.Wrapf(err, "could not create %s", target)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return errors.Wrapf(err, "could not copy file %s", target)
	}

	return nil
}
