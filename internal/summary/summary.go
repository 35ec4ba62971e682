// Package summary writes the TSV summary format, per spec.md §6.
//
// Grounded on original_source/src/bin/dircmp/cli/io.rs::write_tsv: one
// line per non-Same entry, skipping entries entirely for Same, and
// emitting Moved/Modified only from the left side to avoid printing each
// pair twice.
package summary

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"

	"github.com/m-lima/dircmp/internal/directory"
	"github.com/m-lima/dircmp/internal/entry"
)

// Write renders the TSV summary of comparing left against right into w.
func Write(w io.Writer, left, right *directory.Directory) error {
	bw := bufio.NewWriter(w)

	if err := writeSide(bw, left, right, true); err != nil {
		return err
	}
	if err := writeSide(bw, right, left, false); err != nil {
		return err
	}

	return bw.Flush()
}

func writeSide(w *bufio.Writer, reference, other *directory.Directory, isLeft bool) error {
	for _, e := range reference.Entries {
		switch e.Status.Kind {
		case entry.Same:
			continue
		case entry.Moved, entry.Modified:
			if !isLeft {
				continue
			}
			otherPath := absPath(other, other.Entries[e.Status.Index].Path)
			if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", absPath(reference, e.Path), e.Status.Kind, otherPath); err != nil {
				return err
			}
		case entry.Maybe:
			if _, err := fmt.Fprintf(w, "%s\t%s", absPath(reference, e.Path), e.Status.Kind); err != nil {
				return err
			}
			for _, idx := range e.Status.Indices {
				if _, err := fmt.Fprintf(w, "\t%s", absPath(other, other.Entries[idx].Path)); err != nil {
					return err
				}
			}
			if _, err := w.WriteString("\n"); err != nil {
				return err
			}
		case entry.Unique, entry.Empty:
			if _, err := fmt.Fprintf(w, "%s\t%s\n", absPath(reference, e.Path), e.Status.Kind); err != nil {
				return err
			}
		}
	}
	return nil
}

// absPath rebuilds the absolute path an entry was discovered at by joining
// its tree's root back onto its (slash-separated, root-relative) Path, per
// spec.md §6's TSV contract — distinct from internal/render, which prints
// Path as-is since the pretty format stays relative.
func absPath(d *directory.Directory, relPath string) string {
	return filepath.Join(d.Root, filepath.FromSlash(relPath))
}
