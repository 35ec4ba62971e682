// Package render renders a comparison result to the terminal with
// per-status coloring, per spec.md §6.
//
// Grounded on original_source/src/bin/dircmp/cli/io.rs::write_pretty (the
// authoritative, final iteration — green Same, yellow Moved, magenta
// Modified, blue Maybe with a tree-branch listing of every candidate, red
// Unique, cyan Empty), using github.com/fatih/color in place of the
// original's raw ANSI escape codes.
package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/m-lima/dircmp/internal/directory"
	"github.com/m-lima/dircmp/internal/entry"
)

var (
	sameColor     = color.New(color.FgGreen)
	movedColor    = color.New(color.FgYellow)
	modifiedColor = color.New(color.FgMagenta)
	maybeColor    = color.New(color.FgBlue)
	uniqueColor   = color.New(color.FgRed)
	emptyColor    = color.New(color.FgCyan)
)

// side identifies which tree is being rendered, mirroring io.rs's Mode.
type side struct {
	arrow string
}

var (
	left  = side{arrow: "<"}
	right = side{arrow: ">"}
)

// Write renders both directories to w. showMatched additionally prints
// Same entries (from the left side only, to avoid duplicate lines).
func Write(w io.Writer, leftDir, rightDir *directory.Directory, showMatched bool) error {
	if err := writeSide(w, leftDir, rightDir, left, showMatched); err != nil {
		return err
	}
	return writeSide(w, rightDir, leftDir, right, showMatched)
}

func writeSide(w io.Writer, reference, other *directory.Directory, s side, showMatched bool) error {
	if _, err := fmt.Fprintf(w, "Visiting: %s\n", reference.Root); err != nil {
		return err
	}

	for _, e := range reference.Entries {
		switch e.Status.Kind {
		case entry.Same:
			if showMatched && s == left {
				sameColor.Fprintf(w, "%s %-8s", s.arrow, e.Status.Kind)
				fmt.Fprintf(w, " %s\n", e.Path)
			}
		case entry.Moved:
			if s == left {
				movedColor.Fprintf(w, "%s %-8s", s.arrow, e.Status.Kind)
				fmt.Fprintf(w, " %s\n", e.Path)
				movedColor.Fprintf(w, "  └")
				fmt.Fprintf(w, " %s\n", other.Entries[e.Status.Index].Path)
			}
		case entry.Modified:
			if s == left {
				modifiedColor.Fprintf(w, "%s %-8s", s.arrow, e.Status.Kind)
				fmt.Fprintf(w, " %s\n", e.Path)
				modifiedColor.Fprintf(w, "  └")
				fmt.Fprintf(w, " %s\n", other.Entries[e.Status.Index].Path)
			}
		case entry.Maybe:
			if len(e.Status.Indices) == 0 {
				continue
			}
			maybeColor.Fprintf(w, "%s %-8s", s.arrow, e.Status.Kind)
			fmt.Fprintf(w, " %s\n", e.Path)
			head, tail := e.Status.Indices[:len(e.Status.Indices)-1], e.Status.Indices[len(e.Status.Indices)-1]
			for _, idx := range head {
				maybeColor.Fprintf(w, "  ├")
				fmt.Fprintf(w, " %s\n", other.Entries[idx].Path)
			}
			maybeColor.Fprintf(w, "  └")
			fmt.Fprintf(w, " %s\n", other.Entries[tail].Path)
		case entry.Unique:
			uniqueColor.Fprintf(w, "%s %-8s", s.arrow, e.Status.Kind)
			fmt.Fprintf(w, " %s\n", e.Path)
		case entry.Empty:
			emptyColor.Fprintf(w, "%s %-8s", s.arrow, e.Status.Kind)
			fmt.Fprintf(w, " %s\n", e.Path)
		}
	}

	return nil
}
