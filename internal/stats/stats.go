// Package stats prints a brief per-tree summary after a scan, a direct
// generalization of the teacher's cli/cmd_stats.go (count by status, max
// path depth) applied to a two-tree comparison instead of a single-tree
// duplicate report.
package stats

import (
	"fmt"
	"io"
	"strings"

	"github.com/m-lima/dircmp/internal/directory"
	"github.com/m-lima/dircmp/internal/entry"
)

// Print writes a one-paragraph summary of d to w: total entry count, a
// breakdown by status kind, and the deepest relative path's depth.
func Print(w io.Writer, d *directory.Directory) {
	counts := make(map[entry.Kind]int)
	maxDepth := 0

	for _, e := range d.Entries {
		counts[e.Status.Kind]++
		if depth := strings.Count(e.Path, "/") + 1; depth > maxDepth {
			maxDepth = depth
		}
	}

	fmt.Fprintf(w, "%s: %d entries, max depth %d\n", d.Root, len(d.Entries), maxDepth)
	for _, kind := range []entry.Kind{entry.Same, entry.Moved, entry.Modified, entry.Maybe, entry.Unique, entry.Empty} {
		if n := counts[kind]; n > 0 {
			fmt.Fprintf(w, "  %-8s %d\n", kind, n)
		}
	}
}
