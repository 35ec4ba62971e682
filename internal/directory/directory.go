// Package directory holds the sorted, immutable-after-construction
// snapshot of one crawled tree.
package directory

import (
	"sort"

	"github.com/m-lima/dircmp/internal/digest"
	"github.com/m-lima/dircmp/internal/entry"
)

// Directory is a sorted (by Digest, then Path) view of every file found
// under one root, per spec.md §3's Directory invariant.
type Directory struct {
	Root    string
	Entries []entry.Entry
}

// New wraps an already-sorted entry slice. Callers that cannot guarantee
// sort order should use NewUnsorted instead.
func New(root string, sorted []entry.Entry) *Directory {
	return &Directory{Root: root, Entries: sorted}
}

// NewUnsorted sorts entries by (Digest, Path) before wrapping them.
func NewUnsorted(root string, entries []entry.Entry) *Directory {
	sort.Slice(entries, func(i, j int) bool {
		return entry.Less(entries[i], entries[j])
	})
	return New(root, entries)
}

// Len returns the number of entries.
func (d *Directory) Len() int {
	return len(d.Entries)
}

// Find performs an exact binary search for (digest, path), returning the
// index and true on a match, or the insertion point and false otherwise.
func (d *Directory) Find(target entry.Entry) (int, bool) {
	i := sort.Search(len(d.Entries), func(i int) bool {
		return !entry.Less(d.Entries[i], target)
	})
	if i < len(d.Entries) && entry.Compare(d.Entries[i], target) == 0 {
		return i, true
	}
	return i, false
}

// LowerBound returns the index of the first entry whose digest is not less
// than h, per the total order of Entries.
func (d *Directory) LowerBound(h digest.Digest) int {
	return sort.Search(len(d.Entries), func(i int) bool {
		return !d.Entries[i].Digest.Less(h)
	})
}

// HashRange returns the contiguous slice of entries (by index) sharing
// digest h, scanning forward from the conservative lower bound produced by
// h.Decrement(), per spec.md §4.H.a.
func (d *Directory) HashRange(h digest.Digest) (lo, hi int) {
	i := d.LowerBound(h.Decrement())
	for i < len(d.Entries) && d.Entries[i].Digest.Less(h) {
		i++
	}
	lo = i
	hi = lo
	for hi < len(d.Entries) && d.Entries[hi].Digest == h {
		hi++
	}
	return lo, hi
}
