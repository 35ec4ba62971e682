package entry

import (
	"testing"

	"github.com/m-lima/dircmp/internal/digest"
)

func TestNewDefaultsToUnique(t *testing.T) {
	e := New(digest.Digest{0x01}, "a.txt")
	if e.Status.Kind != Unique {
		t.Errorf("New().Status.Kind = %v, want Unique", e.Status.Kind)
	}
}

func TestCompareOrdersByDigestThenPath(t *testing.T) {
	a := New(digest.Digest{0x01}, "b.txt")
	b := New(digest.Digest{0x01}, "a.txt")
	c := New(digest.Digest{0x02}, "a.txt")

	if !Less(b, a) {
		t.Errorf("expected %q < %q for equal digests", b.Path, a.Path)
	}
	if !Less(a, c) {
		t.Errorf("expected lower digest to sort first regardless of path")
	}
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		Same:     "SAME",
		Moved:    "MOVED",
		Modified: "MODIFIED",
		Maybe:    "MAYBE",
		Unique:   "UNIQUE",
		Empty:    "EMPTY",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}
