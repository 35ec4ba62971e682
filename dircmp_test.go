package dircmp

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestCompareClassifiesSameAndUnique(t *testing.T) {
	left := t.TempDir()
	right := t.TempDir()

	writeFile(t, filepath.Join(left, "shared.txt"), "same contents")
	writeFile(t, filepath.Join(right, "shared.txt"), "same contents")
	writeFile(t, filepath.Join(left, "only_left.txt"), "left only")

	gotLeft, gotRight, err := Compare(context.Background(), left, right)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}

	statusOf := func(d *Directory, path string) Kind {
		for _, e := range d.Entries {
			if e.Path == path {
				return e.Status.Kind
			}
		}
		t.Fatalf("no entry for %s", path)
		return 0
	}

	if k := statusOf(gotLeft, "shared.txt"); k != Same {
		t.Errorf("shared.txt (left) = %s, want Same", k)
	}
	if k := statusOf(gotRight, "shared.txt"); k != Same {
		t.Errorf("shared.txt (right) = %s, want Same", k)
	}
	if k := statusOf(gotLeft, "only_left.txt"); k != Unique {
		t.Errorf("only_left.txt = %s, want Unique", k)
	}
}

func TestCompareWithConcurrencyDefaultsOnNonPositive(t *testing.T) {
	left := t.TempDir()
	right := t.TempDir()
	writeFile(t, filepath.Join(left, "a.txt"), "a")

	if _, _, err := CompareWithConcurrency(context.Background(), left, right, 0); err != nil {
		t.Fatalf("CompareWithConcurrency: %v", err)
	}
}
