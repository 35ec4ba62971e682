package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-lima/dircmp/internal/directory"
	"github.com/m-lima/dircmp/internal/entry"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestCompareEndToEnd(t *testing.T) {
	left := t.TempDir()
	right := t.TempDir()

	writeFile(t, filepath.Join(left, "same.txt"), "identical content")
	writeFile(t, filepath.Join(right, "same.txt"), "identical content")

	writeFile(t, filepath.Join(left, "old_name.txt"), "moved content")
	writeFile(t, filepath.Join(right, "new_name.txt"), "moved content")

	writeFile(t, filepath.Join(left, "edited.txt"), "before edit")
	writeFile(t, filepath.Join(right, "edited.txt"), "after edit")

	writeFile(t, filepath.Join(left, "only_left.txt"), "left only content")
	writeFile(t, filepath.Join(right, "only_right.txt"), "right only content")

	leftDir, rightDir, err := Compare(context.Background(), left, right, 2)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}

	statusFor := func(d *directory.Directory, path string) entry.Kind {
		t.Helper()
		for _, e := range d.Entries {
			if e.Path == path {
				return e.Status.Kind
			}
		}
		t.Fatalf("no entry for path %s", path)
		return 0
	}

	if k := statusFor(leftDir, "same.txt"); k != entry.Same {
		t.Errorf("same.txt = %v, want Same", k)
	}
	if k := statusFor(leftDir, "old_name.txt"); k != entry.Moved {
		t.Errorf("old_name.txt = %v, want Moved", k)
	}
	if k := statusFor(leftDir, "edited.txt"); k != entry.Modified {
		t.Errorf("edited.txt = %v, want Modified", k)
	}
	if k := statusFor(leftDir, "only_left.txt"); k != entry.Unique {
		t.Errorf("only_left.txt = %v, want Unique", k)
	}
	if k := statusFor(rightDir, "only_right.txt"); k != entry.Unique {
		t.Errorf("only_right.txt = %v, want Unique", k)
	}
}
