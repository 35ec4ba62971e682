package hasher

import (
	"crypto/md5"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-lima/dircmp/internal/digest"
)

func TestHashMatchesStdlibMD5(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")
	content := []byte("the quick brown fox jumps over the lazy dog")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := Hash(path)
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}

	want := digest.FromBytes(md5Sum(content))
	if got != want {
		t.Errorf("Hash(%q) = %x, want %x", path, got, want)
	}
}

func TestHashEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.txt")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := Hash(path)
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if !got.IsEmpty() {
		t.Errorf("Hash(empty file) = %x, want empty digest", got)
	}
}

func TestHashMissingFile(t *testing.T) {
	if _, err := Hash(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Hash(missing file) = nil error, want error")
	}
}

func md5Sum(b []byte) []byte {
	sum := md5.Sum(b)
	return sum[:]
}
