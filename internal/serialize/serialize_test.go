package serialize

import (
	"bytes"
	"testing"

	"github.com/google/uuid"

	"github.com/m-lima/dircmp/internal/digest"
	"github.com/m-lima/dircmp/internal/directory"
	"github.com/m-lima/dircmp/internal/entry"
)

func TestRoundTrip(t *testing.T) {
	left := directory.New("/left", []entry.Entry{
		{Digest: digest.Digest{0x01}, Path: "a.txt", Status: entry.Status{Kind: entry.Same, Index: 0}},
		{Digest: digest.Digest{0x02}, Path: "b.txt", Status: entry.Status{Kind: entry.Maybe, Indices: []int{1, 2}}},
		{Digest: digest.Digest{0x03}, Path: "c.txt", Status: entry.Status{Kind: entry.Unique}},
		{Digest: digest.Empty, Path: "empty.txt", Status: entry.Status{Kind: entry.Empty}},
	})
	right := directory.New("/right", []entry.Entry{
		{Digest: digest.Digest{0x01}, Path: "a.txt", Status: entry.Status{Kind: entry.Same, Index: 0}},
	})

	var buf bytes.Buffer
	if err := Write(&buf, left, right); err != nil {
		t.Fatalf("Write: %v", err)
	}

	gotLeft, gotRight, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if gotLeft.Root != left.Root || len(gotLeft.Entries) != len(left.Entries) {
		t.Fatalf("left directory mismatch: got %+v", gotLeft)
	}
	for i, e := range left.Entries {
		got := gotLeft.Entries[i]
		if got.Digest != e.Digest || got.Path != e.Path || got.Status.Kind != e.Status.Kind {
			t.Errorf("entry %d mismatch: got %+v, want %+v", i, got, e)
		}
		if got.Status.Kind == entry.Maybe && len(got.Status.Indices) != len(e.Status.Indices) {
			t.Errorf("entry %d Maybe indices mismatch: got %v, want %v", i, got.Status.Indices, e.Status.Indices)
		}
	}

	if gotRight.Root != right.Root || len(gotRight.Entries) != len(right.Entries) {
		t.Fatalf("right directory mismatch: got %+v", gotRight)
	}
}

func TestUnsupportedVersion(t *testing.T) {
	buf := bytes.NewBuffer([]byte{0xff})
	if _, _, err := Read(buf); err == nil {
		t.Error("Read with bad version = nil error, want error")
	}
}

func TestWriteRunPreservesRunID(t *testing.T) {
	left := directory.New("/left", nil)
	right := directory.New("/right", nil)
	want := uuid.New()

	var buf bytes.Buffer
	if err := WriteRun(&buf, want, left, right); err != nil {
		t.Fatalf("WriteRun: %v", err)
	}

	got, _, _, err := ReadRun(&buf)
	if err != nil {
		t.Fatalf("ReadRun: %v", err)
	}
	if got != want {
		t.Errorf("run id = %s, want %s", got, want)
	}
}
