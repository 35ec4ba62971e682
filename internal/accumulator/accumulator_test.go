package accumulator

import (
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/m-lima/dircmp/internal/digest"
	"github.com/m-lima/dircmp/internal/entry"
	"github.com/m-lima/dircmp/internal/scanner"
)

func TestAccumulateSortsEntries(t *testing.T) {
	messages := make(chan scanner.Message, 3)
	messages <- scanner.Message{Kind: scanner.Hash, Entry: entry.New(digest.Digest{0x03}, "c.txt")}
	messages <- scanner.Message{Kind: scanner.Hash, Entry: entry.New(digest.Digest{0x01}, "a.txt")}
	messages <- scanner.Message{Kind: scanner.Hash, Entry: entry.New(digest.Digest{0x02}, "b.txt")}
	close(messages)

	entries, err := Accumulate(messages, logrus.WithField("test", true))
	if err != nil {
		t.Fatalf("Accumulate: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("len(entries) = %d, want 3", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if !entry.Less(entries[i-1], entries[i]) {
			t.Errorf("entries not sorted at index %d: %v, %v", i, entries[i-1], entries[i])
		}
	}
}

func TestAccumulateDetectsFullCollision(t *testing.T) {
	messages := make(chan scanner.Message, 2)
	messages <- scanner.Message{Kind: scanner.Hash, Entry: entry.New(digest.Digest{0x01}, "a.txt")}
	messages <- scanner.Message{Kind: scanner.Hash, Entry: entry.New(digest.Digest{0x01}, "a.txt")}
	close(messages)

	if _, err := Accumulate(messages, logrus.WithField("test", true)); err == nil {
		t.Error("Accumulate with duplicate (digest, path) = nil error, want error")
	}
}

func TestAccumulatePropagatesScannerError(t *testing.T) {
	messages := make(chan scanner.Message, 1)
	messages <- scanner.Message{Kind: scanner.Error, Err: errTest}
	close(messages)

	if _, err := Accumulate(messages, logrus.WithField("test", true)); err != errTest {
		t.Errorf("Accumulate() error = %v, want %v", err, errTest)
	}
}

var errTest = simpleError("boom")

type simpleError string

func (e simpleError) Error() string { return string(e) }
