// Package accumulator consumes a scanner's Message stream and builds a
// sorted entry list, per spec.md §4.F.
//
// Grounded on original_source/src/crawler.rs::accumulate: a single
// consumer inserts each entry at its sorted position via binary search,
// aborting on a full (digest, path) collision, and logs progress every
// 2048 entries with the entry count and insertion rate; no completion
// percentage is reported.
package accumulator

import (
	"sort"
	"time"

	"github.com/dustin/go-humanize"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/m-lima/dircmp/internal/entry"
	"github.com/m-lima/dircmp/internal/errs"
	"github.com/m-lima/dircmp/internal/scanner"
)

// progressStride matches crawler.rs's `len & (2048 - 1) == 0` cadence.
const progressStride = 2048

// Accumulate drains messages to completion, returning a sorted entry slice.
// On the first fatal error (a scanner/hasher error, or a full collision) it
// stops indexing but keeps draining the channel rather than returning
// immediately: scanner.go's scanDir/hashFile goroutines send on messages
// unconditionally, so walking away early would leave any in-flight sender
// blocked on a full buffer forever, permanently pinning its workerpool
// permit. Per spec.md §4.J, every Scanner/Hasher task must be able to
// release its send handle on every path; this is the consumer side of that
// contract.
func Accumulate(messages <-chan scanner.Message, log *logrus.Entry) ([]entry.Entry, error) {
	var entries []entry.Entry
	start := time.Now()
	var fatal error

	for msg := range messages {
		if fatal != nil {
			continue
		}

		switch msg.Kind {
		case scanner.Error:
			fatal = msg.Err
		case scanner.Hash:
			idx := sort.Search(len(entries), func(i int) bool {
				return !entry.Less(entries[i], msg.Entry)
			})
			if idx < len(entries) && entry.Compare(entries[idx], msg.Entry) == 0 {
				fatal = errs.New(errs.FullCollision, msg.Entry.Path, pkgerrors.New("duplicate (digest, path) pair"))
				continue
			}
			entries = append(entries, entry.Entry{})
			copy(entries[idx+1:], entries[idx:])
			entries[idx] = msg.Entry

			if n := len(entries); n%progressStride == 0 {
				logProgress(log, n, start)
			}
		}
	}

	if fatal != nil {
		return nil, fatal
	}
	return entries, nil
}

func logProgress(log *logrus.Entry, n int, start time.Time) {
	elapsed := time.Since(start).Seconds()
	if elapsed <= 0 {
		return
	}
	rate := float64(n) / elapsed
	log.Debugf("indexed %s entries at %s/s", humanize.Comma(int64(n)), humanize.Comma(int64(rate)))
}
