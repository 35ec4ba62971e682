// Package scanner walks a directory tree, submitting a hash work-item for
// every regular file it discovers and recursing into every subdirectory,
// per spec.md §4.E.
//
// Grounded on original_source/src/crawler.rs's worker::scanner module
// (recurse inline on directories, spawn a hasher task per file, warn and
// skip broken symlinks) and on the corpus's goroutine-per-directory,
// semaphore-gated fan-out (other_examples ivoronin/dupedog scanner.go),
// adapted onto this module's workerpool.Pool instead of a bespoke
// semaphore type.
package scanner

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/m-lima/dircmp/internal/entry"
	"github.com/m-lima/dircmp/internal/errs"
	"github.com/m-lima/dircmp/internal/hasher"
	"github.com/m-lima/dircmp/internal/workerpool"
)

// MessageKind discriminates a Message's payload, mirroring
// original_source's worker::Message enum (Queued/Done collapse away here
// since the accumulator tracks totals itself from the Hash messages it
// receives).
type MessageKind uint8

const (
	// Hash carries one successfully hashed Entry.
	Hash MessageKind = iota
	// Error carries a fatal scanning or hashing error.
	Error
)

// Message is one item produced by a scan, sent over the channel returned
// by Scan.
type Message struct {
	Kind  MessageKind
	Entry entry.Entry
	Err   error
}

// Scan walks root, submitting scan and hash work to pool, and returns a
// channel of Messages closed once every submitted task has completed (the
// Go analogue of original_source's "channel closed once every sender is
// dropped" termination rule).
func Scan(ctx context.Context, pool *workerpool.Pool, root string) <-chan Message {
	log := logrus.WithField("root", root)
	messages := make(chan Message, 256)

	var wg sync.WaitGroup
	wg.Add(1)
	pool.Go(func(ctx context.Context) error {
		defer wg.Done()
		scanDir(ctx, pool, &wg, root, root, messages, log)
		return nil
	})

	go func() {
		wg.Wait()
		close(messages)
	}()

	return messages
}

// scanDir lists one directory, submitting a new scan task to the pool per
// subdirectory and a hash task per regular file.
func scanDir(ctx context.Context, pool *workerpool.Pool, wg *sync.WaitGroup, root, dir string, messages chan<- Message, log *logrus.Entry) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		sendError(messages, errs.New(errs.DirUnreadable, dir, err))
		return
	}

	for _, de := range entries {
		select {
		case <-ctx.Done():
			return
		default:
		}

		path := filepath.Join(dir, de.Name())
		info, err := de.Info()
		if err != nil {
			sendError(messages, errs.New(errs.EntryUnreadable, path, err))
			continue
		}

		isDir := info.IsDir()
		isRegular := info.Mode().IsRegular()
		if info.Mode()&os.ModeSymlink != 0 {
			target, statErr := os.Stat(path)
			if statErr != nil {
				log.Warnf("skipping broken symlink at %s", path)
				continue
			}
			isDir = target.IsDir()
			isRegular = target.Mode().IsRegular()
		}

		if isDir {
			wg.Add(1)
			pool.Go(func(ctx context.Context) error {
				defer wg.Done()
				scanDir(ctx, pool, wg, root, path, messages, log)
				return nil
			})
			continue
		}

		if !isRegular {
			continue
		}

		wg.Add(1)
		pool.Go(func(ctx context.Context) error {
			defer wg.Done()
			hashFile(root, path, messages)
			return nil
		})
	}
}

// hashFile computes path's content digest and emits it relative to root.
func hashFile(root, path string, messages chan<- Message) {
	d, err := hasher.Hash(path)
	if err != nil {
		sendError(messages, err)
		return
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		sendError(messages, errs.New(errs.PrefixStripFailed, path, err))
		return
	}
	rel = filepath.ToSlash(rel)

	messages <- Message{Kind: Hash, Entry: entry.New(d, rel)}
}

func sendError(messages chan<- Message, err error) {
	messages <- Message{Kind: Error, Err: err}
}
