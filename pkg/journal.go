// Package pkg provides the gob-encoded journal a run records its simulation
// results in.
package pkg

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// JournalPattern is the file name pattern of journals created by CreateJournal.
const JournalPattern = "journal-*.gob"

// Journal is an append-only record of items of type T kept on disk. Items
// are flushed as they are appended, so a run that is interrupted still
// leaves the results of its finished simulations behind.
type Journal[T any] interface {
	Path() string
	Len() int
	Append(item T) error
	Close() error
}

type gobJournal[T any] struct {
	mu      sync.Mutex
	path    string
	file    *os.File
	encoder *gob.Encoder
	length  int
	closed  bool
}

// CreateJournal starts a new journal inside dir, creating dir when missing.
// An empty dir selects the system temp directory.
func CreateJournal[T any](dir string) (Journal[T], error) {
	if dir == "" {
		dir = os.TempDir()
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		slog.Error("Failed to create journal directory", "dir", dir, "error", err)
		return nil, fmt.Errorf("create journal directory %s: %w", dir, err)
	}

	file, err := os.CreateTemp(dir, JournalPattern)
	if err != nil {
		slog.Error("Failed to create journal", "dir", dir, "error", err)
		return nil, fmt.Errorf("create journal in %s: %w", dir, err)
	}

	slog.Debug("Journal created", "path", file.Name())

	return &gobJournal[T]{
		path:    file.Name(),
		file:    file,
		encoder: gob.NewEncoder(file),
	}, nil
}

func (j *gobJournal[T]) Path() string {
	return j.path
}

func (j *gobJournal[T]) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.length
}

// Append encodes item at the end of the journal. Safe for concurrent use.
func (j *gobJournal[T]) Append(item T) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.closed {
		return fmt.Errorf("journal %s is closed", j.path)
	}

	if err := j.encoder.Encode(item); err != nil {
		slog.Error("Failed to append to journal", "path", j.path, "entry", j.length, "error", err)
		return fmt.Errorf("append entry %d: %w", j.length, err)
	}

	j.length++

	return nil
}

// Close releases the file. The journal stays on disk; closing twice is a no-op.
func (j *gobJournal[T]) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.closed {
		return nil
	}

	j.closed = true

	if err := j.file.Close(); err != nil {
		return fmt.Errorf("close journal %s: %w", j.path, err)
	}

	slog.Debug("Journal closed", "path", j.path, "entries", j.length)

	return nil
}

// ReadJournal decodes every entry of the journal at path. A journal cut
// short by a crash yields the entries written before the damaged one along
// with the decode error.
func ReadJournal[T any](path string) ([]T, error) {
	// #nosec G304 - journals are chosen by the operator
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("Failed to close journal", "path", path, "error", err)
		}
	}()

	decoder := gob.NewDecoder(file)

	var entries []T

	for {
		var entry T

		err := decoder.Decode(&entry)
		if errors.Is(err, io.EOF) {
			return entries, nil
		}

		if err != nil {
			return entries, fmt.Errorf("decode entry %d of %s: %w", len(entries), path, err)
		}

		entries = append(entries, entry)
	}
}

// LatestJournal returns the most recently modified journal in dir. It fails
// with an error wrapping os.ErrNotExist when dir holds none.
func LatestJournal(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, JournalPattern))
	if err != nil {
		return "", fmt.Errorf("list journals in %s: %w", dir, err)
	}

	var (
		latest string
		newest int64
	)

	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil || info.IsDir() {
			continue
		}

		if mod := info.ModTime().UnixNano(); latest == "" || mod > newest {
			latest, newest = match, mod
		}
	}

	if latest == "" {
		return "", fmt.Errorf("no journal in %s: %w", dir, os.ErrNotExist)
	}

	return latest, nil
}
