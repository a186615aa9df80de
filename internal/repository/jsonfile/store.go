// Package jsonfile implements collection persistence over flat JSON array
// files, one file per collection. The store itself is an opaque array
// persister: schema validation belongs to the repositories built on top.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"spendtrack/internal/logger"
)

// Store owns a data directory of JSON collection files and the exclusive
// lock guarding each collection.
type Store struct {
	dir    string
	logger *logger.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewStore creates a Store rooted at dir. The directory is created lazily
// on the first write.
func NewStore(dir string, logger *logger.Logger) *Store {
	return &Store{
		dir:    dir,
		logger: logger,
		locks:  map[string]*sync.Mutex{},
	}
}

// Lock returns the exclusive lock guarding the named collection. Every
// read-modify-write cycle must hold it for its full duration; otherwise two
// concurrent writers race and the last full write silently wins.
func (s *Store) Lock(name string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[name]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[name] = lock
	}

	return lock
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// load reads the named collection. A missing, unreadable or corrupt file
// degrades to an empty collection: reads stay available and the next save
// rewrites the file. Corruption is logged, never returned.
func load[T any](s *Store, name string) []T {
	raw, err := os.ReadFile(s.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		s.logger.Warn("failed to read collection, treating as empty",
			"collection", name,
			"error", err.Error())
		return nil
	}

	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		s.logger.Warn("corrupt collection file, treating as empty",
			"collection", name,
			"error", err.Error())
		return nil
	}

	return records
}

// save overwrites the named collection. The records are written to a temp
// file in the data directory and renamed into place, so readers observe
// either the previous or the new contents, never a partial write.
func save[T any](s *Store, name string, records []T) error {
	if records == nil {
		// An empty collection is stored as [], not null.
		records = []T{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal collection %s: %w", name, err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, name+"-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write collection %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path(name)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace collection %s: %w", name, err)
	}

	return nil
}
