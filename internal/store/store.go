// Package store provides the namespaced durable key-value store backing
// all application state. Values are opaque JSON-serializable records.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// Namespace prefixes every key written to disk, so unrelated entries in
// an imported blob are carried through untouched but never read back.
const Namespace = "credo_"

// Store is a durable map of JSON-serializable values.
// Writes are last-write-wins and synchronous.
type Store interface {
	// Get unmarshals the value for key into out and reports whether a
	// usable value was found. A missing or malformed value is not an
	// error; the caller falls back to its default.
	Get(key string, out any) (bool, error)
	// Set marshals value and persists it under key.
	Set(key string, value any) error
	// Keys returns every namespaced key, sorted, without the prefix.
	Keys() ([]string, error)
}

// FileStore keeps the whole namespace in a single JSON file, one object
// with namespaced keys. The in-memory copy stays authoritative for the
// session even when a flush to disk fails.
type FileStore struct {
	path string

	mu      sync.Mutex
	entries map[string]json.RawMessage
}

// NewFileStore loads (or lazily creates) the store file at path.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		path:    path,
		entries: map[string]json.RawMessage{},
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}

	if err := json.Unmarshal(contents, &s.entries); err != nil {
		// A corrupt store file must not take the application down;
		// readers fall back to defaults and the next write starts over.
		slog.Warn("store file is malformed, starting from defaults", "path", path, "error", err)
		s.entries = map[string]json.RawMessage{}
	}
	return s, nil
}

func (s *FileStore) Get(key string, out any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.entries[Namespace+key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		slog.Warn("malformed store value, using default", "key", key, "error", err)
		return false, nil
	}
	return true, nil
}

func (s *FileStore) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("json.Marshal(%s) > %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[Namespace+key] = raw
	return s.flushLocked()
}

func (s *FileStore) Keys() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make([]string, 0, len(s.entries))
	for key := range s.entries {
		if len(key) >= len(Namespace) && key[:len(Namespace)] == Namespace {
			keys = append(keys, key[len(Namespace):])
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// flushLocked writes the whole namespace atomically: temp file, then rename.
func (s *FileStore) flushLocked() error {
	contents, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent > %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".credo-store-*")
	if err != nil {
		return fmt.Errorf("os.CreateTemp > %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(contents); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write store file > %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close store file > %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("os.Rename(%s, %s) > %w", tmpPath, s.path, err)
	}
	return nil
}
