package store

import (
	"encoding/json"
	"fmt"
)

// ExportAll serializes every namespaced entry into one pretty-printed
// JSON object. Keys keep their namespace prefix so an exported blob can
// be imported verbatim.
func (s *FileStore) ExportAll() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	contents, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json.MarshalIndent > %w", err)
	}
	return contents, nil
}

// Import parses a backup blob and writes every key back verbatim.
// A malformed blob rejects the whole operation and leaves the store
// untouched; no partial writes happen. Derived in-memory state in a
// running process is not reloaded; the caller restarts afterwards.
func (s *FileStore) Import(contents []byte) error {
	var imported map[string]json.RawMessage
	if err := json.Unmarshal(contents, &imported); err != nil {
		return fmt.Errorf("backup file is not a valid JSON object > %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for key, value := range imported {
		s.entries[key] = value
	}
	return s.flushLocked()
}
