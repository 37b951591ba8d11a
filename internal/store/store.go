// Package store persists the full task collection as a single JSON
// file, using a write-to-temp-then-rename protocol so a failed save
// never clobbers the previously committed file.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hpungsan/todo/internal/task"
)

// Store reads and writes the task collection at a fixed file path.
//
// Concurrent writers are not coordinated: two processes that load and
// save at the same time race, and the last writer wins at whole-file
// granularity. The atomic replace only guarantees that a reader never
// observes a half-written file.
type Store struct {
	path string
}

// New creates a Store bound to path. Path resolution (environment
// override, default filename) is the caller's concern.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the full collection. A missing file is an empty
// collection, not an error. A file that exists but does not parse is
// a fatal error; there is no partial recovery.
func (s *Store) Load() ([]task.Task, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []task.Task{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	var tasks []task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	if tasks == nil {
		tasks = []task.Task{}
	}
	return tasks, nil
}

// Save serializes the entire collection and atomically replaces the
// backing file. The content is written to a temp file in the target's
// directory (same filesystem, so the rename is atomic); on any failure
// after the temp file is created, the temp file is removed and the
// target is left exactly as it was.
func (s *Store) Save(tasks []task.Task) error {
	if tasks == nil {
		tasks = []task.Task{}
	}

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	file, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := file.Name()

	// Remove the temp file on any failure; the target stays intact.
	success := false
	defer func() {
		if file != nil {
			file.Close()
		}
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := file.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}

	// Close before rename (required on Windows; fine elsewhere).
	if err := file.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	file = nil

	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}

	success = true
	return nil
}
