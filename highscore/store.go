// Package highscore persists the best score across sessions.
// A missing or unreadable value is reported as absent, never as an error.
package highscore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"sidescroller/logging"
)

// Store is the interface every backend implements
type Store interface {
	Get() (int, bool)
	Set(score int) error
	Close() error
}

// Memory keeps the high score for the lifetime of the process
type Memory struct {
	mu    sync.Mutex
	score int
	ok    bool
}

func NewMemory() *Memory { return &Memory{} }

func (m *Memory) Get() (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.score, m.ok
}

func (m *Memory) Set(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.score, m.ok = score, true
	return nil
}

func (m *Memory) Close() error { return nil }

// fileRecord is the on-disk layout of File
type fileRecord struct {
	HighScore int `json:"high_score"`
}

// File stores the score as a small JSON document
type File struct {
	path string
	log  *logging.Logger
}

// NewFile returns a store backed by path. The file is created on first Set.
func NewFile(path string, log *logging.Logger) *File {
	return &File{path: path, log: log}
}

func (f *File) Get() (int, bool) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			f.log.Warnf("read high score %s: %v", f.path, err)
		}
		return 0, false
	}

	var rec fileRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		f.log.Warnf("malformed high score file %s: %v", f.path, err)
		return 0, false
	}
	if rec.HighScore < 0 {
		return 0, false
	}
	return rec.HighScore, true
}

// Set writes through a temporary file so a crash never leaves a torn record
func (f *File) Set(score int) error {
	if dir := filepath.Dir(f.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create high score dir: %w", err)
		}
	}

	data, err := json.Marshal(fileRecord{HighScore: score})
	if err != nil {
		return fmt.Errorf("encode high score: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write high score: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace high score: %w", err)
	}
	return nil
}

func (f *File) Close() error { return nil }

// Open picks a backend by name: "memory", "file" (path is the JSON file) or
// "badger" (path is the database directory).
func Open(backend, path string, log *logging.Logger) (Store, error) {
	switch strings.ToLower(backend) {
	case "", "memory":
		return NewMemory(), nil
	case "file", "json":
		if path == "" {
			return nil, fmt.Errorf("file high score store needs a path")
		}
		return NewFile(path, log), nil
	case "badger":
		return OpenBadger(path, log)
	}
	return nil, fmt.Errorf("unknown high score backend %q", backend)
}
