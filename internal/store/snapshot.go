package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Observer receives timings for snapshot I/O. Implemented by the
// metrics service; a nil observer disables instrumentation.
type Observer interface {
	ObserveSnapshot(document, op string, duration time.Duration)
}

// Snapshot persists one JSON document as a whole file under a data
// directory. Loads and saves are unsynchronised; the owning repository
// serialises access across its read-modify-write cycle.
type Snapshot struct {
	name     string
	path     string
	observer Observer
}

// Open ensures the data directory exists and seeds the document file
// when it is absent. name is the bare file name, e.g. "courses.json".
func Open(dir, name string, seed interface{}) (*Snapshot, error) {
	if dir == "" {
		dir = "./data"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	s := &Snapshot{name: name, path: filepath.Join(dir, name)}

	if _, err := os.Stat(s.path); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("stat document %s: %w", name, err)
		}
		if err := s.Save(seed); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// SetObserver attaches snapshot I/O instrumentation.
func (s *Snapshot) SetObserver(o Observer) {
	s.observer = o
}

// Load reads the whole document into v.
func (s *Snapshot) Load(v interface{}) error {
	start := time.Now()
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("read document %s: %w", s.name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode document %s: %w", s.name, err)
	}
	s.observe("load", start)
	return nil
}

// Save rewrites the whole document from v. The write goes to a
// temporary sibling first and is published with an atomic rename so a
// crash never leaves a torn file behind.
func (s *Snapshot) Save(v interface{}) error {
	start := time.Now()
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document %s: %w", s.name, err)
	}

	tmp := fmt.Sprintf("%s.%s.tmp", s.path, uuid.NewString())
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write document %s: %w", s.name, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("publish document %s: %w", s.name, err)
	}
	s.observe("persist", start)
	return nil
}

// Path exposes the underlying file path (useful for debugging).
func (s *Snapshot) Path() string {
	return s.path
}

func (s *Snapshot) observe(op string, start time.Time) {
	if s.observer != nil {
		s.observer.ObserveSnapshot(s.name, op, time.Since(start))
	}
}
