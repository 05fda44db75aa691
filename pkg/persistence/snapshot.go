package persistence

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vhal-go/fakevhal/pkg/vehicle"
)

// SnapshotVersion is the current version of the snapshot file format.
const SnapshotVersion = 1

// Snapshot is the persisted state of one hardware adapter.
type Snapshot struct {
	// Version is the snapshot file format version.
	Version int `json:"version"`

	// SavedAt is when the snapshot was written.
	SavedAt time.Time `json:"saved_at"`

	// SessionID identifies the adapter that produced the snapshot.
	SessionID string `json:"session_id,omitempty"`

	// Values are the stored property values in registration order.
	Values []vehicle.PropertyValue `json:"values,omitempty"`
}

// SnapshotStore reads and writes a snapshot file.
type SnapshotStore struct {
	mu   sync.Mutex
	path string
}

// NewSnapshotStore creates a store backed by the file at path.
func NewSnapshotStore(path string) *SnapshotStore {
	return &SnapshotStore{path: path}
}

// Path returns the backing file path.
func (s *SnapshotStore) Path() string {
	return s.path
}

// Save writes snapshot to disk, creating the parent directory if needed.
// Version is always set to SnapshotVersion; a zero SavedAt is set to now.
func (s *SnapshotStore) Save(snapshot *Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	snapshot.Version = SnapshotVersion
	if snapshot.SavedAt.IsZero() {
		snapshot.SavedAt = time.Now()
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}

	// Write to a sibling file and rename into place
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// Load reads the snapshot from disk.
// Returns nil, nil if the file doesn't exist.
func (s *SnapshotStore) Load() (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	snapshot := &Snapshot{}
	if err := json.Unmarshal(data, snapshot); err != nil {
		return nil, err
	}
	if snapshot.Version > SnapshotVersion {
		return nil, fmt.Errorf("snapshot %s: unsupported version %d", s.path, snapshot.Version)
	}
	return snapshot, nil
}

// Clear removes the snapshot file. Clearing a missing file is not an error.
func (s *SnapshotStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
