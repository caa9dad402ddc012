package task

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

// SnapshotFile is the default name of the JSON snapshot file.
const SnapshotFile = "tasks.json"

// Snapshot is the full serialized contents of the store.
//
// NextID is a persistent counter that survives deletion: the next assigned ID
// is max(NextID, highest existing ID + 1), so deleting the highest task never
// causes ID reuse.
type Snapshot struct {
	NextID int    `json:"next_id"`
	Tasks  []Task `json:"tasks"`
}

// Store provides access to the task data in a snapshot file.
type Store struct {
	path string
}

// Open opens the store backed by the snapshot file at path. A missing file
// yields an empty store; a malformed file is an error. If path is empty,
// SnapshotFile in the current directory is used.
func Open(path string) (*Store, error) {
	if path == "" {
		path = SnapshotFile
	}

	store := &Store{path: path}

	// Surface a corrupt snapshot at open time rather than on first use.
	if _, err := store.load(); err != nil {
		return nil, err
	}

	return store, nil
}

// Path returns the snapshot file path backing the store.
func (s *Store) Path() string {
	return s.path
}

// load reads the snapshot under the file lock.
func (s *Store) load() (Snapshot, error) {
	var snap Snapshot
	err := withFileLock(s.path, func() error {
		var err error
		snap, err = readSnapshot(s.path)
		return err
	})
	return snap, err
}

// mutate applies fn to the snapshot and rewrites the file, all under the file
// lock so concurrent invocations cannot interleave read-modify-write cycles.
func (s *Store) mutate(fn func(*Snapshot) error) error {
	return withFileLock(s.path, func() error {
		snap, err := readSnapshot(s.path)
		if err != nil {
			return err
		}
		if err := fn(&snap); err != nil {
			return err
		}
		return writeSnapshot(s.path, snap)
	})
}

// withFileLock executes fn while holding an exclusive lock on the file at
// path. Creates the file if it doesn't exist.
func withFileLock(path string, fn func() error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create parent dir: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("open file for locking: %w", err)
	}
	defer f.Close()

	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX); err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	defer syscall.Flock(int(f.Fd()), syscall.LOCK_UN)

	return fn()
}

// readSnapshot reads the snapshot file at path. A missing or empty file
// yields an empty snapshot.
func readSnapshot(path string) (Snapshot, error) {
	var snap Snapshot

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return snap, nil
	}
	if err != nil {
		return snap, fmt.Errorf("read snapshot: %w", err)
	}
	if len(data) == 0 {
		// withFileLock creates the file before the first write.
		return snap, nil
	}

	if err := json.Unmarshal(data, &snap); err != nil {
		return snap, fmt.Errorf("parse snapshot %s: %w", path, err)
	}

	if err := ValidateSnapshot(&snap); err != nil {
		return snap, fmt.Errorf("invalid snapshot %s: %w", path, err)
	}

	return snap, nil
}

// writeSnapshot writes the snapshot to path, overwriting any existing
// content. The write goes through a temp file and an atomic rename so a crash
// mid-write cannot leave a truncated snapshot behind.
func writeSnapshot(path string, snap Snapshot) error {
	if snap.Tasks == nil {
		snap.Tasks = []Task{}
	}

	tmpPath := path + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(snap); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("encode snapshot: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// nextID returns the identifier to assign to a newly added task.
func (snap *Snapshot) nextID() int {
	id := snap.NextID
	for i := range snap.Tasks {
		if snap.Tasks[i].ID >= id {
			id = snap.Tasks[i].ID + 1
		}
	}
	if id < 1 {
		id = 1
	}
	return id
}
