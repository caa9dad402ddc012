package task

import (
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	return &Store{path: filepath.Join(t.TempDir(), SnapshotFile)}
}

func (s *Store) getTaskByID(t *testing.T, id int) *Task {
	t.Helper()

	snap, err := s.load()
	if err != nil {
		t.Fatalf("failed to load snapshot: %v", err)
	}
	for i := range snap.Tasks {
		if snap.Tasks[i].ID == id {
			return &snap.Tasks[i]
		}
	}
	return nil
}

func mustAdd(t *testing.T, s *Store, title string, opts AddOptions) *Task {
	t.Helper()

	created, err := s.Add(title, opts)
	if err != nil {
		t.Fatalf("failed to add %q: %v", title, err)
	}
	return created
}
