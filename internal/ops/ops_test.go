package ops

import (
	"path/filepath"
	"testing"

	"github.com/hpungsan/todo/internal/store"
	"github.com/hpungsan/todo/internal/task"
)

// testStore creates a store backed by a fresh temp data file.
func testStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(filepath.Join(t.TempDir(), "todo_data.json"))
}

// seedStore saves a fixed collection covering the filter axes:
// categories with mixed case, done flags, and overlapping titles.
func seedStore(t *testing.T, st *store.Store) []task.Task {
	t.Helper()

	buyMilk := task.New("Buy milk", "")
	buyStamps := task.New("Buy stamps", "Errands")
	buyStamps.Done = true
	review := task.New("Sprint review", "Work")
	retro := task.New("sprint retro", "Work")
	retro.Done = true

	tasks := []task.Task{buyMilk, buyStamps, review, retro}
	if err := st.Save(tasks); err != nil {
		t.Fatalf("seed Save failed: %v", err)
	}
	return tasks
}

func stringPtr(s string) *string { return &s }
func boolPtr(b bool) *bool       { return &b }
