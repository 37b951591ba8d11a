package ops

import (
	"reflect"
	"testing"
	"time"

	"github.com/hpungsan/todo/internal/errors"
)

func TestUpdate_Title(t *testing.T) {
	st := testStore(t)
	added, err := Add(st, AddInput{Title: "Buy milk"})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	time.Sleep(2 * time.Millisecond)

	output, err := Update(st, UpdateInput{ID: added.Task.ID, Title: stringPtr("Buy oat milk")})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if !output.Changed {
		t.Error("expected Changed = true")
	}
	if output.Task.Title != "Buy oat milk" {
		t.Errorf("Title = %q, want %q", output.Task.Title, "Buy oat milk")
	}

	before, _ := time.Parse(time.RFC3339, added.Task.UpdatedAt)
	after, _ := time.Parse(time.RFC3339, output.Task.UpdatedAt)
	if !after.After(before) {
		t.Errorf("UpdatedAt %q not refreshed past %q", output.Task.UpdatedAt, added.Task.UpdatedAt)
	}
	if output.Task.CreatedAt != added.Task.CreatedAt {
		t.Error("CreatedAt must never change")
	}
}

func TestUpdate_EmptyTitle(t *testing.T) {
	st := testStore(t)
	added, err := Add(st, AddInput{Title: "Buy milk"})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	for _, title := range []string{"", "   "} {
		_, err := Update(st, UpdateInput{ID: added.Task.ID, Title: stringPtr(title)})
		if !errors.Is(err, errors.ErrInvalidRequest) {
			t.Errorf("Update(title=%q): expected INVALID_REQUEST, got %v", title, err)
		}
	}

	// The file must still load: a rejected update leaves no record the
	// strict decoder would refuse.
	tasks, err := st.Load()
	if err != nil {
		t.Fatalf("Load failed after rejected update: %v", err)
	}
	if tasks[0].Title != "Buy milk" {
		t.Errorf("Title = %q, want %q", tasks[0].Title, "Buy milk")
	}
	if tasks[0].UpdatedAt != added.Task.UpdatedAt {
		t.Error("rejected update must not refresh updated_at")
	}
}

func TestUpdate_Done(t *testing.T) {
	st := testStore(t)
	added, err := Add(st, AddInput{Title: "Buy milk"})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	output, err := Update(st, UpdateInput{ID: added.Task.ID, Done: boolPtr(true)})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if !output.Task.Done {
		t.Error("expected Done = true")
	}

	tasks, err := st.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !tasks[0].Done {
		t.Error("Done change was not persisted")
	}
}

func TestUpdate_NotFound(t *testing.T) {
	st := testStore(t)
	seeded := seedStore(t, st)

	_, err := Update(st, UpdateInput{ID: "no-such-id", Title: stringPtr("x")})
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}

	tasks, loadErr := st.Load()
	if loadErr != nil {
		t.Fatalf("Load failed: %v", loadErr)
	}
	if !reflect.DeepEqual(tasks, seeded) {
		t.Error("collection changed after failed update")
	}
}

func TestUpdate_NoFields(t *testing.T) {
	st := testStore(t)
	added, err := Add(st, AddInput{Title: "Buy milk"})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	output, err := Update(st, UpdateInput{ID: added.Task.ID})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if output.Changed {
		t.Error("expected Changed = false")
	}

	tasks, err := st.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if tasks[0].UpdatedAt != added.Task.UpdatedAt {
		t.Errorf("UpdatedAt = %q, want untouched %q", tasks[0].UpdatedAt, added.Task.UpdatedAt)
	}
}

func TestUpdate_EmptyID(t *testing.T) {
	st := testStore(t)

	_, err := Update(st, UpdateInput{Title: stringPtr("x")})
	if !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("expected INVALID_REQUEST, got %v", err)
	}
}
