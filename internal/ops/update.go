package ops

import (
	"strings"

	"github.com/hpungsan/todo/internal/errors"
	"github.com/hpungsan/todo/internal/store"
	"github.com/hpungsan/todo/internal/task"
)

// UpdateInput contains parameters for the Update operation.
type UpdateInput struct {
	ID string // required

	// Editable fields (nil = leave unchanged)
	Title    *string
	Category *string
	Done     *bool
}

// UpdateOutput contains the result of the Update operation.
type UpdateOutput struct {
	Task task.Task `json:"task"`

	// Changed is false when no editable field was provided; the
	// collection was left untouched and nothing was saved.
	Changed bool `json:"changed"`
}

// Update modifies an existing task by id.
func Update(st *store.Store, input UpdateInput) (*UpdateOutput, error) {
	if input.ID == "" {
		return nil, errors.NewInvalidRequest("id is required")
	}
	// A blank title would persist a record the loader refuses to read
	// back; reject it before touching the file.
	if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
		return nil, errors.NewInvalidRequest("title cannot be empty")
	}

	tasks, err := st.Load()
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	i := findTask(tasks, input.ID)
	if i < 0 {
		return nil, errors.NewNotFound(input.ID)
	}

	t := &tasks[i]
	changed := false
	if input.Title != nil {
		t.Title = *input.Title
		changed = true
	}
	if input.Category != nil {
		t.Category = *input.Category
		changed = true
	}
	if input.Done != nil {
		t.Done = *input.Done
		changed = true
	}

	if !changed {
		// Nothing to update: updated_at keeps its prior value and the
		// file is not rewritten.
		return &UpdateOutput{Task: *t, Changed: false}, nil
	}

	t.Touch()
	if err := st.Save(tasks); err != nil {
		return nil, errors.NewInternal(err)
	}

	return &UpdateOutput{Task: *t, Changed: true}, nil
}
