package ops

import (
	"github.com/hpungsan/todo/internal/errors"
	"github.com/hpungsan/todo/internal/store"
)

// DeleteInput contains parameters for the Delete operation.
type DeleteInput struct {
	ID string // required
}

// DeleteOutput contains the result of the Delete operation.
type DeleteOutput struct {
	Deleted bool   `json:"deleted"`
	ID      string `json:"id"`
}

// Delete removes a task by id. The collection is saved only when a
// task was actually removed.
func Delete(st *store.Store, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.NewInvalidRequest("id is required")
	}

	tasks, err := st.Load()
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	i := findTask(tasks, input.ID)
	if i < 0 {
		return nil, errors.NewNotFound(input.ID)
	}

	tasks = append(tasks[:i], tasks[i+1:]...)

	if err := st.Save(tasks); err != nil {
		return nil, errors.NewInternal(err)
	}

	return &DeleteOutput{Deleted: true, ID: input.ID}, nil
}
