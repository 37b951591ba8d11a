package ops

import (
	"strings"

	"github.com/hpungsan/todo/internal/errors"
	"github.com/hpungsan/todo/internal/store"
	"github.com/hpungsan/todo/internal/task"
)

// AddInput contains parameters for the Add operation.
type AddInput struct {
	Title    string // required
	Category string // default: task.DefaultCategory
}

// AddOutput contains the result of the Add operation.
type AddOutput struct {
	Task task.Task `json:"task"`
}

// Add appends a new task to the collection.
func Add(st *store.Store, input AddInput) (*AddOutput, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, errors.NewInvalidRequest("title is required")
	}

	tasks, err := st.Load()
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	t := task.New(input.Title, input.Category)
	tasks = append(tasks, t)

	if err := st.Save(tasks); err != nil {
		return nil, errors.NewInternal(err)
	}

	return &AddOutput{Task: t}, nil
}
