package ops

import (
	"strings"

	"github.com/hpungsan/todo/internal/errors"
	"github.com/hpungsan/todo/internal/store"
	"github.com/hpungsan/todo/internal/task"
)

// ListInput contains the optional filters for the List operation.
// All provided filters are ANDed together.
type ListInput struct {
	// Category matches case-insensitively against the full category.
	Category *string

	// Done matches the completion flag.
	Done *bool

	// Search matches a case-insensitive substring of the title.
	Search *string
}

// ListOutput contains the result of the List operation. Items keep
// the collection's insertion order.
type ListOutput struct {
	Items []task.Task `json:"items"`
	Total int         `json:"total"`
}

// List returns the tasks matching every provided filter. Read-only.
func List(st *store.Store, input ListInput) (*ListOutput, error) {
	tasks, err := st.Load()
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	items := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if matches(t, input) {
			items = append(items, t)
		}
	}

	return &ListOutput{Items: items, Total: len(items)}, nil
}

// matches reports whether a task passes every provided filter.
func matches(t task.Task, input ListInput) bool {
	if input.Category != nil && !strings.EqualFold(t.Category, *input.Category) {
		return false
	}
	if input.Done != nil && t.Done != *input.Done {
		return false
	}
	if input.Search != nil && !strings.Contains(strings.ToLower(t.Title), strings.ToLower(*input.Search)) {
		return false
	}
	return true
}
