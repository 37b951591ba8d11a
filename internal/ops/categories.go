package ops

import (
	"sort"

	"github.com/hpungsan/todo/internal/errors"
	"github.com/hpungsan/todo/internal/store"
)

// CategoryCount is the number of tasks in one category.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CategoriesOutput contains the result of the Categories operation,
// sorted by category name ascending.
type CategoriesOutput struct {
	Categories []CategoryCount `json:"categories"`
	Total      int             `json:"total"`
}

// Categories counts tasks per category. Counting is case-sensitive:
// categories that differ only by case are distinct. Read-only.
func Categories(st *store.Store) (*CategoriesOutput, error) {
	tasks, err := st.Load()
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	counts := make(map[string]int)
	for _, t := range tasks {
		counts[t.Category]++
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	categories := make([]CategoryCount, 0, len(names))
	for _, name := range names {
		categories = append(categories, CategoryCount{Name: name, Count: counts[name]})
	}

	return &CategoriesOutput{Categories: categories, Total: len(tasks)}, nil
}
