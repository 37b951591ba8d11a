// Package ops implements the task operations shared by the CLI and MCP
// surfaces. Each operation loads the full collection from the store,
// applies an in-memory change, and saves only when something mutated.
// Read-only operations never save.
package ops

import (
	"github.com/hpungsan/todo/internal/task"
)

// findTask returns the index of the task with the given id, or -1.
// Lookup is a linear scan; the collection has no indices.
func findTask(tasks []task.Task, id string) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}
