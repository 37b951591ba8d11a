// Package task defines the to-do record model: identity and timestamp
// generation, mutation rules, and strict JSON decoding for the data file.
package task

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DefaultCategory is assigned to tasks created without an explicit category.
const DefaultCategory = "General"

// TimeLayout is the timestamp format used in the data file: ISO-8601 UTC
// with fixed-width microsecond precision. Fixed width keeps timestamps
// lexicographically ordered and makes the 19-character date+time prefix
// stable for display.
const TimeLayout = "2006-01-02T15:04:05.000000Z07:00"

// Task represents a single to-do item.
type Task struct {
	// ID is a UUID that uniquely identifies this task. Immutable.
	ID string `json:"id"`

	// Title is the free-form task text.
	Title string `json:"title"`

	// Category groups tasks. Stored case-sensitively; filtering is
	// case-insensitive.
	Category string `json:"category"`

	// Done marks the task as completed.
	Done bool `json:"done"`

	// CreatedAt is set once at creation. Immutable.
	CreatedAt string `json:"created_at"`

	// UpdatedAt is refreshed by Touch on every mutation.
	UpdatedAt string `json:"updated_at"`
}

// Now returns the current UTC time in the data file timestamp format.
func Now() string {
	return time.Now().UTC().Format(TimeLayout)
}

// New creates a task with a fresh ID, done=false, and identical
// creation/update timestamps. An empty category falls back to
// DefaultCategory.
func New(title, category string) Task {
	if category == "" {
		category = DefaultCategory
	}
	now := Now()
	return Task{
		ID:        uuid.NewString(),
		Title:     title,
		Category:  category,
		Done:      false,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch refreshes UpdatedAt. Every change to Title, Category, or Done
// must be followed by a Touch before the task is persisted.
func (t *Task) Touch() {
	t.UpdatedAt = Now()
}

// UnmarshalJSON decodes a task strictly: unknown fields and missing
// fields are rejected rather than silently defaulted, so a legacy or
// hand-edited data file fails loudly at load time.
func (t *Task) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID        *string `json:"id"`
		Title     *string `json:"title"`
		Category  *string `json:"category"`
		Done      *bool   `json:"done"`
		CreatedAt *string `json:"created_at"`
		UpdatedAt *string `json:"updated_at"`
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("decode task: %w", err)
	}

	required := []struct {
		name    string
		present bool
	}{
		{"id", raw.ID != nil},
		{"title", raw.Title != nil},
		{"category", raw.Category != nil},
		{"done", raw.Done != nil},
		{"created_at", raw.CreatedAt != nil},
		{"updated_at", raw.UpdatedAt != nil},
	}
	for _, f := range required {
		if !f.present {
			return fmt.Errorf("task missing required field %q", f.name)
		}
	}

	if *raw.ID == "" {
		return fmt.Errorf("task has empty id")
	}
	if *raw.Title == "" {
		return fmt.Errorf("task %s has empty title", *raw.ID)
	}
	if _, err := time.Parse(time.RFC3339, *raw.CreatedAt); err != nil {
		return fmt.Errorf("task %s has invalid created_at: %w", *raw.ID, err)
	}
	if _, err := time.Parse(time.RFC3339, *raw.UpdatedAt); err != nil {
		return fmt.Errorf("task %s has invalid updated_at: %w", *raw.ID, err)
	}

	t.ID = *raw.ID
	t.Title = *raw.Title
	t.Category = *raw.Category
	t.Done = *raw.Done
	t.CreatedAt = *raw.CreatedAt
	t.UpdatedAt = *raw.UpdatedAt
	return nil
}
