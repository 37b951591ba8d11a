package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hpungsan/todo/internal/errors"
	"github.com/hpungsan/todo/internal/ops"
	"github.com/hpungsan/todo/internal/store"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	st *store.Store
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(st *store.Store) *Handlers {
	return &Handlers{st: st}
}

// Request types for each tool

// AddRequest represents the arguments for todo_add.
type AddRequest struct {
	Title    string `json:"title"`
	Category string `json:"category,omitempty"`
}

// UpdateRequest represents the arguments for todo_update.
type UpdateRequest struct {
	ID       string  `json:"id"`
	Title    *string `json:"title,omitempty"`
	Category *string `json:"category,omitempty"`
	Done     *bool   `json:"done,omitempty"`
}

// DeleteRequest represents the arguments for todo_delete.
type DeleteRequest struct {
	ID string `json:"id"`
}

// ListRequest represents the arguments for todo_list.
type ListRequest struct {
	Category *string `json:"category,omitempty"`
	Done     *bool   `json:"done,omitempty"`
	Search   *string `json:"search,omitempty"`
}

// Handler implementations

// HandleAdd handles the todo_add tool call.
func (h *Handlers) HandleAdd(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[AddRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Add(h.st, ops.AddInput{
		Title:    input.Title,
		Category: input.Category,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleUpdate handles the todo_update tool call.
func (h *Handlers) HandleUpdate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[UpdateRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Update(h.st, ops.UpdateInput{
		ID:       input.ID,
		Title:    input.Title,
		Category: input.Category,
		Done:     input.Done,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleDelete handles the todo_delete tool call.
func (h *Handlers) HandleDelete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[DeleteRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Delete(h.st, ops.DeleteInput{ID: input.ID})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleList handles the todo_list tool call.
func (h *Handlers) HandleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ListRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.List(h.st, ops.ListInput{
		Category: cleanFilter(input.Category),
		Done:     input.Done,
		Search:   cleanFilter(input.Search),
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleCategories handles the todo_categories tool call.
func (h *Handlers) HandleCategories(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := ops.Categories(h.st)
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// cleanFilter drops empty-string filters so they behave like the CLI's
// omitted flags.
func cleanFilter(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

// Result helpers

// errorResult creates an MCP error result from any error.
// Uses IsError: true so MCP clients recognize failures properly.
// Internal error details are not exposed to avoid leaking file paths.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	if tErr, ok := err.(*errors.TodoError); ok && tErr.Code != errors.ErrInternal {
		errorObj := map[string]any{
			"code":    tErr.Code,
			"message": tErr.Message,
			"status":  tErr.Status,
		}
		if tErr.Details != nil {
			errorObj["details"] = tErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    errors.ErrInternal,
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
