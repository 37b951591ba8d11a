// Package mcp exposes the to-do operations as MCP tools over stdio.
// It runs against the same data file as the CLI; there is no network
// transport.
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/hpungsan/todo/internal/store"
)

// toolEntry pairs a tool definition with a handler factory.
type toolEntry struct {
	def     mcp.Tool
	handler func(*Handlers) server.ToolHandlerFunc
}

// toolRegistry lists all tools in registration order.
var toolRegistry = []toolEntry{
	{addToolDef, func(h *Handlers) server.ToolHandlerFunc { return h.HandleAdd }},
	{updateToolDef, func(h *Handlers) server.ToolHandlerFunc { return h.HandleUpdate }},
	{deleteToolDef, func(h *Handlers) server.ToolHandlerFunc { return h.HandleDelete }},
	{listToolDef, func(h *Handlers) server.ToolHandlerFunc { return h.HandleList }},
	{categoriesToolDef, func(h *Handlers) server.ToolHandlerFunc { return h.HandleCategories }},
}

// Tool definitions.
var (
	addToolDef = mcp.NewTool("todo_add",
		mcp.WithDescription("Add a new to-do item"),
		mcp.WithString("title", mcp.Required(), mcp.Description("Title of the item")),
		mcp.WithString("category", mcp.Description("Category (default: General)")),
	)

	updateToolDef = mcp.NewTool("todo_update",
		mcp.WithDescription("Update an existing to-do item by id"),
		mcp.WithString("id", mcp.Required(), mcp.Description("Item ID")),
		mcp.WithString("title", mcp.Description("New title")),
		mcp.WithString("category", mcp.Description("New category")),
		mcp.WithBoolean("done", mcp.Description("New completion state")),
	)

	deleteToolDef = mcp.NewTool("todo_delete",
		mcp.WithDescription("Delete a to-do item by id"),
		mcp.WithString("id", mcp.Required(), mcp.Description("Item ID")),
	)

	listToolDef = mcp.NewTool("todo_list",
		mcp.WithDescription("List to-do items with optional filters (all filters are ANDed)"),
		mcp.WithString("category", mcp.Description("Filter by category (case-insensitive exact match)")),
		mcp.WithBoolean("done", mcp.Description("Filter by completion state")),
		mcp.WithString("search", mcp.Description("Case-insensitive substring search in title")),
	)

	categoriesToolDef = mcp.NewTool("todo_categories",
		mcp.WithDescription("Count to-do items per category, sorted by category name"),
	)
)

// NewServer creates a new MCP server with all to-do tools registered.
func NewServer(st *store.Store, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"todo",
		version,
		server.WithToolCapabilities(true),
	)

	h := NewHandlers(st)
	for _, entry := range toolRegistry {
		s.AddTool(entry.def, entry.handler(h))
	}

	return s
}

// Run starts the MCP server using stdio transport.
func Run(st *store.Store, version string) error {
	return server.ServeStdio(NewServer(st, version))
}
