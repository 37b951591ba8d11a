package main

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/urfave/cli/v2"

	"github.com/hpungsan/todo/internal/errors"
	"github.com/hpungsan/todo/internal/mcp"
	"github.com/hpungsan/todo/internal/ops"
	"github.com/hpungsan/todo/internal/store"
	"github.com/hpungsan/todo/internal/task"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(st *store.Store) *cli.App {
	app := &cli.App{
		Name:    "todo",
		Usage:   "A simple console-based to-do manager",
		Version: Version,
		Commands: []*cli.Command{
			addCmd(st),
			updateCmd(st),
			deleteCmd(st),
			listCmd(st),
			categoriesCmd(st),
			mcpCmd(st),
		},
		// No subcommand prints help and exits 0; an unknown
		// subcommand is an argument error.
		Action: func(c *cli.Context) error {
			if c.NArg() > 0 {
				return cli.Exit(fmt.Sprintf("unknown command %q", c.Args().First()), 2)
			}
			return cli.ShowAppHelp(c)
		},
	}
	// Disable default exit error handling so callers (and tests)
	// observe the returned error.
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// addCmd creates the add command.
func addCmd(st *store.Store) *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Add a new to-do item",
		ArgsUsage: "<title>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "category", Aliases: []string{"c"}, Value: task.DefaultCategory, Usage: "Category"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return cli.Exit("usage: todo add <title> [--category NAME]", 2)
			}

			output, err := ops.Add(st, ops.AddInput{
				Title:    c.Args().First(),
				Category: c.String("category"),
			})
			if err != nil {
				return outputError(err)
			}

			fmt.Printf("Added: %s\n", output.Task.ID)
			return nil
		},
	}
}

// updateCmd creates the update command.
func updateCmd(st *store.Store) *cli.Command {
	return &cli.Command{
		Name:      "update",
		Usage:     "Update an existing item",
		ArgsUsage: "<id>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Usage: "New title"},
			&cli.StringFlag{Name: "category", Aliases: []string{"c"}, Usage: "New category"},
			&cli.StringFlag{Name: "done", Usage: "Mark done (true/false)"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return cli.Exit("usage: todo update <id> [--title T] [--category C] [--done true|false]", 2)
			}

			input := ops.UpdateInput{ID: c.Args().First()}
			if c.IsSet("title") {
				title := c.String("title")
				input.Title = &title
			}
			if c.IsSet("category") {
				category := c.String("category")
				input.Category = &category
			}
			if c.IsSet("done") {
				// Bad boolean literals are reported before any load.
				done, err := parseBool(c.String("done"))
				if err != nil {
					return cli.Exit(err.Error(), 2)
				}
				input.Done = &done
			}

			output, err := ops.Update(st, input)
			if err != nil {
				return outputError(err)
			}

			if !output.Changed {
				fmt.Println("Nothing to update.")
				return nil
			}
			fmt.Printf("Updated: %s\n", output.Task.ID)
			return nil
		},
	}
}

// deleteCmd creates the delete command.
func deleteCmd(st *store.Store) *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete an item by id",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return cli.Exit("usage: todo delete <id>", 2)
			}

			output, err := ops.Delete(st, ops.DeleteInput{ID: c.Args().First()})
			if err != nil {
				return outputError(err)
			}

			fmt.Printf("Deleted: %s\n", output.ID)
			return nil
		},
	}
}

// listCmd creates the list command.
func listCmd(st *store.Store) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List items with optional filters",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "category", Aliases: []string{"c"}, Usage: "Filter by category (case-insensitive)"},
			&cli.StringFlag{Name: "done", Usage: "Filter by done status (true/false)"},
			&cli.StringFlag{Name: "search", Aliases: []string{"s"}, Usage: "Case-insensitive substring search in title"},
		},
		Action: func(c *cli.Context) error {
			input := ops.ListInput{}
			if category := c.String("category"); category != "" {
				input.Category = &category
			}
			if c.IsSet("done") {
				done, err := parseBool(c.String("done"))
				if err != nil {
					return cli.Exit(err.Error(), 2)
				}
				input.Done = &done
			}
			if search := c.String("search"); search != "" {
				input.Search = &search
			}

			output, err := ops.List(st, input)
			if err != nil {
				return outputError(err)
			}

			printTable(output.Items)
			return nil
		},
	}
}

// categoriesCmd creates the categories command.
func categoriesCmd(st *store.Store) *cli.Command {
	return &cli.Command{
		Name:  "categories",
		Usage: "List all categories with item counts",
		Action: func(c *cli.Context) error {
			output, err := ops.Categories(st)
			if err != nil {
				return outputError(err)
			}

			if len(output.Categories) == 0 {
				fmt.Println("No categories (no items).")
				return nil
			}

			width := 0
			for _, cat := range output.Categories {
				if len(cat.Name) > width {
					width = len(cat.Name)
				}
			}
			for _, cat := range output.Categories {
				fmt.Printf("  %-*s  %d\n", width, cat.Name, cat.Count)
			}
			return nil
		},
	}
}

// mcpCmd creates the mcp command.
func mcpCmd(st *store.Store) *cli.Command {
	return &cli.Command{
		Name:  "mcp",
		Usage: "Serve the to-do operations as MCP tools over stdio",
		Action: func(c *cli.Context) error {
			if err := mcp.Run(st, Version); err != nil {
				return cli.Exit(err.Error(), 1)
			}
			return nil
		},
	}
}

// Helper functions

// printTable renders tasks as an aligned plain-text table. Column
// widths are the max of header and cell lengths; columns are joined
// by two spaces under a dash rule.
func printTable(tasks []task.Task) {
	if len(tasks) == 0 {
		fmt.Println("No items found.")
		return
	}

	headers := []string{"ID", "Title", "Category", "Done", "Created", "Updated"}
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []string{
			truncate(t.ID, 8),
			t.Title,
			t.Category,
			boolLabel(t.Done),
			truncate(t.CreatedAt, 19),
			truncate(t.UpdatedAt, 19),
		})
	}

	// Widths count runes, not bytes, so multibyte titles stay aligned
	// (fmt's string padding is also per rune).
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := utf8.RuneCountInString(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	printRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = fmt.Sprintf("%-*s", widths[i], cell)
		}
		fmt.Println(strings.Join(parts, "  "))
	}

	printRow(headers)
	dashes := make([]string, len(headers))
	for i, w := range widths {
		dashes[i] = strings.Repeat("-", w)
	}
	printRow(dashes)
	for _, row := range rows {
		printRow(row)
	}
}

// boolLabel renders a done flag for the table.
func boolLabel(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// truncate returns at most the first n runes of s.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// parseBool parses the boolean literals accepted by --done.
func parseBool(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean value %q (expected true/false, 1/0, or yes/no)", value)
}

// outputError maps an operation error to a CLI exit error. Not-found
// exits 1; invalid input exits 2; everything else (persistence and
// runtime failures) exits 1.
func outputError(err error) error {
	if tErr, ok := err.(*errors.TodoError); ok {
		switch tErr.Code {
		case errors.ErrNotFound:
			return cli.Exit(fmt.Sprintf("Error: %s.", tErr.Message), 1)
		case errors.ErrInvalidRequest:
			return cli.Exit(fmt.Sprintf("Error: %s.", tErr.Message), 2)
		}
	}
	return cli.Exit(fmt.Sprintf("error: %v", err), 1)
}
