package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/hpungsan/todo/internal/config"
	"github.com/hpungsan/todo/internal/store"
)

// Version is set via -ldflags at build time.
var Version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to load config: %v\n", err)
		os.Exit(1)
	}

	st := store.New(cfg.DBPath)

	app := newCLIApp(st)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if exitErr, ok := err.(cli.ExitCoder); ok {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}
