package main

import (
	"context"
	"log/slog"
	"os"

	cli "github.com/urfave/cli/v3"
)

const version = "0.2.0"

func main() {
	cmd := &cli.Command{
		Name:                  "seedflow",
		Usage:                 "Seed workflow definitions into a local n8n database",
		Version:               version,
		EnableShellCompletion: true,
		Commands: []*cli.Command{
			NewImportCommand(),
			NewListCommand(),
		},
	}

	err := cmd.Run(context.Background(), os.Args)
	if err != nil {
		slog.Error("seedflow failed", "error", err)
		os.Exit(1)
	}
}
