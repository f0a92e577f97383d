// Package cmd holds the factory helpers shared by the CLI commands.
package cmd

import (
	"context"
	"log/slog"

	"github.com/seedflow/seedflow/pkg/importer"
	"github.com/seedflow/seedflow/pkg/persistence"
	"github.com/seedflow/seedflow/pkg/persistence/sqlite"
)

// NewStoreOpener returns the store opener the importer dials once discovery
// succeeded. The target database is always a local SQLite file.
func NewStoreOpener(logger *slog.Logger, databasePath string) importer.StoreOpener {
	return func(context.Context) (persistence.Persistence, error) {
		return sqlite.NewPersistence(logger, databasePath)
	}
}

// NewPersistence opens the SQLite store directly, for commands that read the
// database without running an import.
func NewPersistence(logger *slog.Logger, databasePath string) (persistence.Persistence, error) {
	return sqlite.NewPersistence(logger, databasePath)
}
