// Package sqlite provides SQLite persistence over the target tool's own
// database file. The schema belongs to that tool: this backend never creates
// or migrates the workflow table, it only reads and appends rows.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/seedflow/seedflow/pkg/persistence"
	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

// Persistence implements the persistence layer for a local SQLite database
// file. Every operation opens its own short-lived connection, so a batch of
// inserts never holds a lock across files.
type Persistence struct {
	path   string
	logger *slog.Logger
}

// NewPersistence creates a SQLite persistence layer bound to the database at
// path. It fails with persistence.ErrDatabaseMissing when the file does not
// exist; starting the target tool once creates it.
func NewPersistence(logger *slog.Logger, path string) (*Persistence, error) {
	_, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w at %s", persistence.ErrDatabaseMissing, path)
		}

		return nil, fmt.Errorf("failed to stat database file: %w", err)
	}

	return &Persistence{path: path, logger: logger}, nil
}

// Path returns the database file location this backend is bound to.
func (p *Persistence) Path() string {
	return p.path
}

// open dials a fresh connection. Callers own the returned handle and must
// close it.
func (p *Persistence) open() (*sql.DB, error) {
	database, err := sql.Open("sqlite", p.path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return database, nil
}

// HealthCheck verifies the database file is still present and reachable.
func (p *Persistence) HealthCheck(ctx context.Context) error {
	if _, err := os.Stat(p.path); os.IsNotExist(err) {
		return fmt.Errorf("%w at %s", persistence.ErrDatabaseMissing, p.path)
	}

	database, err := p.open()
	if err != nil {
		return err
	}

	defer p.closeQuietly(ctx, database)

	err = database.PingContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	return nil
}

func (p *Persistence) closeQuietly(ctx context.Context, database *sql.DB) {
	err := database.Close()
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to close database connection", "error", err)
	}
}
