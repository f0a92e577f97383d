package importer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// DefaultWorkflowsDir is where exported definition files are expected when
// no directory is given on the command line.
const DefaultWorkflowsDir = "n8n-workflows"

// Config carries the run configuration explicitly; there is no ambient
// global state.
type Config struct {
	// WorkflowsDir is the directory scanned for *-workflow.json files.
	WorkflowsDir string `validate:"required"`

	// DatabasePath is the target tool's SQLite database file.
	DatabasePath string `validate:"required"`

	// DryRun parses and reports without touching the database.
	DryRun bool
}

// Validate checks the configuration before a run starts.
func (c Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())

	err := validate.Struct(c)
	if err != nil {
		return fmt.Errorf("invalid importer configuration: %w", err)
	}

	return nil
}

// DefaultDatabasePath resolves the target tool's database location under the
// user's home directory (~/.n8n/database.sqlite).
func DefaultDatabasePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}

	return filepath.Join(home, ".n8n", "database.sqlite"), nil
}
