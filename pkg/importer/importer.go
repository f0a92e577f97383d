// Package importer implements the batch pipeline that seeds workflow
// definition files into the target tool's database.
package importer

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/seedflow/seedflow/pkg/persistence"
	"github.com/seedflow/seedflow/pkg/workfile"
)

// ErrNoWorkflowFiles indicates the workflows directory holds no definition
// files. It is one of the two conditions that abort a run before any import
// attempt; the other is persistence.ErrDatabaseMissing.
var ErrNoWorkflowFiles = errors.New("no workflow files found")

// StoreOpener dials the workflow store. The importer calls it once per run,
// after discovery succeeded, so an empty directory never touches the
// database.
type StoreOpener func(ctx context.Context) (persistence.Persistence, error)

// Summary describes one finished import run.
type Summary struct {
	RunID    string
	Found    int
	Imported int
}

// Importer runs the discover → verify → load → insert pipeline. Files are
// processed strictly in order; a failure on one file is reported and the
// batch continues.
type Importer struct {
	config    Config
	logger    *slog.Logger
	reporter  *Reporter
	openStore StoreOpener
}

// New validates the configuration and builds an importer.
func New(logger *slog.Logger, reporter *Reporter, config Config, openStore StoreOpener) (*Importer, error) {
	err := config.Validate()
	if err != nil {
		return nil, err
	}

	return &Importer{
		config:    config,
		logger:    logger,
		reporter:  reporter,
		openStore: openStore,
	}, nil
}

// Run executes one import run. It returns an error only for the fatal
// preconditions (empty discovery, unreachable store); per-file failures are
// reported and folded into the summary instead.
func (i *Importer) Run(ctx context.Context) (*Summary, error) {
	runID := uuid.NewString()
	logger := i.logger.With("run_id", runID)

	i.reporter.Banner()

	files, err := workfile.Discover(i.config.WorkflowsDir)
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		i.reporter.NoFiles(i.config.WorkflowsDir)

		return nil, ErrNoWorkflowFiles
	}

	i.reporter.Found(len(files))

	var store persistence.Persistence

	if !i.config.DryRun {
		store, err = i.openStore(ctx)
		if err != nil {
			if persistence.IsDatabaseMissing(err) {
				i.reporter.DatabaseMissing(i.config.DatabasePath)
			}

			return nil, err
		}

		i.reporter.UsingDatabase(i.config.DatabasePath)
	}

	summary := &Summary{RunID: runID, Found: len(files)}

	for _, file := range files {
		if i.importFile(ctx, logger, store, file) {
			summary.Imported++
		}
	}

	i.reporter.Summary(summary.Imported)

	if !i.config.DryRun {
		i.reporter.NextSteps()
	}

	logger.InfoContext(ctx, "import run finished",
		"found", summary.Found,
		"imported", summary.Imported,
		"dry_run", i.config.DryRun,
	)

	return summary, nil
}

// importFile attempts one file end to end and reports the outcome. It never
// returns an error: per-file failures must not abort the batch.
func (i *Importer) importFile(ctx context.Context, logger *slog.Logger, store persistence.Persistence, file string) bool {
	workflow, err := workfile.Load(file)
	if err != nil {
		logger.WarnContext(ctx, "skipping workflow file", "file", file, "error", err)
		i.reporter.FileFailed(file, err)

		return false
	}

	if i.config.DryRun {
		i.reporter.Parsed(workflow.Name)

		return true
	}

	id, err := store.SaveWorkflow(ctx, workflow)
	if err != nil {
		logger.WarnContext(ctx, "skipping workflow file", "file", file, "error", err)
		i.reporter.FileFailed(file, err)

		return false
	}

	i.reporter.Imported(workflow.Name, id)

	return true
}
