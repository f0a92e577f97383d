package main

import (
	"context"
	"os"

	"github.com/seedflow/seedflow/pkg/cmd"
	"github.com/seedflow/seedflow/pkg/importer"
	"github.com/seedflow/seedflow/pkg/log"
	cli "github.com/urfave/cli/v3"
)

// NewImportCommand builds the import subcommand: discover definition files,
// insert one row per file, report per-file and aggregate results.
func NewImportCommand() *cli.Command {
	return &cli.Command{
		Name:    "import",
		Aliases: []string{"i"},
		Usage:   "Import workflow definition files into the tool's database",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "workflows-dir",
				Aliases: []string{"d"},
				Usage:   "Directory containing *-workflow.json files",
				Value:   importer.DefaultWorkflowsDir,
				Sources: cli.EnvVars("SEEDFLOW_WORKFLOWS_DIR"),
			},
			&cli.StringFlag{
				Name:    "database",
				Usage:   "Path to the tool's SQLite database (defaults to ~/.n8n/database.sqlite)",
				Sources: cli.EnvVars("SEEDFLOW_DATABASE"),
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Parse and report without writing to the database",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			log.Setup(command.String("log-level"))

			logger := log.WithModule("importer")

			databasePath := command.String("database")
			if databasePath == "" {
				var err error

				databasePath, err = importer.DefaultDatabasePath()
				if err != nil {
					return err
				}
			}

			config := importer.Config{
				WorkflowsDir: command.String("workflows-dir"),
				DatabasePath: databasePath,
				DryRun:       command.Bool("dry-run"),
			}

			imp, err := importer.New(
				logger,
				importer.NewReporter(os.Stdout),
				config,
				cmd.NewStoreOpener(logger, databasePath),
			)
			if err != nil {
				return err
			}

			_, err = imp.Run(ctx)

			return err
		},
	}
}
