package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/seedflow/seedflow/pkg/cmd"
	"github.com/seedflow/seedflow/pkg/importer"
	"github.com/seedflow/seedflow/pkg/log"
	cli "github.com/urfave/cli/v3"
)

// NewListCommand builds the list subcommand: print the workflow rows
// currently in the database, so an import can be verified without opening
// the tool's UI.
func NewListCommand() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List workflows currently stored in the tool's database",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "database",
				Usage:   "Path to the tool's SQLite database (defaults to ~/.n8n/database.sqlite)",
				Sources: cli.EnvVars("SEEDFLOW_DATABASE"),
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

			logger := log.WithModule("list")

			databasePath := command.String("database")
			if databasePath == "" {
				var err error

				databasePath, err = importer.DefaultDatabasePath()
				if err != nil {
					return err
				}
			}

			store, err := cmd.NewPersistence(logger, databasePath)
			if err != nil {
				return err
			}

			workflows, err := store.Workflows(ctx)
			if err != nil {
				return err
			}

			writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "ID\tNAME\tACTIVE\tUPDATED AT")

			for _, workflow := range workflows {
				fmt.Fprintf(writer, "%d\t%s\t%t\t%s\n",
					workflow.ID,
					workflow.Name,
					workflow.Active,
					workflow.UpdatedAt.Format("2006-01-02 15:04:05"),
				)
			}

			return writer.Flush()
		},
	}
}
