package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/seedflow/seedflow/pkg/models"
	"github.com/seedflow/seedflow/pkg/persistence"
)

// timeLayout matches the ISO-8601 text the target tool writes into the
// createdAt and updatedAt columns.
const timeLayout = time.RFC3339Nano

// SaveWorkflow appends one row to the workflow table and returns its
// database-assigned identifier. Both timestamp columns receive the same
// instant. The statement commits on its own; a failure before commit leaves
// no visible row.
func (p *Persistence) SaveWorkflow(ctx context.Context, workflow *models.Workflow) (int64, error) {
	database, err := p.open()
	if err != nil {
		return 0, persistence.NewWorkflowError("Save", workflow.Name, err)
	}

	defer p.closeQuietly(ctx, database)

	now := time.Now().UTC()
	workflow.CreatedAt = now
	workflow.UpdatedAt = now

	query := `
		INSERT INTO workflow (name, nodes, connections, active, createdAt, updatedAt)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := database.ExecContext(ctx, query,
		workflow.Name,
		string(workflow.Nodes),
		string(workflow.Connections),
		boolToInt(workflow.Active),
		now.Format(timeLayout),
		now.Format(timeLayout),
	)
	if err != nil {
		return 0, persistence.NewWorkflowError("Save", workflow.Name, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, persistence.NewWorkflowError("Save", workflow.Name,
			fmt.Errorf("failed to read assigned row id: %w", err))
	}

	workflow.ID = id

	return id, nil
}

// Workflows returns all rows from the workflow table in insertion order.
func (p *Persistence) Workflows(ctx context.Context) ([]*models.Workflow, error) {
	database, err := p.open()
	if err != nil {
		return nil, err
	}

	defer p.closeQuietly(ctx, database)

	query := `
		SELECT id, name, nodes, connections, active, createdAt, updatedAt
		FROM workflow
		ORDER BY id ASC
	`

	rows, err := database.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query workflows: %w", err)
	}

	defer func() {
		err := rows.Close()
		if err != nil {
			p.logger.ErrorContext(ctx, "failed to close rows", "error", err)
		}
	}()

	workflows := make([]*models.Workflow, 0)

	for rows.Next() {
		workflow, err := scanWorkflow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan workflow: %w", err)
		}

		workflows = append(workflows, workflow)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("error iterating workflows: %w", err)
	}

	return workflows, nil
}

// WorkflowByID returns one workflow row by its identifier.
func (p *Persistence) WorkflowByID(ctx context.Context, id int64) (*models.Workflow, error) {
	database, err := p.open()
	if err != nil {
		return nil, err
	}

	defer p.closeQuietly(ctx, database)

	query := `
		SELECT id, name, nodes, connections, active, createdAt, updatedAt
		FROM workflow
		WHERE id = ?
	`

	workflow, err := scanWorkflow(database.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, persistence.ErrWorkflowNotFound
		}

		return nil, fmt.Errorf("failed to scan workflow: %w", err)
	}

	return workflow, nil
}

func scanWorkflow(scanner interface {
	Scan(dest ...any) error
}) (*models.Workflow, error) {
	var (
		workflow             models.Workflow
		nodes, connections   string
		active               int
		createdAt, updatedAt string
	)

	err := scanner.Scan(
		&workflow.ID,
		&workflow.Name,
		&nodes,
		&connections,
		&active,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	workflow.Nodes = json.RawMessage(nodes)
	workflow.Connections = json.RawMessage(connections)
	workflow.Active = active != 0

	workflow.CreatedAt, err = parseTimestamp(createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse createdAt: %w", err)
	}

	workflow.UpdatedAt, err = parseTimestamp(updatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse updatedAt: %w", err)
	}

	return &workflow, nil
}

// parseTimestamp accepts the layouts the target tool has historically
// written: RFC3339 and the space-separated SQLite datetime form.
func parseTimestamp(value string) (time.Time, error) {
	for _, layout := range []string{timeLayout, "2006-01-02 15:04:05", "2006-01-02T15:04:05"} {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}

func boolToInt(value bool) int {
	if value {
		return 1
	}

	return 0
}
