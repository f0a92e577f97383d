// Package persistence provides the storage abstraction over the target
// tool's workflow database.
package persistence

import (
	"context"

	"github.com/seedflow/seedflow/pkg/models"
)

type Persistence interface {
	// SaveWorkflow appends one workflow row and returns its database-assigned
	// identifier. Each call is committed on its own; there is no batch
	// transaction spanning calls.
	SaveWorkflow(ctx context.Context, workflow *models.Workflow) (int64, error)

	Workflows(ctx context.Context) ([]*models.Workflow, error)
	WorkflowByID(ctx context.Context, id int64) (*models.Workflow, error)
	HealthCheck(ctx context.Context) error
}
