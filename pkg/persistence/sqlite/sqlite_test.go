package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/seedflow/seedflow/pkg/models"
	"github.com/seedflow/seedflow/pkg/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestDatabase creates a database file carrying the workflow table the
// target tool would have created on first start.
func newTestDatabase(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "database.sqlite")

	database, err := sql.Open("sqlite", path)
	require.NoError(t, err)

	defer func() {
		require.NoError(t, database.Close())
	}()

	_, err = database.Exec(`
		CREATE TABLE workflow (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			nodes TEXT NOT NULL,
			connections TEXT NOT NULL,
			active INTEGER NOT NULL DEFAULT 0,
			createdAt TEXT NOT NULL,
			updatedAt TEXT NOT NULL
		)
	`)
	require.NoError(t, err)

	return path
}

func newTestPersistence(t *testing.T) *Persistence {
	t.Helper()

	p, err := NewPersistence(slog.Default(), newTestDatabase(t))
	require.NoError(t, err)

	return p
}

func TestNewPersistence_DatabaseMissing(t *testing.T) {
	_, err := NewPersistence(slog.Default(), filepath.Join(t.TempDir(), "database.sqlite"))

	require.Error(t, err)
	assert.True(t, persistence.IsDatabaseMissing(err))
}

func TestSaveWorkflow_RoundTrip(t *testing.T) {
	tests := []struct {
		name       string
		workflow   models.Workflow
		wantActive bool
	}{
		{
			name: "active workflow stores active as 1",
			workflow: models.Workflow{
				Name:        "Test",
				Nodes:       json.RawMessage(`[{"type":"webhook","position":[100,200]}]`),
				Connections: json.RawMessage(`{"webhook":{"main":[[]]}}`),
				Active:      true,
			},
			wantActive: true,
		},
		{
			name: "inactive workflow stores active as 0",
			workflow: models.Workflow{
				Name:        "Drafted",
				Nodes:       json.RawMessage(`[]`),
				Connections: json.RawMessage(`{}`),
				Active:      false,
			},
			wantActive: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			p := newTestPersistence(t)

			id, err := p.SaveWorkflow(ctx, &tt.workflow)
			require.NoError(t, err)
			assert.Positive(t, id)

			stored, err := p.WorkflowByID(ctx, id)
			require.NoError(t, err)

			assert.Equal(t, tt.workflow.Name, stored.Name)
			assert.JSONEq(t, string(tt.workflow.Nodes), string(stored.Nodes))
			assert.JSONEq(t, string(tt.workflow.Connections), string(stored.Connections))
			assert.Equal(t, tt.wantActive, stored.Active)
			assert.Equal(t, stored.CreatedAt, stored.UpdatedAt)
			assert.False(t, stored.CreatedAt.IsZero())
		})
	}
}

func TestSaveWorkflow_IsAdditive(t *testing.T) {
	ctx := context.Background()
	p := newTestPersistence(t)

	first := models.Workflow{Name: "Repeat", Nodes: json.RawMessage(`[]`), Connections: json.RawMessage(`{}`)}
	second := first

	firstID, err := p.SaveWorkflow(ctx, &first)
	require.NoError(t, err)

	secondID, err := p.SaveWorkflow(ctx, &second)
	require.NoError(t, err)

	assert.Equal(t, firstID+1, secondID)

	workflows, err := p.Workflows(ctx)
	require.NoError(t, err)
	require.Len(t, workflows, 2)

	assert.Equal(t, firstID, workflows[0].ID)
	assert.Equal(t, secondID, workflows[1].ID)
	assert.Equal(t, "Repeat", workflows[0].Name)
	assert.Equal(t, "Repeat", workflows[1].Name)
}

func TestWorkflowByID_NotFound(t *testing.T) {
	p := newTestPersistence(t)

	_, err := p.WorkflowByID(context.Background(), 42)

	require.Error(t, err)
	assert.True(t, persistence.IsWorkflowNotFound(err))
}

func TestWorkflows_EmptyTable(t *testing.T) {
	p := newTestPersistence(t)

	workflows, err := p.Workflows(context.Background())
	require.NoError(t, err)
	assert.Empty(t, workflows)
}

func TestHealthCheck(t *testing.T) {
	ctx := context.Background()
	p := newTestPersistence(t)

	require.NoError(t, p.HealthCheck(ctx))

	require.NoError(t, os.Remove(p.Path()))

	err := p.HealthCheck(ctx)
	require.Error(t, err)
	assert.True(t, persistence.IsDatabaseMissing(err))
}

func TestSaveWorkflow_MissingTable(t *testing.T) {
	// A database file without the workflow table: the backend reports the
	// failure instead of creating schema.
	path := filepath.Join(t.TempDir(), "database.sqlite")
	require.NoError(t, os.WriteFile(path, nil, 0600))

	p, err := NewPersistence(slog.Default(), path)
	require.NoError(t, err)

	workflow := models.Workflow{Name: "Orphan", Nodes: json.RawMessage(`[]`), Connections: json.RawMessage(`{}`)}

	_, err = p.SaveWorkflow(context.Background(), &workflow)
	require.Error(t, err)

	var workflowErr *persistence.WorkflowError
	assert.ErrorAs(t, err, &workflowErr)
	assert.Equal(t, "Save", workflowErr.Op)
	assert.Equal(t, "Orphan", workflowErr.Name)
}
