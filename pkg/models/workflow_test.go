package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkflow_ApplyDefaults(t *testing.T) {
	tests := []struct {
		name            string
		workflow        Workflow
		wantName        string
		wantNodes       string
		wantConnections string
		wantActive      bool
	}{
		{
			name:            "empty workflow gets all defaults",
			workflow:        Workflow{},
			wantName:        DefaultWorkflowName,
			wantNodes:       "[]",
			wantConnections: "{}",
			wantActive:      false,
		},
		{
			name: "populated workflow is left untouched",
			workflow: Workflow{
				Name:        "Daily Report",
				Nodes:       json.RawMessage(`[{"type":"cron"}]`),
				Connections: json.RawMessage(`{"cron":{"main":[]}}`),
				Active:      true,
			},
			wantName:        "Daily Report",
			wantNodes:       `[{"type":"cron"}]`,
			wantConnections: `{"cron":{"main":[]}}`,
			wantActive:      true,
		},
		{
			name: "missing nodes and connections get empty collections",
			workflow: Workflow{
				Name: "Partial",
			},
			wantName:        "Partial",
			wantNodes:       "[]",
			wantConnections: "{}",
			wantActive:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.workflow.ApplyDefaults()

			assert.Equal(t, tt.wantName, tt.workflow.Name)
			assert.JSONEq(t, tt.wantNodes, string(tt.workflow.Nodes))
			assert.JSONEq(t, tt.wantConnections, string(tt.workflow.Connections))
			assert.Equal(t, tt.wantActive, tt.workflow.Active)
		})
	}
}
