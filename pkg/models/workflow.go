// Package models defines the domain models shared by the importer and its storage layer.
package models

import (
	"encoding/json"
	"time"
)

// DefaultWorkflowName is used when a definition file carries no name.
const DefaultWorkflowName = "Untitled Workflow"

// Workflow represents one workflow definition as the target tool stores it.
// Nodes and Connections are opaque to the importer: they are carried as raw
// JSON and only ever round-tripped, never inspected.
type Workflow struct {
	ID          int64           `json:"id,omitempty"`
	Name        string          `json:"name"`
	Nodes       json.RawMessage `json:"nodes"`
	Connections json.RawMessage `json:"connections"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at,omitzero"`
	UpdatedAt   time.Time       `json:"updated_at,omitzero"`
}

// ApplyDefaults fills the fields a definition file may omit.
func (w *Workflow) ApplyDefaults() {
	if w.Name == "" {
		w.Name = DefaultWorkflowName
	}

	if len(w.Nodes) == 0 {
		w.Nodes = json.RawMessage("[]")
	}

	if len(w.Connections) == 0 {
		w.Connections = json.RawMessage("{}")
	}
}
