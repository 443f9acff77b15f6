// Package tui provides the interactive terminal workflow for filing a
// course withdrawal request. It implements a driving adapter following
// hexagonal architecture principles.
package tui

import (
	"github.com/uot-apps/withdrawal-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Workflow orchestrates the two-phase withdrawal workflow.
	Workflow driving.WorkflowService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(workflow driving.WorkflowService) *Ports {
	return &Ports{Workflow: workflow}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Workflow == nil {
		return ErrMissingWorkflowService
	}
	return nil
}
