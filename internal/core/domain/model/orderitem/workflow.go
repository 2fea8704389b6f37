package orderitem

import (
	"slices"

	"fulfillment/internal/core/domain/model/kernel"
)

// Workflow is the ordered plan of status steps assigned to an order item
// when it is placed. It is read only for this service.
type Workflow struct {
	id       kernel.ID
	name     string
	sequence []kernel.ID
}

// NewWorkflow builds a workflow value. An empty sequence is allowed.
func NewWorkflow(id kernel.ID, name string, sequence []kernel.ID) (Workflow, error) {
	if err := id.ValidateAs("workflow id"); err != nil {
		return Workflow{}, err
	}
	for _, statusID := range sequence {
		if err := statusID.ValidateAs("workflow sequence"); err != nil {
			return Workflow{}, err
		}
	}
	return Workflow{id: id, name: name, sequence: slices.Clone(sequence)}, nil
}

func (w Workflow) ID() kernel.ID {
	return w.id
}

func (w Workflow) Name() string {
	return w.name
}

// Sequence returns a copy of the planned status IDs in order.
func (w Workflow) Sequence() []kernel.ID {
	return slices.Clone(w.sequence)
}

// Includes reports whether statusID is a planned step.
func (w Workflow) Includes(statusID kernel.ID) bool {
	return slices.Contains(w.sequence, statusID)
}
