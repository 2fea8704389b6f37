package services

import (
	"slices"
	"time"

	"fulfillment/internal/core/domain/model/history"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/orderitem"
	"fulfillment/internal/core/domain/model/status"
	"fulfillment/internal/pkg/errs"
)

// WorkflowView is the caller-facing workflow of one order item.
type WorkflowView struct {
	OrderItemID     kernel.ID
	Lifecycle       orderitem.Lifecycle
	Sequence        []WorkflowStep
	CompletedStatus []CompletedStatus
}

// WorkflowStep is one status of the projected sequence.
type WorkflowStep struct {
	ID                kernel.ID
	Label             string
	VisibleToCustomer bool
	RoleIDs           []kernel.ID
}

// CompletedStatus is the progress overlay entry of one history record.
type CompletedStatus struct {
	Actor     string
	Timestamp time.Time
	StatusID  kernel.ID
}

// WorkflowInput is everything a projection reads, loaded by the caller.
type WorkflowInput struct {
	Item       *orderitem.OrderItem
	Statuses   map[kernel.ID]*status.Status
	Roles      RoleVisibilityIndex
	History    []*history.Record
	ActorNames map[kernel.ID]string
}

// WorkflowProjector combines an order item, the catalog, role visibility
// and history into a WorkflowView.
//
// Active and completed items show their workflow template. Cancelled items
// show what actually happened: the statuses of their history records.
type WorkflowProjector struct{}

func NewWorkflowProjector() WorkflowProjector {
	return WorkflowProjector{}
}

// StatusIDs returns the status IDs Project will resolve for item.
func (WorkflowProjector) StatusIDs(item *orderitem.OrderItem, records []*history.Record) []kernel.ID {
	if item.Lifecycle() != orderitem.Cancelled {
		return item.Workflow().Sequence()
	}
	ids := make([]kernel.ID, 0, len(records))
	for _, r := range records {
		if !slices.Contains(ids, r.StatusID()) {
			ids = append(ids, r.StatusID())
		}
	}
	return ids
}

// ActorIDs returns the distinct actors of records in first-seen order.
func (WorkflowProjector) ActorIDs(records []*history.Record) []kernel.ID {
	ids := make([]kernel.ID, 0, len(records))
	for _, r := range records {
		if !slices.Contains(ids, r.ActorID()) {
			ids = append(ids, r.ActorID())
		}
	}
	return ids
}

// Project builds the view. A status referenced by the template (or, for a
// cancelled item, by history) that is missing from in.Statuses fails with
// errs.ObjectNotFoundError.
func (p WorkflowProjector) Project(in WorkflowInput) (WorkflowView, error) {
	if in.Item == nil {
		return WorkflowView{}, errs.NewValueIsRequiredError("item")
	}

	records := slices.Clone(in.History)
	history.SortByTimestamp(records)

	stepIDs := in.Item.Workflow().Sequence()
	if in.Item.Lifecycle() == orderitem.Cancelled {
		stepIDs = make([]kernel.ID, 0, len(records))
		for _, r := range records {
			stepIDs = append(stepIDs, r.StatusID())
		}
	}

	sequence := make([]WorkflowStep, 0, len(stepIDs))
	for _, statusID := range stepIDs {
		step, err := p.step(in, statusID)
		if err != nil {
			return WorkflowView{}, err
		}
		sequence = append(sequence, step)
	}

	completed := make([]CompletedStatus, 0, len(records))
	for _, r := range records {
		completed = append(completed, CompletedStatus{
			Actor:     displayName(in.ActorNames, r.ActorID()),
			Timestamp: r.Timestamp(),
			StatusID:  r.StatusID(),
		})
	}

	return WorkflowView{
		OrderItemID:     in.Item.ID(),
		Lifecycle:       in.Item.Lifecycle(),
		Sequence:        sequence,
		CompletedStatus: completed,
	}, nil
}

func (WorkflowProjector) step(in WorkflowInput, statusID kernel.ID) (WorkflowStep, error) {
	s, ok := in.Statuses[statusID]
	if !ok || s == nil {
		return WorkflowStep{}, errs.NewObjectNotFoundError("statusID", statusID)
	}
	return WorkflowStep{
		ID:                s.ID(),
		Label:             s.Label(),
		VisibleToCustomer: s.VisibleToCustomer(),
		RoleIDs:           in.Roles.VisibleRoleIDsFor(s.ID()),
	}, nil
}

// displayName falls back to the decimal actor ID for unknown actors.
func displayName(names map[kernel.ID]string, actorID kernel.ID) string {
	if name, ok := names[actorID]; ok && name != "" {
		return name
	}
	return actorID.String()
}
