package http

import (
	"time"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/history"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/status"
	"fulfillment/internal/core/domain/services"
)

// Error is the body of every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type NewStatus struct {
	Label             string `json:"label"`
	Description       string `json:"description"`
	VisibleToCustomer bool   `json:"visibleToCustomer"`
	DependsOn         *int64 `json:"dependsOn"`
}

// StatusChanges lists the fields to change; absent fields are kept.
// ClearDependsOn turns the status into a root.
type StatusChanges struct {
	Label             *string `json:"label"`
	Description       *string `json:"description"`
	VisibleToCustomer *bool   `json:"visibleToCustomer"`
	DependsOn         *int64  `json:"dependsOn"`
	ClearDependsOn    bool    `json:"clearDependsOn"`
}

func (c StatusChanges) patch() status.Patch {
	return status.Patch{
		Label:             c.Label,
		Description:       c.Description,
		VisibleToCustomer: c.VisibleToCustomer,
		DependsOn:         toIDPtr(c.DependsOn),
		ClearDependsOn:    c.ClearDependsOn,
	}
}

// StatusTransition is the body of cancel and progress requests.
type StatusTransition struct {
	StatusID int64 `json:"statusId"`
	ActorID  int64 `json:"actorId"`
}

type Assignment struct {
	AssigneeID int64      `json:"assigneeId"`
	ExpectedBy *time.Time `json:"expectedBy"`
}

type Status struct {
	ID                int64  `json:"id"`
	Label             string `json:"label"`
	Description       string `json:"description"`
	VisibleToCustomer bool   `json:"visibleToCustomer"`
	DependsOn         *int64 `json:"dependsOn"`
}

type WorkflowStep struct {
	ID                int64   `json:"id"`
	Label             string  `json:"label"`
	VisibleToCustomer bool    `json:"visibleToCustomer"`
	RoleIDs           []int64 `json:"roleIds"`
}

type CompletedStatus struct {
	Actor     string    `json:"actor"`
	Timestamp time.Time `json:"timestamp"`
	StatusID  int64     `json:"statusId"`
}

type Workflow struct {
	OrderItemID     int64             `json:"orderItemId"`
	Lifecycle       string            `json:"lifecycle"`
	Sequence        []WorkflowStep    `json:"sequence"`
	CompletedStatus []CompletedStatus `json:"completedStatus"`
}

type HistoryRecord struct {
	ID          string    `json:"id"`
	OrderItemID int64     `json:"orderItemId"`
	StatusID    int64     `json:"statusId"`
	ActorID     int64     `json:"actorId"`
	Kind        string    `json:"kind"`
	Timestamp   time.Time `json:"timestamp"`
}

type OrderItem struct {
	ID           int64      `json:"id"`
	OrderID      int64      `json:"orderId"`
	WorkflowID   int64      `json:"workflowId"`
	WorkflowName string     `json:"workflowName"`
	Lifecycle    string     `json:"lifecycle"`
	AssigneeID   *int64     `json:"assigneeId"`
	ExpectedBy   *time.Time `json:"expectedBy"`
}

func toIDPtr(raw *int64) *kernel.ID {
	if raw == nil {
		return nil
	}
	id := kernel.ID(*raw)
	return &id
}

func fromIDPtr(id *kernel.ID) *int64 {
	if id == nil {
		return nil
	}
	raw := id.Int64()
	return &raw
}

func toStatus(s *status.Status) Status {
	return Status{
		ID:                s.ID().Int64(),
		Label:             s.Label(),
		Description:       s.Description(),
		VisibleToCustomer: s.VisibleToCustomer(),
		DependsOn:         fromIDPtr(s.DependsOn()),
	}
}

func toWorkflow(view services.WorkflowView) Workflow {
	response := Workflow{
		OrderItemID:     view.OrderItemID.Int64(),
		Lifecycle:       view.Lifecycle.String(),
		Sequence:        make([]WorkflowStep, len(view.Sequence)),
		CompletedStatus: make([]CompletedStatus, len(view.CompletedStatus)),
	}

	for i, step := range view.Sequence {
		roleIDs := make([]int64, len(step.RoleIDs))
		for j, id := range step.RoleIDs {
			roleIDs[j] = id.Int64()
		}
		response.Sequence[i] = WorkflowStep{
			ID:                step.ID.Int64(),
			Label:             step.Label,
			VisibleToCustomer: step.VisibleToCustomer,
			RoleIDs:           roleIDs,
		}
	}

	for i, done := range view.CompletedStatus {
		response.CompletedStatus[i] = CompletedStatus{
			Actor:     done.Actor,
			Timestamp: done.Timestamp,
			StatusID:  done.StatusID.Int64(),
		}
	}

	return response
}

func toHistoryRecord(r *history.Record) HistoryRecord {
	return HistoryRecord{
		ID:          r.ID().String(),
		OrderItemID: r.OrderItemID().Int64(),
		StatusID:    r.StatusID().Int64(),
		ActorID:     r.ActorID().Int64(),
		Kind:        r.Kind().String(),
		Timestamp:   r.Timestamp(),
	}
}

func toOrderItem(item queries.ListOrderItemsByOrderQueryResponse) OrderItem {
	return OrderItem{
		ID:           item.ID.Int64(),
		OrderID:      item.OrderID.Int64(),
		WorkflowID:   item.WorkflowID.Int64(),
		WorkflowName: item.WorkflowName,
		Lifecycle:    item.Lifecycle.String(),
		AssigneeID:   fromIDPtr(item.AssigneeID),
		ExpectedBy:   item.ExpectedBy,
	}
}
