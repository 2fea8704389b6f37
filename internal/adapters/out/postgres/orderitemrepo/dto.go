// Package orderitemrepo provides data transfer objects and mapping functions for order item persistence.
// Order items and workflow templates are written by order placement; this
// package reads them and persists lifecycle and assignment changes.
package orderitemrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/orderitem"
)

// WorkflowDTO is a workflow template.
type WorkflowDTO struct {
	ID    int64             `gorm:"primaryKey;autoIncrement"`
	Name  string            `gorm:"size:255;not null"`
	Steps []WorkflowStepDTO `gorm:"foreignKey:WorkflowID;constraint:OnDelete:CASCADE"`
}

func (WorkflowDTO) TableName() string {
	return "workflows"
}

// WorkflowStepDTO places a status at a position of a template. Statuses
// are referenced by ID only: removing a status does not rewrite templates.
type WorkflowStepDTO struct {
	WorkflowID int64 `gorm:"primaryKey"`
	Position   int   `gorm:"primaryKey"`
	StatusID   int64 `gorm:"not null"`
}

func (WorkflowStepDTO) TableName() string {
	return "workflow_steps"
}

// OrderItemDTO represents the database structure for persisting order items.
type OrderItemDTO struct {
	ID         int64       `gorm:"primaryKey;autoIncrement"`
	OrderID    int64       `gorm:"not null;index"`
	WorkflowID int64       `gorm:"not null;index"`
	Workflow   WorkflowDTO `gorm:"foreignKey:WorkflowID"`
	Lifecycle  string      `gorm:"size:16;not null;default:'Active'"`
	AssigneeID *int64      `gorm:"index"`
	ExpectedBy *time.Time
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain maps the mutable part of an order item. The workflow is
// owned by the template tables and never written from here.
func fromDomain(item *orderitem.OrderItem) OrderItemDTO {
	var assigneeID *int64
	if id := item.AssigneeID(); id != nil {
		raw := id.Int64()
		assigneeID = &raw
	}

	return OrderItemDTO{
		ID:         item.ID().Int64(),
		OrderID:    item.OrderID().Int64(),
		WorkflowID: item.Workflow().ID().Int64(),
		Lifecycle:  item.Lifecycle().String(),
		AssigneeID: assigneeID,
		ExpectedBy: item.ExpectedBy(),
	}
}

// toDomain expects dto.Workflow.Steps preloaded in position order.
func toDomain(dto OrderItemDTO) (*orderitem.OrderItem, error) {
	sequence := make([]kernel.ID, 0, len(dto.Workflow.Steps))
	for _, step := range dto.Workflow.Steps {
		sequence = append(sequence, kernel.ID(step.StatusID))
	}

	workflow, err := orderitem.NewWorkflow(kernel.ID(dto.Workflow.ID), dto.Workflow.Name, sequence)
	if err != nil {
		return nil, err
	}

	lifecycle, err := orderitem.ParseLifecycle(dto.Lifecycle)
	if err != nil {
		return nil, err
	}

	var assigneeID *kernel.ID
	if dto.AssigneeID != nil {
		id := kernel.ID(*dto.AssigneeID)
		assigneeID = &id
	}

	return orderitem.RestoreOrderItem(
		kernel.ID(dto.ID),
		kernel.ID(dto.OrderID),
		workflow,
		lifecycle,
		assigneeID,
		dto.ExpectedBy,
	)
}
