package orderitem

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via RestoreOrderItem")

// OrderItem is the aggregate root whose lifecycle this service owns.
// Items are created externally and restored from storage; they are never
// deleted here.
type OrderItem struct {
	id         kernel.ID
	orderID    kernel.ID
	workflow   Workflow
	lifecycle  Lifecycle
	assigneeID *kernel.ID
	expectedBy *time.Time

	isConstructed bool
}

// RestoreOrderItem rebuilds an item from storage.
func RestoreOrderItem(
	id, orderID kernel.ID,
	workflow Workflow,
	lifecycle Lifecycle,
	assigneeID *kernel.ID,
	expectedBy *time.Time,
) (*OrderItem, error) {
	if err := errors.Join(
		id.ValidateAs("order item id"),
		orderID.ValidateAs("order id"),
		workflow.id.ValidateAs("workflow id"),
		lifecycle.Validate(),
	); err != nil {
		return nil, err
	}
	item := &OrderItem{
		id:            id,
		orderID:       orderID,
		workflow:      workflow,
		lifecycle:     lifecycle,
		isConstructed: true,
	}
	if assigneeID != nil {
		if err := item.AssignTo(*assigneeID, expectedBy); err != nil {
			return nil, err
		}
	}
	return item, nil
}

func (o *OrderItem) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderItemIsNotConstructed
	}
	return nil
}

func (o *OrderItem) ID() kernel.ID {
	return o.id
}

func (o *OrderItem) OrderID() kernel.ID {
	return o.orderID
}

func (o *OrderItem) Workflow() Workflow {
	return o.workflow
}

func (o *OrderItem) Lifecycle() Lifecycle {
	return o.lifecycle
}

func (o *OrderItem) AssigneeID() *kernel.ID {
	if o.assigneeID == nil {
		return nil
	}
	id := *o.assigneeID
	return &id
}

func (o *OrderItem) ExpectedBy() *time.Time {
	if o.expectedBy == nil {
		return nil
	}
	at := *o.expectedBy
	return &at
}

// Cancel moves an Active item to Cancelled. The caller must record the
// cancellation in the history ledger within the same transaction.
func (o *OrderItem) Cancel() error {
	next, err := o.lifecycle.Cancel()
	if err != nil {
		return err
	}
	o.lifecycle = next
	return nil
}

// Complete moves an Active item to Completed.
func (o *OrderItem) Complete() error {
	next, err := o.lifecycle.Complete()
	if err != nil {
		return err
	}
	o.lifecycle = next
	return nil
}

// CheckProgress reports whether statusID may be recorded as reached:
// the item must be Active and the status must be a planned step.
func (o *OrderItem) CheckProgress(statusID kernel.ID) error {
	if o.lifecycle != Active {
		return errs.NewInvalidTransitionErrorWithCause(
			o.lifecycle.String(), o.lifecycle.String(),
			fmt.Errorf("cannot record progress on a %s item", o.lifecycle),
		)
	}
	if !o.workflow.Includes(statusID) {
		return errs.NewValueIsInvalidErrorWithCause(
			"statusId",
			fmt.Errorf("%d is not a step of workflow %d", statusID, o.workflow.id),
		)
	}
	return nil
}

// AssignTo hands the item to a user, optionally with the date it is expected by.
func (o *OrderItem) AssignTo(assigneeID kernel.ID, expectedBy *time.Time) error {
	if err := assigneeID.ValidateAs("assigneeId"); err != nil {
		return err
	}
	o.assigneeID = &assigneeID
	if expectedBy == nil {
		o.expectedBy = nil
		return nil
	}
	at := expectedBy.UTC()
	o.expectedBy = &at
	return nil
}
