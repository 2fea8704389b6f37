package queries

import (
	"context"
	"database/sql"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/orderitem"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// ListOrderItemsByOrderQueryHandler reads order items straight from the
// database, bypassing the aggregate mapping.
type ListOrderItemsByOrderQueryHandler struct {
	db *gorm.DB
}

func NewListOrderItemsByOrderQueryHandler(db *gorm.DB) ListOrderItemsByOrderQueryHandler {
	return ListOrderItemsByOrderQueryHandler{db: db}
}

// Handle returns the items ascending by ID. An order without items fails
// with errs.ObjectNotFoundError.
func (h ListOrderItemsByOrderQueryHandler) Handle(
	ctx context.Context,
	query ListOrderItemsByOrderQuery,
) ([]ListOrderItemsByOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]ListOrderItemsByOrderQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			oi.id,
			oi.order_id,
			oi.workflow_id,
			w.name,
			oi.lifecycle,
			oi.assignee_id,
			oi.expected_by
		FROM order_items oi
		JOIN workflows w ON w.id = oi.workflow_id
		WHERE oi.order_id = ?
		ORDER BY oi.id
	`, query.OrderID().Int64()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item                    ListOrderItemsByOrderQueryResponse
			id, orderID, workflowID int64
			lifecycle               string
			assigneeID              sql.NullInt64
			expectedBy              sql.NullTime
		)

		err = rows.Scan(
			&id,
			&orderID,
			&workflowID,
			&item.WorkflowName,
			&lifecycle,
			&assigneeID,
			&expectedBy,
		)
		if err != nil {
			return nil, err
		}

		item.ID = kernel.ID(id)
		item.OrderID = kernel.ID(orderID)
		item.WorkflowID = kernel.ID(workflowID)

		item.Lifecycle, err = orderitem.ParseLifecycle(lifecycle)
		if err != nil {
			return nil, err
		}
		if assigneeID.Valid {
			assignee := kernel.ID(assigneeID.Int64)
			item.AssigneeID = &assignee
		}
		if expectedBy.Valid {
			at := expectedBy.Time.In(time.UTC)
			item.ExpectedBy = &at
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	return items, nil
}
