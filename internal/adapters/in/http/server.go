package http

import (
	"log/slog"
	"net/http"
	"strings"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Handlers are the use cases the server exposes.
type Handlers struct {
	// Command handlers
	CreateStatus      commands.CreateStatusCommandHandler
	UpdateStatus      commands.UpdateStatusCommandHandler
	RemoveStatus      commands.RemoveStatusCommandHandler
	CancelOrderItem   commands.CancelOrderItemCommandHandler
	CompleteOrderItem commands.CompleteOrderItemCommandHandler
	RecordProgress    commands.RecordProgressCommandHandler
	AssignOrderItem   commands.AssignOrderItemCommandHandler

	// Query handlers
	GetStatus             queries.GetStatusQueryHandler
	ListTopLevelStatuses  queries.ListTopLevelStatusesQueryHandler
	GetOrderItemWorkflow  queries.GetOrderItemWorkflowQueryHandler
	GetOrderItemHistory   queries.GetOrderItemHistoryQueryHandler
	ListOrderItemsByOrder queries.ListOrderItemsByOrderQueryHandler
}

// Server handles HTTP requests by translating them into commands and
// queries. It holds no business rules of its own.
type Server struct {
	handlers Handlers
	metrics  *Metrics
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, metrics *Metrics, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		metrics:  metrics,
		logger:   logger.With("component", "http"),
	}
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateStatus handles POST /api/v1/statuses.
func (s *Server) CreateStatus(ctx echo.Context) error {
	var body NewStatus
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateStatusCommand(
		strings.TrimSpace(body.Label), body.Description, body.VisibleToCustomer, toIDPtr(body.DependsOn),
	)
	if err != nil {
		return s.respondError(ctx, "create status", err)
	}

	created, err := s.handlers.CreateStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, "create status", err)
	}

	return ctx.JSON(http.StatusCreated, toStatus(created))
}

// ListStatuses handles GET /api/v1/statuses: roots each followed by
// their direct children.
func (s *Server) ListStatuses(ctx echo.Context) error {
	statuses, err := s.handlers.ListTopLevelStatuses.Handle(ctx.Request().Context(), queries.NewListTopLevelStatusesQuery())
	if err != nil {
		return s.respondError(ctx, "list statuses", err)
	}

	response := make([]Status, len(statuses))
	for i, st := range statuses {
		response[i] = toStatus(st)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetStatus handles GET /api/v1/statuses/:id.
func (s *Server) GetStatus(ctx echo.Context) error {
	id, err := pathID(ctx, "statusId")
	if err != nil {
		return s.respondError(ctx, "get status", err)
	}

	query, err := queries.NewGetStatusQuery(id)
	if err != nil {
		return s.respondError(ctx, "get status", err)
	}

	found, err := s.handlers.GetStatus.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, "get status", err)
	}

	return ctx.JSON(http.StatusOK, toStatus(found))
}

// UpdateStatus handles PUT /api/v1/statuses/:id.
func (s *Server) UpdateStatus(ctx echo.Context) error {
	id, err := pathID(ctx, "statusId")
	if err != nil {
		return s.respondError(ctx, "update status", err)
	}

	var body StatusChanges
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateStatusCommand(id, body.patch())
	if err != nil {
		return s.respondError(ctx, "update status", err)
	}

	updated, err := s.handlers.UpdateStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, "update status", err)
	}

	return ctx.JSON(http.StatusOK, toStatus(updated))
}

// RemoveStatus handles DELETE /api/v1/statuses/:id.
func (s *Server) RemoveStatus(ctx echo.Context) error {
	id, err := pathID(ctx, "statusId")
	if err != nil {
		return s.respondError(ctx, "remove status", err)
	}

	cmd, err := commands.NewRemoveStatusCommand(id)
	if err != nil {
		return s.respondError(ctx, "remove status", err)
	}

	if err = s.handlers.RemoveStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, "remove status", err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderItemWorkflow handles GET /api/v1/order-items/:id/workflow.
func (s *Server) GetOrderItemWorkflow(ctx echo.Context) error {
	id, err := pathID(ctx, "orderItemId")
	if err != nil {
		return s.respondError(ctx, "project workflow", err)
	}

	query, err := queries.NewGetOrderItemWorkflowQuery(id)
	if err != nil {
		return s.respondError(ctx, "project workflow", err)
	}

	view, err := s.handlers.GetOrderItemWorkflow.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, "project workflow", err)
	}

	return ctx.JSON(http.StatusOK, toWorkflow(view))
}

// GetOrderItemHistory handles GET /api/v1/order-items/:id/history.
func (s *Server) GetOrderItemHistory(ctx echo.Context) error {
	id, err := pathID(ctx, "orderItemId")
	if err != nil {
		return s.respondError(ctx, "list history", err)
	}

	query, err := queries.NewGetOrderItemHistoryQuery(id)
	if err != nil {
		return s.respondError(ctx, "list history", err)
	}

	records, err := s.handlers.GetOrderItemHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, "list history", err)
	}

	response := make([]HistoryRecord, len(records))
	for i, r := range records {
		response[i] = toHistoryRecord(r)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CancelOrderItem handles POST /api/v1/order-items/:id/cancel.
func (s *Server) CancelOrderItem(ctx echo.Context) error {
	err := s.cancelOrderItem(ctx)
	if err == nil {
		s.metrics.ObserveCancellation("cancelled")
		return ctx.NoContent(http.StatusNoContent)
	}

	s.metrics.ObserveCancellation(strings.ToLower(errs.KindOf(err).String()))
	return s.respondError(ctx, "cancel order item", err)
}

func (s *Server) cancelOrderItem(ctx echo.Context) error {
	id, err := pathID(ctx, "orderItemId")
	if err != nil {
		return err
	}

	var body StatusTransition
	if err = ctx.Bind(&body); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}

	cmd, err := commands.NewCancelOrderItemCommand(id, kernel.ID(body.StatusID), kernel.ID(body.ActorID))
	if err != nil {
		return err
	}

	return s.handlers.CancelOrderItem.Handle(ctx.Request().Context(), cmd)
}

// CompleteOrderItem handles POST /api/v1/order-items/:id/complete.
func (s *Server) CompleteOrderItem(ctx echo.Context) error {
	id, err := pathID(ctx, "orderItemId")
	if err != nil {
		return s.respondError(ctx, "complete order item", err)
	}

	cmd, err := commands.NewCompleteOrderItemCommand(id)
	if err != nil {
		return s.respondError(ctx, "complete order item", err)
	}

	if err = s.handlers.CompleteOrderItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, "complete order item", err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordProgress handles POST /api/v1/order-items/:id/progress.
func (s *Server) RecordProgress(ctx echo.Context) error {
	id, err := pathID(ctx, "orderItemId")
	if err != nil {
		return s.respondError(ctx, "record progress", err)
	}

	var body StatusTransition
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRecordProgressCommand(id, kernel.ID(body.StatusID), kernel.ID(body.ActorID))
	if err != nil {
		return s.respondError(ctx, "record progress", err)
	}

	record, err := s.handlers.RecordProgress.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, "record progress", err)
	}

	return ctx.JSON(http.StatusCreated, toHistoryRecord(record))
}

// AssignOrderItem handles PUT /api/v1/order-items/:id/assignee.
func (s *Server) AssignOrderItem(ctx echo.Context) error {
	id, err := pathID(ctx, "orderItemId")
	if err != nil {
		return s.respondError(ctx, "assign order item", err)
	}

	var body Assignment
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAssignOrderItemCommand(id, kernel.ID(body.AssigneeID), body.ExpectedBy)
	if err != nil {
		return s.respondError(ctx, "assign order item", err)
	}

	if err = s.handlers.AssignOrderItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, "assign order item", err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListOrderItems handles GET /api/v1/orders/:id/items.
func (s *Server) ListOrderItems(ctx echo.Context) error {
	id, err := pathID(ctx, "orderId")
	if err != nil {
		return s.respondError(ctx, "list order items", err)
	}

	query, err := queries.NewListOrderItemsByOrderQuery(id)
	if err != nil {
		return s.respondError(ctx, "list order items", err)
	}

	items, err := s.handlers.ListOrderItemsByOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, "list order items", err)
	}

	response := make([]OrderItem, len(items))
	for i, item := range items {
		response[i] = toOrderItem(item)
	}

	return ctx.JSON(http.StatusOK, response)
}

func pathID(ctx echo.Context, paramName string) (kernel.ID, error) {
	return kernel.ParseID(paramName, ctx.Param("id"))
}
