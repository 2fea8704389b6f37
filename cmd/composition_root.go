package cmd

import (
	"log/slog"
	"time"

	"fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
	now        func() time.Time
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		now:        time.Now,
	}
}

func (c *CompositionRoot) statusUoWFactory() commands.StatusUoWFactory {
	return FuncStatusUoWFactory(func() commands.StatusUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderItemUoWFactory() commands.OrderItemUoWFactory {
	return FuncOrderItemUoWFactory(func() commands.OrderItemUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogReaderFactory() queries.CatalogReaderFactory {
	return FuncCatalogReaderFactory(func() queries.CatalogReader {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) workflowReaderFactory() queries.WorkflowReaderFactory {
	return FuncWorkflowReaderFactory(func() queries.WorkflowReader {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateStatusCommandHandler() commands.CreateStatusCommandHandler {
	return commands.NewCreateStatusCommandHandler(c.statusUoWFactory())
}

func (c *CompositionRoot) CreateUpdateStatusCommandHandler() commands.UpdateStatusCommandHandler {
	return commands.NewUpdateStatusCommandHandler(c.statusUoWFactory())
}

func (c *CompositionRoot) CreateRemoveStatusCommandHandler() commands.RemoveStatusCommandHandler {
	return commands.NewRemoveStatusCommandHandler(c.statusUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderItemCommandHandler() commands.CancelOrderItemCommandHandler {
	return commands.NewCancelOrderItemCommandHandler(c.orderItemUoWFactory(), c.now)
}

func (c *CompositionRoot) CreateCompleteOrderItemCommandHandler() commands.CompleteOrderItemCommandHandler {
	return commands.NewCompleteOrderItemCommandHandler(c.orderItemUoWFactory())
}

func (c *CompositionRoot) CreateRecordProgressCommandHandler() commands.RecordProgressCommandHandler {
	return commands.NewRecordProgressCommandHandler(c.orderItemUoWFactory(), c.now)
}

func (c *CompositionRoot) CreateAssignOrderItemCommandHandler() commands.AssignOrderItemCommandHandler {
	return commands.NewAssignOrderItemCommandHandler(c.orderItemUoWFactory())
}

func (c *CompositionRoot) CreateGetStatusQueryHandler() queries.GetStatusQueryHandler {
	return queries.NewGetStatusQueryHandler(c.catalogReaderFactory())
}

func (c *CompositionRoot) CreateListTopLevelStatusesQueryHandler() queries.ListTopLevelStatusesQueryHandler {
	return queries.NewListTopLevelStatusesQueryHandler(c.catalogReaderFactory())
}

func (c *CompositionRoot) CreateGetOrderItemWorkflowQueryHandler() queries.GetOrderItemWorkflowQueryHandler {
	return queries.NewGetOrderItemWorkflowQueryHandler(c.workflowReaderFactory())
}

func (c *CompositionRoot) CreateGetOrderItemHistoryQueryHandler() queries.GetOrderItemHistoryQueryHandler {
	return queries.NewGetOrderItemHistoryQueryHandler(c.workflowReaderFactory())
}

func (c *CompositionRoot) CreateListOrderItemsByOrderQueryHandler() queries.ListOrderItemsByOrderQueryHandler {
	return queries.NewListOrderItemsByOrderQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every use case into the request layer.
func (c *CompositionRoot) CreateHTTPServer(metrics *http.Metrics) *http.Server {
	return http.NewServer(http.Handlers{
		CreateStatus:          c.CreateCreateStatusCommandHandler(),
		UpdateStatus:          c.CreateUpdateStatusCommandHandler(),
		RemoveStatus:          c.CreateRemoveStatusCommandHandler(),
		CancelOrderItem:       c.CreateCancelOrderItemCommandHandler(),
		CompleteOrderItem:     c.CreateCompleteOrderItemCommandHandler(),
		RecordProgress:        c.CreateRecordProgressCommandHandler(),
		AssignOrderItem:       c.CreateAssignOrderItemCommandHandler(),
		GetStatus:             c.CreateGetStatusQueryHandler(),
		ListTopLevelStatuses:  c.CreateListTopLevelStatusesQueryHandler(),
		GetOrderItemWorkflow:  c.CreateGetOrderItemWorkflowQueryHandler(),
		GetOrderItemHistory:   c.CreateGetOrderItemHistoryQueryHandler(),
		ListOrderItemsByOrder: c.CreateListOrderItemsByOrderQueryHandler(),
	}, metrics, c.logger)
}

type FuncStatusUoWFactory func() commands.StatusUoW

func (f FuncStatusUoWFactory) Create() commands.StatusUoW {
	return f()
}

type FuncOrderItemUoWFactory func() commands.OrderItemUoW

func (f FuncOrderItemUoWFactory) Create() commands.OrderItemUoW {
	return f()
}

type FuncCatalogReaderFactory func() queries.CatalogReader

func (f FuncCatalogReaderFactory) Create() queries.CatalogReader {
	return f()
}

type FuncWorkflowReaderFactory func() queries.WorkflowReader

func (f FuncWorkflowReaderFactory) Create() queries.WorkflowReader {
	return f()
}
