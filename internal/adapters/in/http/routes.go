package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Register mounts the middleware chain and every route on e.
func (s *Server) Register(e *echo.Echo) {
	e.Use(
		middleware.Recover(),
		middleware.RequestID(),
		RequestLogger(s.logger),
		s.metrics.Middleware(),
	)

	e.GET("/health", s.GetHealth)
	e.GET("/metrics", echo.WrapHandler(s.metrics.Handler()))

	api := e.Group("/api/v1")

	api.POST("/statuses", s.CreateStatus)
	api.GET("/statuses", s.ListStatuses)
	api.GET("/statuses/:id", s.GetStatus)
	api.PUT("/statuses/:id", s.UpdateStatus)
	api.DELETE("/statuses/:id", s.RemoveStatus)

	api.GET("/order-items/:id/workflow", s.GetOrderItemWorkflow)
	api.GET("/order-items/:id/history", s.GetOrderItemHistory)
	api.POST("/order-items/:id/cancel", s.CancelOrderItem)
	api.POST("/order-items/:id/complete", s.CompleteOrderItem)
	api.POST("/order-items/:id/progress", s.RecordProgress)
	api.PUT("/order-items/:id/assignee", s.AssignOrderItem)

	api.GET("/orders/:id/items", s.ListOrderItems)
}
