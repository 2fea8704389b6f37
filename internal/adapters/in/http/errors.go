package http

import (
	"log/slog"
	"net/http"

	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

func statusCodeFor(kind errs.Kind) int {
	switch kind {
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindBadRequest:
		return http.StatusBadRequest
	case errs.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError answers with the status matching the error kind. Internal
// errors are logged and their details are not sent to the client.
func (s *Server) respondError(ctx echo.Context, operation string, err error) error {
	code := statusCodeFor(errs.KindOf(err))
	message := err.Error()

	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "operation failed",
			slog.String("operation", operation),
			slog.String("error", err.Error()),
		)
		message = "Failed to " + operation
	}

	return ctx.JSON(code, Error{Code: code, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}
