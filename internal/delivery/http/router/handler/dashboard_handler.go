package handler

import (
	"log/slog"
	"net/http"

	"backoffice/internal/delivery/http/response"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DashboardHandler holds dependencies for reporting handlers.
type DashboardHandler struct {
	uc     usecase.ReportUsecase
	logger *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler, injected by Fx.
func NewDashboardHandler(uc usecase.ReportUsecase, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		uc:     uc,
		logger: logger,
	}
}

// Summary handles GET /dashboard/summary?from&to. Missing or malformed
// dates answer 400 through the range resolver.
func (h *DashboardHandler) Summary(c echo.Context) error {
	summary, err := h.uc.Summary(c.Request().Context(), c.QueryParam("from"), c.QueryParam("to"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "Summary computed successfully")
}
