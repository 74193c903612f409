package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"backoffice/internal/delivery/http/response"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SalesHandler holds dependencies for sales listing handlers.
type SalesHandler struct {
	uc     usecase.SalesUsecase
	logger *slog.Logger
}

// NewSalesHandler is the constructor for SalesHandler, injected by Fx.
func NewSalesHandler(uc usecase.SalesUsecase, logger *slog.Logger) *SalesHandler {
	return &SalesHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles GET /sales?from&to&q&limit&offset.
func (h *SalesHandler) List(c echo.Context) error {
	input := &usecase.SalesListInput{
		FromISO: c.QueryParam("from"),
		ToISO:   c.QueryParam("to"),
		Query:   c.QueryParam("q"),
	}
	// Unparseable paging values fall back to the use case defaults.
	if limit, err := strconv.Atoi(c.QueryParam("limit")); err == nil {
		input.Limit = limit
	}
	if offset, err := strconv.Atoi(c.QueryParam("offset")); err == nil {
		input.Offset = offset
	}

	output, err := h.uc.List(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Sales listed successfully")
}

// Get handles GET /sales/:id.
func (h *SalesHandler) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Sale id must be numeric")
	}

	output, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Sale retrieved successfully")
}
