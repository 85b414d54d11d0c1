// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"strconv"

	"batulens/internal/delivery/http/response"
	"batulens/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AnalysisHandler holds dependencies for the analysis endpoints.
type AnalysisHandler struct {
	uc usecase.AnalysisUsecase
}

// NewAnalysisHandler is the constructor for AnalysisHandler, injected by Fx.
func NewAnalysisHandler(uc usecase.AnalysisUsecase) *AnalysisHandler {
	return &AnalysisHandler{uc: uc}
}

// GetAnalysis serves the reconciled per-destination analysis table.
func (h *AnalysisHandler) GetAnalysis(c echo.Context) error {
	query := usecase.AnalysisQuery{
		ComplaintLevel: c.QueryParam("complaint_level"),
		Search:         c.QueryParam("search"),
		Page:           intQueryParam(c, "page", 1),
		PageSize:       intQueryParam(c, "page_size", 10),
	}

	output, err := h.uc.ListAnalysis(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// GetQuadrantData serves the visits-versus-rating scatter payload.
func (h *AnalysisHandler) GetQuadrantData(c echo.Context) error {
	output, err := h.uc.QuadrantData(c.Request().Context(), c.QueryParam("filter"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// intQueryParam reads an integer query parameter, falling back on absent or
// malformed values.
func intQueryParam(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return value
}
