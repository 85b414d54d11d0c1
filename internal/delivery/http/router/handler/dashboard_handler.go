package handler

import (
	"net/http"

	"batulens/internal/delivery/http/response"
	"batulens/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DashboardHandler holds dependencies for the overview endpoints.
type DashboardHandler struct {
	uc usecase.DashboardUsecase
}

// NewDashboardHandler is the constructor for DashboardHandler, injected by Fx.
func NewDashboardHandler(uc usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetDashboard serves the overview metrics and chart payloads.
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	output, err := h.uc.Dashboard(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// GetFilterData serves the dashboard restricted to one visit level.
func (h *DashboardHandler) GetFilterData(c echo.Context) error {
	output, err := h.uc.FilterData(c.Request().Context(), c.QueryParam("filter"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// GetComplaintAnalysis proxies the upstream keyword-category complaint
// breakdown.
func (h *DashboardHandler) GetComplaintAnalysis(c echo.Context) error {
	output, err := h.uc.ComplaintAnalysis(c.Request().Context(), c.QueryParam("filter"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// GetStats serves dataset-wide totals.
func (h *DashboardHandler) GetStats(c echo.Context) error {
	output, err := h.uc.Stats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}
