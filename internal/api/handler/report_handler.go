package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fleetdemo/commute-benefits/internal/core/ports"
)

type ReportHandler struct {
	reports ports.ReportService
}

func NewReportHandler(reports ports.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Participation handles GET /v1/reports/participation.
//
// @Summary      Participation summary
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.ParticipationReport
// @Failure      502  {object}  map[string]string
// @Router       /v1/reports/participation [get]
func (h *ReportHandler) Participation(c echo.Context) error {
	sid, _, err := ctxSession(c)
	if err != nil {
		return err
	}
	r, err := h.reports.Participation(c.Request().Context(), sid)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, r)
}

// HRDashboard handles GET /v1/hr/dashboard.
//
// @Summary      HR program dashboard
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.HRDashboard
// @Failure      502  {object}  map[string]string
// @Router       /v1/hr/dashboard [get]
func (h *ReportHandler) HRDashboard(c echo.Context) error {
	sid, _, err := ctxSession(c)
	if err != nil {
		return err
	}
	d, err := h.reports.HRDashboard(c.Request().Context(), sid)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}
