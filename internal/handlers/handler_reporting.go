package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/clinicdesk/clinic_frontdesk_app/internal/apperrors"
	portssvc "github.com/clinicdesk/clinic_frontdesk_app/internal/core/ports/services"
	"github.com/clinicdesk/clinic_frontdesk_app/internal/dto"
	"github.com/clinicdesk/clinic_frontdesk_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to shift reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to shift reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/today-summary", h.getTodayShiftsSummary)
		reportingGroup.GET("/shifts", h.getShiftReport)
	}
}

// getTodayShiftsSummary godoc
// @Summary Get today's shift summary
// @Description Returns the dashboard counters (active shifts, shifts completed today, pending handovers) for the current day
// @Tags reports
// @Produce json
// @Success 200 {object} dto.TodayShiftsSummaryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate summary"
// @Security BearerAuth
// @Router /reports/today-summary [get]
func (h *reportingHandler) getTodayShiftsSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.reportingService.GetTodayShiftsSummary(c.Request.Context())
	if err != nil {
		logger.Error("Failed to generate today's shift summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTodayShiftsSummaryResponse(summary))
}

// getShiftReport godoc
// @Summary Generate a shift report for a date range
// @Description Returns the shifts in the range with revenue, discrepancy, and duration aggregates
// @Tags reports
// @Produce json
// @Param startDate query string true "Range start (YYYY-MM-DD)"
// @Param endDate query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.ShiftReportResponse
// @Failure 400 {object} map[string]string "Invalid or missing date range"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/shifts [get]
func (h *reportingHandler) getShiftReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ShiftReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ShiftReport", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	report, err := h.reportingService.GetShiftReport(c.Request.Context(), params.StartDate, params.EndDate)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error generating shift report", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to generate shift report", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToShiftReportResponse(report))
}
