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

// handoverHandler handles HTTP requests related to shift handovers.
type handoverHandler struct {
	handoverService portssvc.HandoverSvcFacade
}

// newHandoverHandler creates a new handoverHandler.
func newHandoverHandler(hs portssvc.HandoverSvcFacade) *handoverHandler {
	return &handoverHandler{
		handoverService: hs,
	}
}

// registerHandoverRoutes registers routes related to shift handovers.
func registerHandoverRoutes(rg *gin.RouterGroup, handoverService portssvc.HandoverSvcFacade) {
	h := newHandoverHandler(handoverService)

	handovers := rg.Group("/handovers")
	{
		handovers.POST("", h.createHandover)
		handovers.GET("", h.listHandoverHistory)
		handovers.POST("/:id/accept", h.acceptHandover)
		handovers.POST("/:id/complete", h.completeHandover)
		handovers.POST("/:id/reject", h.rejectHandover)
	}

	// Separate prefixes to avoid colliding with the /handovers/:id wildcard.
	rg.GET("/pending-handovers", h.listPendingHandovers)

	cashDrawer := rg.Group("/cash-drawer-handovers")
	{
		cashDrawer.POST("", h.initiateCashDrawerHandover)
		cashDrawer.POST("/:id/complete", h.completeCashDrawerHandover)
	}
}

// createHandover godoc
// @Summary Create a shift handover
// @Description Creates a handover from the authenticated staff member to another, with status PENDING
// @Tags handovers
// @Accept  json
// @Produce  json
// @Param   handover body dto.CreateHandoverRequest true "Handover details"
// @Success 201 {object} dto.HandoverResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Referenced shift not found"
// @Failure 500 {object} map[string]string "Failed to create handover"
// @Security BearerAuth
// @Router /handovers [post]
func (h *handoverHandler) createHandover(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateHandoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateHandover", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	fromStaffID, ok := middleware.GetStaffIDFromContext(c)
	if !ok {
		logger.Error("Staff ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("from_staff_id", fromStaffID), slog.String("to_staff_id", req.ToStaffID))
	logger.Info("Received request to create handover", slog.String("handover_type", req.HandoverType))

	handover, err := h.handoverService.CreateHandover(c.Request.Context(), req, fromStaffID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating handover", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Referenced shift not found for handover", slog.String("error", err.Error()))
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create handover in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create handover"})
		}
		return
	}

	logger.Info("Handover created successfully", slog.String("handover_id", handover.HandoverID))
	c.JSON(http.StatusCreated, dto.ToHandoverResponse(handover))
}

// acceptHandover godoc
// @Summary Accept a pending handover
// @Description Moves a PENDING handover to ACCEPTED, recording acceptance notes
// @Tags handovers
// @Accept  json
// @Produce  json
// @Param   id path string true "Handover ID"
// @Param   acceptance body dto.AcceptHandoverRequest true "Acceptance notes"
// @Success 200 {object} dto.HandoverResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Handover not found"
// @Failure 409 {object} map[string]string "Handover is not pending"
// @Failure 500 {object} map[string]string "Failed to accept handover"
// @Security BearerAuth
// @Router /handovers/{id}/accept [post]
func (h *handoverHandler) acceptHandover(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	handoverID := c.Param("id")

	var req dto.AcceptHandoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AcceptHandover", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	staffID, ok := middleware.GetStaffIDFromContext(c)
	if !ok {
		logger.Error("Staff ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("handover_id", handoverID), slog.String("staff_id", staffID))
	logger.Info("Received request to accept handover")

	handover, err := h.handoverService.AcceptHandover(c.Request.Context(), handoverID, req, staffID)
	if err != nil {
		h.respondHandoverMutationError(c, logger, err, "accept")
		return
	}

	logger.Info("Handover accepted successfully")
	c.JSON(http.StatusOK, dto.ToHandoverResponse(handover))
}

// completeHandover godoc
// @Summary Complete an accepted handover
// @Description Moves an ACCEPTED handover to COMPLETED
// @Tags handovers
// @Produce  json
// @Param   id path string true "Handover ID"
// @Success 200 {object} dto.HandoverResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Handover not found"
// @Failure 409 {object} map[string]string "Handover is not accepted"
// @Failure 500 {object} map[string]string "Failed to complete handover"
// @Security BearerAuth
// @Router /handovers/{id}/complete [post]
func (h *handoverHandler) completeHandover(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	handoverID := c.Param("id")

	staffID, ok := middleware.GetStaffIDFromContext(c)
	if !ok {
		logger.Error("Staff ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("handover_id", handoverID), slog.String("staff_id", staffID))
	logger.Info("Received request to complete handover")

	handover, err := h.handoverService.CompleteHandover(c.Request.Context(), handoverID, staffID)
	if err != nil {
		h.respondHandoverMutationError(c, logger, err, "complete")
		return
	}

	logger.Info("Handover completed successfully")
	c.JSON(http.StatusOK, dto.ToHandoverResponse(handover))
}

// rejectHandover godoc
// @Summary Reject a pending handover
// @Description Moves a PENDING handover to REJECTED, recording the reason
// @Tags handovers
// @Accept  json
// @Produce  json
// @Param   id path string true "Handover ID"
// @Param   rejection body dto.RejectHandoverRequest true "Rejection reason"
// @Success 200 {object} dto.HandoverResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Handover not found"
// @Failure 409 {object} map[string]string "Handover is not pending"
// @Failure 500 {object} map[string]string "Failed to reject handover"
// @Security BearerAuth
// @Router /handovers/{id}/reject [post]
func (h *handoverHandler) rejectHandover(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	handoverID := c.Param("id")

	var req dto.RejectHandoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RejectHandover", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	staffID, ok := middleware.GetStaffIDFromContext(c)
	if !ok {
		logger.Error("Staff ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("handover_id", handoverID), slog.String("staff_id", staffID))
	logger.Info("Received request to reject handover")

	handover, err := h.handoverService.RejectHandover(c.Request.Context(), handoverID, req, staffID)
	if err != nil {
		h.respondHandoverMutationError(c, logger, err, "reject")
		return
	}

	logger.Info("Handover rejected successfully")
	c.JSON(http.StatusOK, dto.ToHandoverResponse(handover))
}

// listPendingHandovers godoc
// @Summary List pending handovers for the caller
// @Description Retrieves PENDING handovers addressed to the authenticated staff member, most recent first
// @Tags handovers
// @Produce  json
// @Success 200 {array} dto.HandoverResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list pending handovers"
// @Security BearerAuth
// @Router /pending-handovers [get]
func (h *handoverHandler) listPendingHandovers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	staffID, ok := middleware.GetStaffIDFromContext(c)
	if !ok {
		logger.Error("Staff ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	handovers, err := h.handoverService.GetPendingHandovers(c.Request.Context(), staffID)
	if err != nil {
		logger.Error("Failed to list pending handovers from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list pending handovers"})
		return
	}

	c.JSON(http.StatusOK, dto.ToHandoverResponses(handovers))
}

// listHandoverHistory godoc
// @Summary List handover history
// @Description Retrieves a filtered handover history, most recent first
// @Tags handovers
// @Produce  json
// @Param   staffID query string false "Filter by staff member (either side of the handover)"
// @Param   handoverType query string false "Filter by type (CASH_DRAWER or GENERAL)"
// @Param   status query string false "Filter by status"
// @Param   dateFrom query string false "Handover time lower bound (YYYY-MM-DD)"
// @Param   dateTo query string false "Handover time upper bound (YYYY-MM-DD)"
// @Param   limit query int false "Page size" default(20)
// @Success 200 {array} dto.HandoverResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list handovers"
// @Security BearerAuth
// @Router /handovers [get]
func (h *handoverHandler) listHandoverHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.HandoverHistoryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for HandoverHistory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	handovers, err := h.handoverService.GetHandoverHistory(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error listing handovers", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list handovers from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list handovers"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToHandoverResponses(handovers))
}

// initiateCashDrawerHandover godoc
// @Summary Initiate a cash drawer handover
// @Description Creates a PENDING CASH_DRAWER handover carrying a drawer snapshot from the sender's shift
// @Tags cash-drawer-handovers
// @Accept  json
// @Produce  json
// @Param   handover body dto.InitiateCashDrawerHandoverRequest true "Cash drawer handover details"
// @Success 201 {object} dto.HandoverResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Sending shift not found"
// @Failure 500 {object} map[string]string "Failed to initiate handover"
// @Security BearerAuth
// @Router /cash-drawer-handovers [post]
func (h *handoverHandler) initiateCashDrawerHandover(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.InitiateCashDrawerHandoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for InitiateCashDrawerHandover", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	fromStaffID, ok := middleware.GetStaffIDFromContext(c)
	if !ok {
		logger.Error("Staff ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("from_staff_id", fromStaffID), slog.String("to_staff_id", req.ToStaffID))
	logger.Info("Received request to initiate cash drawer handover", slog.String("from_shift_id", req.FromShiftID))

	handover, err := h.handoverService.InitiateCashDrawerHandover(c.Request.Context(), req, fromStaffID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error initiating cash drawer handover", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Sending shift not found for cash drawer handover")
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to initiate cash drawer handover in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to initiate handover"})
		}
		return
	}

	logger.Info("Cash drawer handover initiated successfully", slog.String("handover_id", handover.HandoverID))
	c.JSON(http.StatusCreated, dto.ToHandoverResponse(handover))
}

// completeCashDrawerHandover godoc
// @Summary Complete a cash drawer handover
// @Description Completes a CASH_DRAWER handover and seeds the receiving shift's ledger with the confirmed amount
// @Tags cash-drawer-handovers
// @Accept  json
// @Produce  json
// @Param   id path string true "Handover ID"
// @Param   completion body dto.CompleteCashDrawerHandoverRequest true "Confirmed cash details"
// @Success 200 {object} dto.HandoverResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Handover or receiving shift not found"
// @Failure 409 {object} map[string]string "Handover not eligible for completion"
// @Failure 500 {object} map[string]string "Failed to complete handover"
// @Security BearerAuth
// @Router /cash-drawer-handovers/{id}/complete [post]
func (h *handoverHandler) completeCashDrawerHandover(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	handoverID := c.Param("id")

	var req dto.CompleteCashDrawerHandoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CompleteCashDrawerHandover", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	staffID, ok := middleware.GetStaffIDFromContext(c)
	if !ok {
		logger.Error("Staff ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("handover_id", handoverID), slog.String("staff_id", staffID))
	logger.Info("Received request to complete cash drawer handover", slog.String("to_shift_id", req.ToShiftID))

	handover, err := h.handoverService.CompleteCashDrawerHandover(c.Request.Context(), handoverID, req, staffID)
	if err != nil {
		h.respondHandoverMutationError(c, logger, err, "complete cash drawer")
		return
	}

	logger.Info("Cash drawer handover completed successfully")
	c.JSON(http.StatusOK, dto.ToHandoverResponse(handover))
}

// respondHandoverMutationError maps service errors from handover transitions to HTTP responses.
func (h *handoverHandler) respondHandoverMutationError(c *gin.Context, logger *slog.Logger, err error, action string) {
	if errors.Is(err, apperrors.ErrNotFound) {
		logger.Warn("Handover not found for " + action)
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrInvalidState) {
		logger.Warn("Invalid handover state for "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrValidation) {
		logger.Warn("Validation error on handover "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	} else {
		logger.Error("Failed to "+action+" handover in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action + " handover"})
	}
}
