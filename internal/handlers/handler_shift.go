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

// shiftHandler handles HTTP requests related to shifts.
type shiftHandler struct {
	shiftService portssvc.ShiftSvcFacade
}

// newShiftHandler creates a new shiftHandler.
func newShiftHandler(ss portssvc.ShiftSvcFacade) *shiftHandler {
	return &shiftHandler{
		shiftService: ss,
	}
}

// RegisterShiftRoutes registers routes related to shifts.
func RegisterShiftRoutes(rg *gin.RouterGroup, shiftService portssvc.ShiftSvcFacade) {
	h := newShiftHandler(shiftService)

	shifts := rg.Group("/shifts")
	{
		shifts.POST("", h.createShift)
		shifts.GET("", h.listShifts)
		shifts.GET("/:id", h.getShift)
		shifts.POST("/:id/start", h.startShift)
		shifts.POST("/:id/end", h.endShift)
		shifts.PUT("/:id/stats", h.updateShiftStats)
	}

	// Separate prefix to avoid colliding with the /shifts/:id wildcard.
	active := rg.Group("/active-shifts")
	{
		active.GET("", h.listActiveShifts)
		active.GET("/me", h.getMyActiveShift)
	}
}

// createShift godoc
// @Summary Create a new shift
// @Description Opens a new shift for a staff member with status ACTIVE
// @Tags shifts
// @Accept  json
// @Produce  json
// @Param   shift body dto.CreateShiftRequest true "Shift details"
// @Success 201 {object} dto.ShiftResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Staff member already has an active shift"
// @Failure 500 {object} map[string]string "Failed to create shift"
// @Security BearerAuth
// @Router /shifts [post]
func (h *shiftHandler) createShift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateShift", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorStaffID, ok := middleware.GetStaffIDFromContext(c)
	if !ok {
		logger.Error("Creator staff ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("creator_staff_id", creatorStaffID))
	logger.Info("Received request to create shift", slog.String("staff_id", req.StaffID))

	newShift, err := h.shiftService.CreateShift(c.Request.Context(), req, creatorStaffID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating shift", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Active shift already exists", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create shift in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create shift"})
		}
		return
	}

	logger.Info("Shift created successfully", slog.String("shift_id", newShift.ShiftID))
	c.JSON(http.StatusCreated, dto.ToShiftResponse(newShift))
}

// getShift godoc
// @Summary Get a shift by ID
// @Description Retrieves details for a specific shift by its ID
// @Tags shifts
// @Produce  json
// @Param   id path string true "Shift ID"
// @Success 200 {object} dto.ShiftResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Shift not found"
// @Failure 500 {object} map[string]string "Failed to retrieve shift"
// @Security BearerAuth
// @Router /shifts/{id} [get]
func (h *shiftHandler) getShift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shiftID := c.Param("id")

	logger = logger.With(slog.String("shift_id", shiftID))

	shift, err := h.shiftService.GetShiftByID(c.Request.Context(), shiftID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Shift not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Shift not found"})
		} else {
			logger.Error("Failed to get shift from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve shift"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToShiftResponse(shift))
}

// listShifts godoc
// @Summary List shifts
// @Description Retrieves a filtered, paginated shift listing, most recently scheduled first
// @Tags shifts
// @Produce  json
// @Param   staffID query string false "Filter by staff member"
// @Param   status query string false "Filter by status (ACTIVE or COMPLETED)"
// @Param   dateFrom query string false "Scheduled start lower bound (YYYY-MM-DD)"
// @Param   dateTo query string false "Scheduled start upper bound (YYYY-MM-DD)"
// @Param   limit query int false "Page size" default(20)
// @Param   offset query int false "Page offset" default(0)
// @Success 200 {array} dto.ShiftResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list shifts"
// @Security BearerAuth
// @Router /shifts [get]
func (h *shiftHandler) listShifts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListShiftsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListShifts", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	shifts, err := h.shiftService.GetShifts(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error listing shifts", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list shifts from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list shifts"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToShiftResponses(shifts))
}

// listActiveShifts godoc
// @Summary List all active shifts
// @Description Retrieves every shift currently in status ACTIVE, clinic-wide
// @Tags shifts
// @Produce  json
// @Success 200 {array} dto.ShiftResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list active shifts"
// @Security BearerAuth
// @Router /active-shifts [get]
func (h *shiftHandler) listActiveShifts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	shifts, err := h.shiftService.GetActiveShifts(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list active shifts from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list active shifts"})
		return
	}

	c.JSON(http.StatusOK, dto.ToShiftResponses(shifts))
}

// getMyActiveShift godoc
// @Summary Get the caller's active shift
// @Description Retrieves the authenticated staff member's current ACTIVE shift
// @Tags shifts
// @Produce  json
// @Success 200 {object} dto.ShiftResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No active shift"
// @Failure 500 {object} map[string]string "Failed to retrieve active shift"
// @Security BearerAuth
// @Router /active-shifts/me [get]
func (h *shiftHandler) getMyActiveShift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	staffID, ok := middleware.GetStaffIDFromContext(c)
	if !ok {
		logger.Error("Staff ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	shift, err := h.shiftService.GetActiveShift(c.Request.Context(), staffID)
	if err != nil {
		logger.Error("Failed to get active shift from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve active shift"})
		return
	}
	if shift == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No active shift"})
		return
	}

	c.JSON(http.StatusOK, dto.ToShiftResponse(shift))
}

// startShift godoc
// @Summary Start a shift
// @Description Records the actual start time and seeds the cash drawer ledger with an OPENING entry
// @Tags shifts
// @Accept  json
// @Produce  json
// @Param   id path string true "Shift ID"
// @Param   start body dto.StartShiftRequest true "Opening cash details"
// @Success 200 {object} dto.ShiftResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Shift not found"
// @Failure 409 {object} map[string]string "Shift is not in a startable state"
// @Failure 500 {object} map[string]string "Failed to start shift"
// @Security BearerAuth
// @Router /shifts/{id}/start [post]
func (h *shiftHandler) startShift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shiftID := c.Param("id")

	var req dto.StartShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for StartShift", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	staffID, ok := middleware.GetStaffIDFromContext(c)
	if !ok {
		logger.Error("Staff ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("shift_id", shiftID), slog.String("staff_id", staffID))
	logger.Info("Received request to start shift")

	shift, err := h.shiftService.StartShift(c.Request.Context(), shiftID, req, staffID)
	if err != nil {
		h.respondShiftMutationError(c, logger, err, "start")
		return
	}

	logger.Info("Shift started successfully")
	c.JSON(http.StatusOK, dto.ToShiftResponse(shift))
}

// endShift godoc
// @Summary End a shift
// @Description Closes the shift, computes the cash discrepancy, and appends a CLOSING ledger entry
// @Tags shifts
// @Accept  json
// @Produce  json
// @Param   id path string true "Shift ID"
// @Param   end body dto.EndShiftRequest true "Closing cash details"
// @Success 200 {object} dto.ShiftResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Shift not found"
// @Failure 409 {object} map[string]string "Shift is not in a closable state"
// @Failure 500 {object} map[string]string "Failed to end shift"
// @Security BearerAuth
// @Router /shifts/{id}/end [post]
func (h *shiftHandler) endShift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shiftID := c.Param("id")

	var req dto.EndShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for EndShift", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	staffID, ok := middleware.GetStaffIDFromContext(c)
	if !ok {
		logger.Error("Staff ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("shift_id", shiftID), slog.String("staff_id", staffID))
	logger.Info("Received request to end shift")

	shift, err := h.shiftService.EndShift(c.Request.Context(), shiftID, req, staffID)
	if err != nil {
		h.respondShiftMutationError(c, logger, err, "end")
		return
	}

	logger.Info("Shift ended successfully")
	c.JSON(http.StatusOK, dto.ToShiftResponse(shift))
}

// updateShiftStats godoc
// @Summary Update a shift's aggregate statistics
// @Description Overwrites the shift's denormalized transaction, revenue, and appointment counters
// @Tags shifts
// @Accept  json
// @Produce  json
// @Param   id path string true "Shift ID"
// @Param   stats body dto.UpdateShiftStatsRequest true "Replacement aggregate values"
// @Success 200 {object} dto.ShiftResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Shift not found"
// @Failure 500 {object} map[string]string "Failed to update shift stats"
// @Security BearerAuth
// @Router /shifts/{id}/stats [put]
func (h *shiftHandler) updateShiftStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shiftID := c.Param("id")

	var req dto.UpdateShiftStatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateShiftStats", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	staffID, ok := middleware.GetStaffIDFromContext(c)
	if !ok {
		logger.Error("Staff ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("shift_id", shiftID), slog.String("staff_id", staffID))

	shift, err := h.shiftService.UpdateShiftStats(c.Request.Context(), shiftID, req, staffID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating shift stats", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Shift not found for stats update")
			c.JSON(http.StatusNotFound, gin.H{"error": "Shift not found"})
		} else {
			logger.Error("Failed to update shift stats in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update shift stats"})
		}
		return
	}

	logger.Info("Shift stats updated successfully")
	c.JSON(http.StatusOK, dto.ToShiftResponse(shift))
}

// respondShiftMutationError maps service errors from start/end to HTTP responses.
func (h *shiftHandler) respondShiftMutationError(c *gin.Context, logger *slog.Logger, err error, action string) {
	if errors.Is(err, apperrors.ErrNotFound) {
		logger.Warn("Shift not found for " + action)
		c.JSON(http.StatusNotFound, gin.H{"error": "Shift not found"})
	} else if errors.Is(err, apperrors.ErrInvalidState) {
		logger.Warn("Invalid shift state for "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrValidation) {
		logger.Warn("Validation error on shift "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	} else {
		logger.Error("Failed to "+action+" shift in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action + " shift"})
	}
}
