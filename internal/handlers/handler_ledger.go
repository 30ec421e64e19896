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

// ledgerHandler handles HTTP requests related to the cash drawer ledger.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newLedgerHandler creates a new ledgerHandler.
func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{
		ledgerService: ls,
	}
}

// registerLedgerRoutes registers routes related to the cash drawer ledger.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	transactions := rg.Group("/cash-transactions")
	{
		transactions.POST("", h.createCashTransaction)
		transactions.POST("/:id/verify", h.verifyCashTransaction)
	}

	shifts := rg.Group("/shifts")
	{
		shifts.GET("/:id/cash-transactions", h.listCashTransactions)
		shifts.GET("/:id/cash-balance", h.getCashBalance)
	}
}

// createCashTransaction godoc
// @Summary Append a cash drawer ledger entry
// @Description Appends one immutable ledger entry to a shift's cash drawer ledger. The running balance chain is validated atomically.
// @Tags cash-transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateCashTransactionRequest true "Ledger entry details"
// @Success 201 {object} dto.CashTransactionResponse
// @Failure 400 {object} map[string]string "Invalid input or balance chain mismatch"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Shift not found"
// @Failure 500 {object} map[string]string "Failed to record transaction"
// @Security BearerAuth
// @Router /cash-transactions [post]
func (h *ledgerHandler) createCashTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCashTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCashTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	staffID, ok := middleware.GetStaffIDFromContext(c)
	if !ok {
		logger.Error("Staff ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("staff_id", staffID), slog.String("shift_id", req.ShiftID))
	logger.Info("Received request to record cash transaction", slog.String("type", req.Type))

	txn, err := h.ledgerService.CreateTransaction(c.Request.Context(), req, staffID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error recording cash transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Shift not found for cash transaction")
			c.JSON(http.StatusNotFound, gin.H{"error": "Shift not found"})
		} else {
			logger.Error("Failed to record cash transaction in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record transaction"})
		}
		return
	}

	logger.Info("Cash transaction recorded successfully", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToCashTransactionResponse(txn))
}

// listCashTransactions godoc
// @Summary List a shift's cash drawer ledger entries
// @Description Retrieves ledger entries for a shift, newest first, with token-based pagination
// @Tags cash-transactions
// @Produce  json
// @Param   id path string true "Shift ID"
// @Param   limit query int false "Page size" default(50)
// @Param   nextToken query string false "Opaque continuation token from a previous page"
// @Success 200 {object} dto.ListCashTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters or token"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Security BearerAuth
// @Router /shifts/{id}/cash-transactions [get]
func (h *ledgerHandler) listCashTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shiftID := c.Param("id")

	var params dto.ListCashTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListCashTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("shift_id", shiftID))

	txns, nextToken, err := h.ledgerService.GetCashTransactionsPaged(c.Request.Context(), shiftID, params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Invalid pagination token", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list cash transactions from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ListCashTransactionsResponse{
		Transactions: dto.ToCashTransactionResponses(txns),
		NextToken:    nextToken,
	})
}

// getCashBalance godoc
// @Summary Get a shift's current cash balance
// @Description Returns the running balance after the shift's most recent ledger entry, or zero when the shift has none
// @Tags cash-transactions
// @Produce  json
// @Param   id path string true "Shift ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to get balance"
// @Security BearerAuth
// @Router /shifts/{id}/cash-balance [get]
func (h *ledgerHandler) getCashBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shiftID := c.Param("id")

	balance, err := h.ledgerService.GetCurrentBalance(c.Request.Context(), shiftID)
	if err != nil {
		logger.Error("Failed to get cash balance from service", slog.String("shift_id", shiftID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get balance"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"shiftID": shiftID, "balance": balance})
}

// verifyCashTransaction godoc
// @Summary Verify a cash drawer ledger entry
// @Description Attaches verification metadata to a ledger entry during reconciliation
// @Tags cash-transactions
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} dto.CashTransactionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to verify transaction"
// @Security BearerAuth
// @Router /cash-transactions/{id}/verify [post]
func (h *ledgerHandler) verifyCashTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")

	staffID, ok := middleware.GetStaffIDFromContext(c)
	if !ok {
		logger.Error("Staff ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("transaction_id", transactionID), slog.String("verifier_staff_id", staffID))
	logger.Info("Received request to verify cash transaction")

	txn, err := h.ledgerService.VerifyTransaction(c.Request.Context(), transactionID, staffID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Transaction not found for verification")
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		} else {
			logger.Error("Failed to verify cash transaction in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify transaction"})
		}
		return
	}

	logger.Info("Cash transaction verified successfully")
	c.JSON(http.StatusOK, dto.ToCashTransactionResponse(txn))
}
