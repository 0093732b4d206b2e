package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"ecoscan/middleware"
	"ecoscan/models"
	"ecoscan/services/ledger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HistoryHandler exposes the citizen-facing ledger endpoints.
type HistoryHandler struct {
	Ledger ledger.LedgerService
}

// NewHistoryHandler creates a HistoryHandler backed by the given service.
func NewHistoryHandler(svc ledger.LedgerService) *HistoryHandler {
	return &HistoryHandler{Ledger: svc}
}

// createHistoryRequest is the POST /api/history body. Status and ticket
// number are accepted for client compatibility but ignored: the ledger is
// authoritative for both.
type createHistoryRequest struct {
	Kind     string `json:"kind"`
	Category string `json:"category"`
	Status   string `json:"status"`
	Ticket   string `json:"ticketNumber"`
	Address  string `json:"address"`
	Location *struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"location"`
}

// GetHistoryHandler returns the authenticated account's records, newest first.
func (h *HistoryHandler) GetHistoryHandler(c *gin.Context) {
	logger := getLogger(c)

	accountID := c.GetString(middleware.ContextAccountID)
	if accountID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	records, err := h.Ledger.ListForAccount(accountID)
	if err != nil {
		logger.Error("Failed to fetch history", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch history"})
		return
	}
	c.JSON(http.StatusOK, records)
}

// CreateHistoryHandler appends a scan or report record for the authenticated
// account.
func (h *HistoryHandler) CreateHistoryHandler(c *gin.Context) {
	logger := getLogger(c)

	accountID := c.GetString(middleware.ContextAccountID)
	if accountID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req createHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	var (
		rec *models.HistoryRecord
		err error
	)
	switch req.Kind {
	case models.KindScan:
		rec, err = h.Ledger.RecordScan(accountID, req.Category)
	case models.KindReport:
		rec, err = h.Ledger.RecordReport(accountID, req.Category, reportAddress(req))
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": ledger.ErrInvalidKind.Error()})
		return
	}

	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrInvalidCategory), errors.Is(err, ledger.ErrMissingLocation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create history record", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create history record"})
		}
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// reportAddress folds the free-text address and the device coordinate pair
// into the single location signal a report carries. Free text wins when both
// are present.
func reportAddress(req createHistoryRequest) string {
	if addr := strings.TrimSpace(req.Address); addr != "" {
		return addr
	}
	if req.Location != nil {
		return fmt.Sprintf("%.6f, %.6f", req.Location.Lat, req.Location.Lng)
	}
	return ""
}
