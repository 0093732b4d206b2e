package handlers

import (
	"net/http"

	"ecoscan/services/ledger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler exposes the cross-account report view.
type AdminHandler struct {
	Ledger ledger.LedgerService
}

// NewAdminHandler creates an AdminHandler backed by the given service.
func NewAdminHandler(svc ledger.LedgerService) *AdminHandler {
	return &AdminHandler{Ledger: svc}
}

// ListReportsHandler returns every report across all accounts, newest first.
// Known boundary: any authenticated account can call this; there is no role
// distinction between citizens and administrators (see routes.RegisterAdminRoutes).
func (h *AdminHandler) ListReportsHandler(c *gin.Context) {
	logger := getLogger(c)

	reports, err := h.Ledger.ListReports()
	if err != nil {
		logger.Error("Failed to fetch reports", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reports"})
		return
	}
	c.JSON(http.StatusOK, reports)
}
