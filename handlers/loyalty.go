package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pallala1989/beauty-plaza-online-hub-sub000/middleware"
	"github.com/pallala1989/beauty-plaza-online-hub-sub000/services/loyalty"
	"github.com/pallala1989/beauty-plaza-online-hub-sub000/utils"
)

// LoyaltyHandler exposes the customer's loyalty-point balance.
type LoyaltyHandler struct {
	Ledger loyalty.Ledger
}

// NewLoyaltyHandler constructs a LoyaltyHandler.
func NewLoyaltyHandler(ledger loyalty.Ledger) *LoyaltyHandler {
	return &LoyaltyHandler{Ledger: ledger}
}

// GetBalance returns the authenticated customer's point balance.
func (h *LoyaltyHandler) GetBalance(c *gin.Context) {
	customerID := middleware.CustomerID(c)
	if customerID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	balance, err := h.Ledger.GetBalance(c.Request.Context(), customerID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load loyalty balance", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer_id": customerID, "points": balance})
}
