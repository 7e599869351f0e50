package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nitinog10/odoo-rewear-community-exchange/internal/models"
	"github.com/nitinog10/odoo-rewear-community-exchange/internal/store"
)

// GetUserPoints is the handler for GET /api/users/:userId/points. The
// balance is derived from the ledger, never stored.
func (h *Handlers) GetUserPoints(c *gin.Context) {
	userID := c.Param("userId")
	if userID != currentUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	balance, err := store.PointsBalance(c.Request.Context(), h.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch point balance"})
		return
	}

	history, err := store.PointsHistory(c.Request.Context(), h.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch point history"})
		return
	}
	if history == nil {
		history = []models.PointEntry{}
	}

	c.JSON(http.StatusOK, gin.H{"balance": balance, "history": history})
}
