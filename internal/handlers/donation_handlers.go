package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nitinog10/odoo-rewear-community-exchange/internal/models"
	"github.com/nitinog10/odoo-rewear-community-exchange/internal/store"
)

// CreateDonationInput is the request body for POST /api/donations.
type CreateDonationInput struct {
	ItemID string `json:"itemId" binding:"required"`
}

// CreateDonation is the handler for POST /api/donations. The donated
// item leaves the catalog and the donor earns the donation bonus.
func (h *Handlers) CreateDonation(c *gin.Context) {
	var input CreateDonationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, validationErrorResponse(err))
		return
	}

	donation, err := store.CreateDonation(c.Request.Context(), h.DB, currentUserID(c), input.ItemID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record donation"})
		return
	}
	c.JSON(http.StatusCreated, donation)
}

// GetUserDonations is the handler for GET /api/users/:userId/donations.
func (h *Handlers) GetUserDonations(c *gin.Context) {
	userID := c.Param("userId")
	if userID != currentUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	donations, err := store.GetUserDonations(c.Request.Context(), h.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch donations"})
		return
	}
	if donations == nil {
		donations = []models.Donation{}
	}
	c.JSON(http.StatusOK, donations)
}
