package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nitinog10/odoo-rewear-community-exchange/internal/models"
	"github.com/nitinog10/odoo-rewear-community-exchange/internal/store"
)

// CreateSwapInput is the request body for POST /api/swaps.
type CreateSwapInput struct {
	OwnerID         string  `json:"ownerId" binding:"required"`
	RequesterItemID string  `json:"requesterItemId" binding:"required"`
	OwnerItemID     string  `json:"ownerItemId" binding:"required"`
	PointsDiff      int     `json:"pointsDifference"`
	Message         *string `json:"message"`
}

// CreateSwap is the handler for POST /api/swaps. The caller is the
// requester; the proposal always starts as 'pending'.
func (h *Handlers) CreateSwap(c *gin.Context) {
	var input CreateSwapInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, validationErrorResponse(err))
		return
	}

	requesterID := currentUserID(c)
	if input.OwnerID == requesterID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot propose a swap with yourself"})
		return
	}

	swap := &models.Swap{
		RequesterID:     requesterID,
		OwnerID:         input.OwnerID,
		RequesterItemID: input.RequesterItemID,
		OwnerItemID:     input.OwnerItemID,
		PointsDiff:      input.PointsDiff,
		Message:         input.Message,
	}

	created, err := store.CreateSwap(c.Request.Context(), h.DB, swap)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetUserSwaps is the handler for GET /api/users/:userId/swaps.
func (h *Handlers) GetUserSwaps(c *gin.Context) {
	userID := c.Param("userId")
	if userID != currentUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	swaps, err := store.GetUserSwaps(c.Request.Context(), h.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch swaps"})
		return
	}
	if swaps == nil {
		swaps = []models.Swap{}
	}
	c.JSON(http.StatusOK, swaps)
}

// UpdateSwapInput is the request body for PATCH /api/swaps/:id.
type UpdateSwapInput struct {
	Status string `json:"status" binding:"required,oneof=accepted rejected completed"`
}

// UpdateSwap is the handler for PATCH /api/swaps/:id. Only the two
// participants may move a swap, and only along the legal lifecycle.
func (h *Handlers) UpdateSwap(c *gin.Context) {
	var input UpdateSwapInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, validationErrorResponse(err))
		return
	}

	swap, err := store.GetSwap(c.Request.Context(), h.DB, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch swap"})
		return
	}
	if swap == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Swap not found"})
		return
	}
	if !swap.Participant(currentUserID(c)) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	updated, err := store.UpdateSwapStatus(c.Request.Context(), h.DB, swap.ID, input.Status)
	if err != nil {
		if errors.Is(err, store.ErrInvalidTransition) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Swap not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update swap"})
		return
	}
	c.JSON(http.StatusOK, updated)
}
