package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nitinog10/odoo-rewear-community-exchange/internal/models"
	"github.com/nitinog10/odoo-rewear-community-exchange/internal/store"
)

// CreateItemInput is the request body for POST /api/items.
type CreateItemInput struct {
	Title       string   `json:"title" binding:"required"`
	Description *string  `json:"description"`
	Category    string   `json:"category" binding:"required"`
	Type        string   `json:"type" binding:"required"`
	Size        string   `json:"size" binding:"required"`
	Condition   string   `json:"condition" binding:"required,oneof=New 'Like New' Good Fair"`
	Color       *string  `json:"color"`
	Brand       *string  `json:"brand"`
	Tags        []string `json:"tags"`
	Images      []string `json:"images"`
	IsDonation  bool     `json:"isDonation"`
}

// CreateItem is the handler for POST /api/items. The points value is
// derived server-side from condition and type.
func (h *Handlers) CreateItem(c *gin.Context) {
	var input CreateItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, validationErrorResponse(err))
		return
	}

	userID := currentUserID(c)
	item := &models.Item{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Type:        input.Type,
		Size:        input.Size,
		Condition:   input.Condition,
		Color:       input.Color,
		Brand:       input.Brand,
		Tags:        input.Tags,
		Images:      input.Images,
		OwnerID:     &userID,
		IsDonation:  input.IsDonation,
	}

	created, err := store.CreateItem(c.Request.Context(), h.DB, item)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create item"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListItems is the handler for GET /api/items. Unauthenticated browsing
// only ever sees approved listings unless a status filter is given.
func (h *Handlers) ListItems(c *gin.Context) {
	filters := models.ItemFilters{
		Category: c.Query("category"),
		Type:     c.Query("type"),
		Status:   c.Query("status"),
	}
	if filters.Status == "" {
		filters.Status = models.ItemStatusApproved
	}

	items, err := store.GetAllItems(c.Request.Context(), h.DB, filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch items"})
		return
	}
	if items == nil {
		items = []models.Item{}
	}
	c.JSON(http.StatusOK, items)
}

// GetFeaturedItems is the handler for GET /api/items/featured.
func (h *Handlers) GetFeaturedItems(c *gin.Context) {
	items, err := store.GetFeaturedItems(c.Request.Context(), h.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch featured items"})
		return
	}
	if items == nil {
		items = []models.Item{}
	}
	c.JSON(http.StatusOK, items)
}

// GetItem is the handler for GET /api/items/:id.
func (h *Handlers) GetItem(c *gin.Context) {
	item, err := store.GetItem(c.Request.Context(), h.DB, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch item"})
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// GetUserItems is the handler for GET /api/users/:userId/items. Users
// may only list their own wardrobe.
func (h *Handlers) GetUserItems(c *gin.Context) {
	userID := c.Param("userId")
	if userID != currentUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	items, err := store.GetUserItems(c.Request.Context(), h.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch items"})
		return
	}
	if items == nil {
		items = []models.Item{}
	}
	c.JSON(http.StatusOK, items)
}

// DeleteItem is the handler for DELETE /api/items/:id. Only the owner
// may remove a listing.
func (h *Handlers) DeleteItem(c *gin.Context) {
	item, err := store.GetItem(c.Request.Context(), h.DB, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch item"})
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}
	if item.OwnerID == nil || *item.OwnerID != currentUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	if err := store.DeleteItem(c.Request.Context(), h.DB, item.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item deleted"})
}

// itemPatchFromInput builds a store patch out of an admin update body.
func itemPatchFromInput(input AdminUpdateItemInput) store.ItemPatch {
	var patch store.ItemPatch
	if input.Status != nil {
		patch.Status = input.Status
	}
	if input.IsFeatured != nil {
		patch.IsFeatured = input.IsFeatured
	}
	return patch
}

// AdminUpdateItemInput is the request body for PATCH /api/admin/items/:id.
type AdminUpdateItemInput struct {
	Status     *string `json:"status" binding:"omitempty,oneof=pending approved rejected swapped donated"`
	IsFeatured *bool   `json:"isFeatured"`
}

// AdminListItems is the handler for GET /api/admin/items. Admins see
// every listing regardless of status.
func (h *Handlers) AdminListItems(c *gin.Context) {
	filters := models.ItemFilters{Status: c.Query("status")}
	items, err := store.GetAllItems(c.Request.Context(), h.DB, filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch items"})
		return
	}
	if items == nil {
		items = []models.Item{}
	}
	c.JSON(http.StatusOK, items)
}

// AdminUpdateItem is the handler for PATCH /api/admin/items/:id. It is
// how listings are approved, rejected and featured.
func (h *Handlers) AdminUpdateItem(c *gin.Context) {
	var input AdminUpdateItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, validationErrorResponse(err))
		return
	}
	if input.Status == nil && input.IsFeatured == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}

	item, err := store.UpdateItem(c.Request.Context(), h.DB, c.Param("id"), itemPatchFromInput(input))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
		return
	}
	c.JSON(http.StatusOK, item)
}
