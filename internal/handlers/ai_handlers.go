package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nitinog10/odoo-rewear-community-exchange/internal/models"
	"github.com/nitinog10/odoo-rewear-community-exchange/internal/store"
)

// AnalyzeItemInput is the request body for POST /api/items/analyze.
type AnalyzeItemInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// AnalyzeItem is the handler for POST /api/items/analyze. It suggests
// catalog fields for a listing before the user submits it.
func (h *Handlers) AnalyzeItem(c *gin.Context) {
	if !h.requireStylist(c) {
		return
	}

	var input AnalyzeItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, validationErrorResponse(err))
		return
	}
	if input.Title == "" && input.Description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title or description is required"})
		return
	}

	analysis, err := h.Stylist.AnalyzeItem(c.Request.Context(), input.Title, input.Description)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to analyze item"})
		return
	}
	c.JSON(http.StatusOK, analysis)
}

// GetItemSuggestions is the handler for GET /api/items/:id/suggestions.
// Candidates are approved items in the same category, excluding the
// base item. The result is cached under the base item's owner so the
// suggestion history survives restarts.
func (h *Handlers) GetItemSuggestions(c *gin.Context) {
	if !h.requireStylist(c) {
		return
	}

	base, err := store.GetItem(c.Request.Context(), h.DB, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch item"})
		return
	}
	if base == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	all, err := store.GetAllItems(c.Request.Context(), h.DB, models.ItemFilters{
		Category: base.Category,
		Status:   models.ItemStatusApproved,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch candidate items"})
		return
	}

	candidates := make([]models.Item, 0, len(all))
	for _, item := range all {
		if item.ID == base.ID {
			continue
		}
		candidates = append(candidates, item)
	}

	if len(candidates) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"suggestions": []models.SuggestedItem{},
			"reasoning":   "No compatible items found",
		})
		return
	}

	analysis, err := h.Stylist.SuggestMatches(c.Request.Context(), base, candidates)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate suggestions"})
		return
	}

	if base.OwnerID != nil {
		suggestion := &models.AISuggestion{
			UserID:         *base.OwnerID,
			BaseItemID:     base.ID,
			SuggestedItems: analysis.Suggestions,
		}
		if analysis.Reasoning != "" {
			suggestion.Reasoning = &analysis.Reasoning
		}
		if _, err := store.CreateAISuggestion(c.Request.Context(), h.DB, suggestion); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cache suggestions"})
			return
		}
	}

	c.JSON(http.StatusOK, analysis)
}

// GetCachedSuggestions is the handler for GET /api/users/:userId/suggestions.
// It returns previously generated suggestion sets, newest first.
func (h *Handlers) GetCachedSuggestions(c *gin.Context) {
	userID := c.Param("userId")
	if userID != currentUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))
	suggestions, err := store.GetAISuggestions(c.Request.Context(), h.DB, userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch suggestions"})
		return
	}
	if suggestions == nil {
		suggestions = []models.AISuggestion{}
	}
	c.JSON(http.StatusOK, suggestions)
}

// GetUserStyleRecommendations is the handler for
// GET /api/users/:userId/ai-recommendations. An empty wardrobe gets a
// helpful tip instead of an LLM round trip.
func (h *Handlers) GetUserStyleRecommendations(c *gin.Context) {
	userID := c.Param("userId")
	if userID != currentUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	user, err := store.GetUser(c.Request.Context(), h.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	items, err := store.GetUserItems(c.Request.Context(), h.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch items"})
		return
	}
	if len(items) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"outfits":          []gin.H{},
			"personalizedTips": []string{"List a few items from your wardrobe to get personalized outfit ideas."},
		})
		return
	}

	if !h.requireStylist(c) {
		return
	}

	report, err := h.Stylist.StyleRecommendations(c.Request.Context(), user, items)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate recommendations"})
		return
	}
	c.JSON(http.StatusOK, report)
}
