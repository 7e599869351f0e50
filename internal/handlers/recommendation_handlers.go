package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nitinog10/odoo-rewear-community-exchange/internal/models"
	"github.com/nitinog10/odoo-rewear-community-exchange/internal/store"
)

// RecommendationInput is the request body for POST /api/recommendations.
// The enum values mirror the options the frontend form offers.
type RecommendationInput struct {
	Gender           string  `json:"gender" binding:"required,oneof=woman man non-binary"`
	BodyType         string  `json:"bodyType" binding:"required"`
	SkinTone         string  `json:"skinTone" binding:"required,oneof=fair light medium olive tan dark deep"`
	Occasion         string  `json:"occasion" binding:"required,oneof=casual work formal party date vacation wedding exercise"`
	Season           string  `json:"season" binding:"required,oneof=spring summer fall winter"`
	ColorPreferences *string `json:"colorPreferences"`
	StylePreferences *string `json:"stylePreferences"`
}

// CreateRecommendations is the handler for POST /api/recommendations.
// It persists the submitted fashion profile, asks the stylist for a
// recommendation set and stores that too, so past results can be
// revisited without another LLM call.
func (h *Handlers) CreateRecommendations(c *gin.Context) {
	if !h.requireStylist(c) {
		return
	}

	var input RecommendationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, validationErrorResponse(err))
		return
	}

	profile := &models.FashionProfile{
		Gender:           input.Gender,
		BodyType:         input.BodyType,
		SkinTone:         input.SkinTone,
		Occasion:         input.Occasion,
		Season:           input.Season,
		ColorPreferences: input.ColorPreferences,
		StylePreferences: input.StylePreferences,
	}

	ctx := c.Request.Context()
	if _, err := store.CreateFashionProfile(ctx, h.DB, profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save profile"})
		return
	}

	recs, err := h.Stylist.FashionRecommendations(ctx, profile)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate recommendations"})
		return
	}

	saved, err := store.CreateRecommendations(ctx, h.DB, profile.ID, recs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save recommendations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile, "recommendations": saved})
}
