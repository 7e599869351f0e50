package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/nitinog10/odoo-rewear-community-exchange/internal/ai"
)

// Handlers holds all dependencies for the HTTP handlers.
type Handlers struct {
	DB      *sql.DB
	Stylist *ai.Stylist // nil when no API key is configured
}

// currentUserID returns the authenticated caller's ID, set by the auth
// middleware.
func currentUserID(c *gin.Context) string {
	userIDRaw, _ := c.Get("userID")
	userID, _ := userIDRaw.(string)
	return userID
}

// validationErrorResponse turns a binding failure into a structured
// field-error list when the cause is validation, and a plain error
// message otherwise.
func validationErrorResponse(err error) gin.H {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]gin.H, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, gin.H{"field": fe.Field(), "rule": fe.Tag()})
		}
		return gin.H{"error": "Invalid request data", "fieldErrors": fields}
	}
	return gin.H{"error": err.Error()}
}

// requireStylist aborts with 503 when the AI collaborator is not
// configured, so the rest of the app still works without an API key.
func (h *Handlers) requireStylist(c *gin.Context) bool {
	if h.Stylist == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI service is not configured"})
		return false
	}
	return true
}
