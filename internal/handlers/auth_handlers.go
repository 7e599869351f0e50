package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nitinog10/odoo-rewear-community-exchange/internal/auth"
	"github.com/nitinog10/odoo-rewear-community-exchange/internal/models"
	"github.com/nitinog10/odoo-rewear-community-exchange/internal/store"
)

// RegisterUserInput is separate from models.User so callers cannot set
// an id or role through the request body.
type RegisterUserInput struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Register is the handler for POST /api/auth/register. New users start
// with the signup bonus on their ledger.
func (h *Handlers) Register(c *gin.Context) {
	var input RegisterUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, validationErrorResponse(err))
		return
	}

	existing, err := store.GetUserByEmail(c.Request.Context(), h.DB, input.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check email"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		return
	}

	var password models.Password
	if err := password.Set(input.Password); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := &models.User{
		Email:        input.Email,
		PasswordHash: password.Hash,
	}
	if input.FirstName != "" {
		user.FirstName = &input.FirstName
	}
	if input.LastName != "" {
		user.LastName = &input.LastName
	}

	if _, err := store.CreateUser(c.Request.Context(), h.DB, user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	token, err := auth.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

// LoginInput is the request body for POST /api/auth/login.
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login is the handler for POST /api/auth/login.
func (h *Handlers) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, validationErrorResponse(err))
		return
	}

	user, err := store.GetUserByEmail(c.Request.Context(), h.DB, input.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
		return
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	password := models.Password{Hash: user.PasswordHash}
	match, err := password.Matches(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify password"})
		return
	}
	if !match {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := auth.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// GetCurrentUser is the handler for GET /api/auth/user. It returns the
// caller's profile along with their derived point balance.
func (h *Handlers) GetCurrentUser(c *gin.Context) {
	userID := currentUserID(c)

	user, err := store.GetUser(c.Request.Context(), h.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	balance, err := store.PointsBalance(c.Request.Context(), h.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch point balance"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "points": balance})
}
