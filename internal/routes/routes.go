package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/nitinog10/odoo-rewear-community-exchange/internal/handlers"
	"github.com/nitinog10/odoo-rewear-community-exchange/internal/middleware"
)

// SetupRouter wires every endpoint. Browsing the catalog is public;
// everything that acts on behalf of a user sits behind the JWT
// middleware, and moderation behind the admin check on top of it.
func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := router.Group("/api")
	{
		api.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})

		// --- Auth (public) ---
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)

		// --- Catalog (public) ---
		api.GET("/items", h.ListItems)
		api.GET("/items/featured", h.GetFeaturedItems)
		api.GET("/items/:id", h.GetItem)
		api.GET("/items/:id/suggestions", h.GetItemSuggestions)

		// --- StyleAI preference form (public) ---
		api.POST("/recommendations", h.CreateRecommendations)

		// --- Protected (login required) ---
		auth := api.Group("/")
		auth.Use(middleware.AuthMiddleware())
		{
			auth.GET("/auth/user", h.GetCurrentUser)

			auth.POST("/items", h.CreateItem)
			auth.DELETE("/items/:id", h.DeleteItem)
			auth.POST("/items/analyze", h.AnalyzeItem)

			auth.POST("/swaps", h.CreateSwap)
			auth.PATCH("/swaps/:id", h.UpdateSwap)

			auth.POST("/donations", h.CreateDonation)

			auth.GET("/users/:userId/items", h.GetUserItems)
			auth.GET("/users/:userId/swaps", h.GetUserSwaps)
			auth.GET("/users/:userId/donations", h.GetUserDonations)
			auth.GET("/users/:userId/points", h.GetUserPoints)
			auth.GET("/users/:userId/suggestions", h.GetCachedSuggestions)
			auth.GET("/users/:userId/ai-recommendations", h.GetUserStyleRecommendations)
		}

		// --- Admin (role check on top of login) ---
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware(h.DB))
		{
			admin.GET("/items", h.AdminListItems)
			admin.PATCH("/items/:id", h.AdminUpdateItem)
		}
	}

	return router
}
