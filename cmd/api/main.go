package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/nitinog10/odoo-rewear-community-exchange/internal/ai"
	"github.com/nitinog10/odoo-rewear-community-exchange/internal/database"
	"github.com/nitinog10/odoo-rewear-community-exchange/internal/handlers"
	"github.com/nitinog10/odoo-rewear-community-exchange/internal/routes"
	"github.com/nitinog10/odoo-rewear-community-exchange/internal/store"
)

// Pending swaps older than this are auto-rejected by the background
// worker so proposals cannot linger forever.
const staleSwapAge = 30 * 24 * time.Hour

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	db, err := database.OpenDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.EnsureSchema(db); err != nil {
		log.Fatalf("Failed to apply schema: %v", err)
	}

	// The stylist is optional: without an API key the marketplace still
	// runs and the AI routes answer 503.
	var stylist *ai.Stylist
	if geminiKey := os.Getenv("GEMINI_API_KEY"); geminiKey != "" {
		stylist, err = ai.NewStylist(context.Background(), geminiKey)
		if err != nil {
			log.Fatalf("Failed to initialize stylist: %v", err)
		}
		defer stylist.Close()
	} else {
		log.Println("WARNING: GEMINI_API_KEY is not set. AI styling routes are disabled.")
	}

	app := &handlers.Handlers{
		DB:      db,
		Stylist: stylist,
	}

	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		log.Println("Background worker started: expiring stale swap proposals...")

		for range ticker.C {
			cutoff := time.Now().UTC().Add(-staleSwapAge)
			expired, err := store.ExpireStaleSwaps(context.Background(), db, cutoff)
			if err != nil {
				log.Printf("Failed to expire stale swaps: %v", err)
				continue
			}
			if expired > 0 {
				log.Printf("Rejected %d stale swap proposals", expired)
			}
		}
	}()

	router := routes.SetupRouter(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting ReWear API server on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
