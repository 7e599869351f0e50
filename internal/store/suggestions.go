package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nitinog10/odoo-rewear-community-exchange/internal/models"
)

// CreateAISuggestion appends one stylist result to the cache. Rows are
// never updated or pruned; reads are capped instead.
func CreateAISuggestion(ctx context.Context, db *sql.DB, s *models.AISuggestion) (*models.AISuggestion, error) {
	s.ID = uuid.NewString()
	s.CreatedAt = time.Now().UTC()
	if s.SuggestedItems == nil {
		s.SuggestedItems = []models.SuggestedItem{}
	}
	itemsJSON, _ := json.Marshal(s.SuggestedItems)

	_, err := db.ExecContext(ctx,
		`INSERT INTO ai_suggestions (id, user_id, base_item_id, suggested_items, reasoning, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		s.ID, s.UserID, s.BaseItemID, string(itemsJSON), s.Reasoning, s.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting suggestion: %w", err)
	}
	return s, nil
}

// GetAISuggestions returns the user's most recent cached suggestions,
// newest first, capped at limit (10 when limit <= 0).
func GetAISuggestions(ctx context.Context, db *sql.DB, userID string, limit int) ([]models.AISuggestion, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := db.QueryContext(ctx,
		`SELECT id, user_id, base_item_id, suggested_items, reasoning, created_at
		 FROM ai_suggestions
		 WHERE user_id = ?
		 ORDER BY created_at DESC
		 LIMIT ?`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing suggestions: %w", err)
	}
	defer rows.Close()

	var suggestions []models.AISuggestion
	for rows.Next() {
		var s models.AISuggestion
		var itemsJSON []byte
		if err := rows.Scan(&s.ID, &s.UserID, &s.BaseItemID, &itemsJSON, &s.Reasoning, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning suggestion row: %w", err)
		}
		s.SuggestedItems = []models.SuggestedItem{}
		if len(itemsJSON) > 0 {
			json.Unmarshal(itemsJSON, &s.SuggestedItems)
		}
		suggestions = append(suggestions, s)
	}
	return suggestions, rows.Err()
}
