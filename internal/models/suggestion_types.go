package models

import (
	"time"
)

// SuggestedItem is one entry of the stylist's match list, stored inside
// the suggested_items JSON column.
type SuggestedItem struct {
	ItemID     string  `json:"itemId"`
	MatchScore float64 `json:"matchScore"`
	Reasoning  string  `json:"reasoning"`
}

// AISuggestion is the model for the 'ai_suggestions' table: a write-through
// cache of stylist output, append-only and capped only on read.
type AISuggestion struct {
	ID             string          `json:"id" db:"id"`
	UserID         string          `json:"userId" db:"user_id"`
	BaseItemID     string          `json:"baseItemId" db:"base_item_id"`
	SuggestedItems []SuggestedItem `json:"suggestedItems"`
	Reasoning      *string         `json:"reasoning,omitempty" db:"reasoning"`
	CreatedAt      time.Time       `json:"createdAt" db:"created_at"`
}
