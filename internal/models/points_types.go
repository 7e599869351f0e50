package models

import (
	"time"
)

// Point award events. The (user, event, source) triple is unique in the
// ledger, so every award is at-most-once per source entity.
const (
	EventSignup        = "signup"
	EventItemListed    = "item_listed"
	EventSwapCompleted = "swap_completed"
	EventDonation      = "donation"
)

// Fixed award amounts.
const (
	PointsSignupBonus  = 5
	PointsListItem     = 10
	PointsCompleteSwap = 20
	PointsDonateItem   = 20
)

// PointEntry is the model for the 'point_entries' table, the append-only
// ledger behind every user's point balance.
type PointEntry struct {
	ID        int64     `json:"id" db:"id"`
	UserID    string    `json:"userId" db:"user_id"`
	EventType string    `json:"eventType" db:"event_type"`
	SourceID  string    `json:"sourceId" db:"source_id"`
	Points    int       `json:"points" db:"points"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
