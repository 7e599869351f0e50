package models

import (
	"time"
)

// Donation is the model for the 'donations' table. Each row awards the
// donor a fixed number of points exactly once.
type Donation struct {
	ID           string    `json:"id" db:"id"`
	DonorID      string    `json:"donorId" db:"donor_id"`
	ItemID       string    `json:"itemId" db:"item_id"`
	PointsEarned int       `json:"pointsEarned" db:"points_earned"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
