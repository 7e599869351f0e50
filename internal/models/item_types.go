package models

import (
	"time"
)

// Item statuses. New listings default to 'approved'; admins can move
// them through the moderation states.
const (
	ItemStatusPending  = "pending"
	ItemStatusApproved = "approved"
	ItemStatusRejected = "rejected"
	ItemStatusSwapped  = "swapped"
	ItemStatusDonated  = "donated"
)

// Item conditions accepted at listing time.
const (
	ConditionNew     = "New"
	ConditionLikeNew = "Like New"
	ConditionGood    = "Good"
	ConditionFair    = "Fair"
)

// Item is the model for the 'items' table.
type Item struct {
	ID          string  `json:"id" db:"id"`
	Title       string  `json:"title" db:"title"`
	Slug        string  `json:"slug" db:"slug"`
	Description *string `json:"description,omitempty" db:"description"`
	Category    string  `json:"category" db:"category"` // Men, Women, Kids, Unisex
	Type        string  `json:"type" db:"type"`         // Shirt, Dress, Jacket, ...
	Size        string  `json:"size" db:"size"`
	Condition   string  `json:"condition" db:"item_condition"`
	Color       *string `json:"color,omitempty" db:"color"`
	Brand       *string `json:"brand,omitempty" db:"brand"`

	// Tags and Images are stored as JSON columns.
	Tags   []string `json:"tags"`
	Images []string `json:"images"`

	// PointsValue is computed once at creation from condition and type,
	// and is never part of an update patch.
	PointsValue int `json:"pointsValue" db:"points_value"`

	OwnerID    *string `json:"ownerId,omitempty" db:"owner_id"`
	Status     string  `json:"status" db:"status"`
	IsFeatured bool    `json:"isFeatured" db:"is_featured"`
	IsDonation bool    `json:"isDonation" db:"is_donation"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// ItemFilters holds the optional equality filters for catalog queries.
type ItemFilters struct {
	Category string
	Type     string
	Status   string
}
