package models

import (
	"time"
)

// FashionProfile is the model for the 'fashion_profiles' table (the
// StyleAI preference form).
type FashionProfile struct {
	ID               int64   `json:"id" db:"id"`
	Gender           string  `json:"gender" db:"gender"`
	BodyType         string  `json:"bodyType" db:"body_type"`
	SkinTone         string  `json:"skinTone" db:"skin_tone"`
	Occasion         string  `json:"occasion" db:"occasion"`
	Season           string  `json:"season" db:"season"`
	ColorPreferences *string `json:"colorPreferences,omitempty" db:"color_preferences"`
	StylePreferences *string `json:"stylePreferences,omitempty" db:"style_preferences"`
}

// Recommendation is the model for the 'recommendations' table. Details
// and Tags are stored as JSON columns.
type Recommendation struct {
	ID        int64     `json:"id" db:"id"`
	ProfileID int64     `json:"profileId" db:"profile_id"`
	Title     string    `json:"title" db:"title"`
	Details   []string  `json:"details"`
	Tips      string    `json:"tips" db:"tips"`
	Tags      []string  `json:"tags"`
	ImageURL  *string   `json:"imageUrl,omitempty" db:"image_url"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
