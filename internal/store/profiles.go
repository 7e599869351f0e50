package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nitinog10/odoo-rewear-community-exchange/internal/models"
)

// CreateFashionProfile persists one submission of the preference form.
func CreateFashionProfile(ctx context.Context, db *sql.DB, p *models.FashionProfile) (*models.FashionProfile, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO fashion_profiles
		 (gender, body_type, skin_tone, occasion, season, color_preferences, style_preferences)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.Gender, p.BodyType, p.SkinTone, p.Occasion, p.Season,
		p.ColorPreferences, p.StylePreferences,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting fashion profile: %w", err)
	}
	p.ID, err = result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("inserting fashion profile: %w", err)
	}
	return p, nil
}

// CreateRecommendations stores the stylist's output for a profile and
// returns the rows with their assigned ids.
func CreateRecommendations(ctx context.Context, db *sql.DB, profileID int64, recs []models.Recommendation) ([]models.Recommendation, error) {
	now := time.Now().UTC()
	saved := make([]models.Recommendation, 0, len(recs))

	for _, rec := range recs {
		rec.ProfileID = profileID
		rec.CreatedAt = now
		if rec.Details == nil {
			rec.Details = []string{}
		}
		if rec.Tags == nil {
			rec.Tags = []string{}
		}
		detailsJSON, _ := json.Marshal(rec.Details)
		tagsJSON, _ := json.Marshal(rec.Tags)

		result, err := db.ExecContext(ctx,
			`INSERT INTO recommendations
			 (profile_id, title, details, tips, tags, image_url, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			rec.ProfileID, rec.Title, string(detailsJSON), rec.Tips,
			string(tagsJSON), rec.ImageURL, rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("inserting recommendation: %w", err)
		}
		rec.ID, err = result.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("inserting recommendation: %w", err)
		}
		saved = append(saved, rec)
	}
	return saved, nil
}

// GetRecommendations returns the stored recommendations for a profile.
func GetRecommendations(ctx context.Context, db *sql.DB, profileID int64) ([]models.Recommendation, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, profile_id, title, details, tips, tags, image_url, created_at
		 FROM recommendations
		 WHERE profile_id = ?
		 ORDER BY id`, profileID)
	if err != nil {
		return nil, fmt.Errorf("listing recommendations: %w", err)
	}
	defer rows.Close()

	var recs []models.Recommendation
	for rows.Next() {
		var rec models.Recommendation
		var detailsJSON, tagsJSON []byte
		if err := rows.Scan(&rec.ID, &rec.ProfileID, &rec.Title, &detailsJSON,
			&rec.Tips, &tagsJSON, &rec.ImageURL, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning recommendation row: %w", err)
		}
		rec.Details = []string{}
		if len(detailsJSON) > 0 {
			json.Unmarshal(detailsJSON, &rec.Details)
		}
		rec.Tags = []string{}
		if len(tagsJSON) > 0 {
			json.Unmarshal(tagsJSON, &rec.Tags)
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}
