package database

import (
	"database/sql"
	"fmt"
)

// schemaStatements is the MySQL schema, applied at startup. Columns that
// hold arrays or objects (tags, images, suggested_items, details) are
// JSON columns serialized by the store layer.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id VARCHAR(36) PRIMARY KEY,
		role VARCHAR(20) NOT NULL DEFAULT 'user',
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		first_name VARCHAR(100),
		last_name VARCHAR(100),
		profile_image_url TEXT,
		style_preferences JSON,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS items (
		id VARCHAR(36) PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		slug VARCHAR(255) NOT NULL,
		description TEXT,
		category VARCHAR(50) NOT NULL,
		type VARCHAR(50) NOT NULL,
		size VARCHAR(20) NOT NULL,
		item_condition VARCHAR(20) NOT NULL,
		color VARCHAR(50),
		brand VARCHAR(100),
		tags JSON,
		images JSON,
		points_value INT NOT NULL DEFAULT 0,
		owner_id VARCHAR(36),
		status VARCHAR(20) NOT NULL DEFAULT 'approved',
		is_featured BOOLEAN NOT NULL DEFAULT FALSE,
		is_donation BOOLEAN NOT NULL DEFAULT FALSE,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		INDEX idx_items_owner (owner_id),
		INDEX idx_items_status (status)
	)`,

	`CREATE TABLE IF NOT EXISTS swaps (
		id VARCHAR(36) PRIMARY KEY,
		requester_id VARCHAR(36) NOT NULL,
		owner_id VARCHAR(36) NOT NULL,
		requester_item_id VARCHAR(36) NOT NULL,
		owner_item_id VARCHAR(36) NOT NULL,
		points_difference INT NOT NULL DEFAULT 0,
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		message TEXT,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		INDEX idx_swaps_requester (requester_id),
		INDEX idx_swaps_owner (owner_id)
	)`,

	`CREATE TABLE IF NOT EXISTS donations (
		id VARCHAR(36) PRIMARY KEY,
		donor_id VARCHAR(36) NOT NULL,
		item_id VARCHAR(36) NOT NULL,
		points_earned INT NOT NULL DEFAULT 20,
		created_at DATETIME NOT NULL,
		INDEX idx_donations_donor (donor_id)
	)`,

	`CREATE TABLE IF NOT EXISTS ai_suggestions (
		id VARCHAR(36) PRIMARY KEY,
		user_id VARCHAR(36) NOT NULL,
		base_item_id VARCHAR(36) NOT NULL,
		suggested_items JSON,
		reasoning TEXT,
		created_at DATETIME NOT NULL,
		INDEX idx_suggestions_user (user_id)
	)`,

	`CREATE TABLE IF NOT EXISTS point_entries (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		user_id VARCHAR(36) NOT NULL,
		event_type VARCHAR(30) NOT NULL,
		source_id VARCHAR(36) NOT NULL,
		points INT NOT NULL,
		created_at DATETIME NOT NULL,
		UNIQUE KEY uniq_award (user_id, event_type, source_id),
		INDEX idx_points_user (user_id)
	)`,

	`CREATE TABLE IF NOT EXISTS fashion_profiles (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		gender VARCHAR(20) NOT NULL,
		body_type VARCHAR(50) NOT NULL,
		skin_tone VARCHAR(20) NOT NULL,
		occasion VARCHAR(20) NOT NULL,
		season VARCHAR(20) NOT NULL,
		color_preferences TEXT,
		style_preferences TEXT
	)`,

	`CREATE TABLE IF NOT EXISTS recommendations (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		profile_id BIGINT NOT NULL,
		title VARCHAR(255) NOT NULL,
		details JSON,
		tips TEXT,
		tags JSON,
		image_url TEXT,
		created_at DATETIME NOT NULL,
		INDEX idx_recommendations_profile (profile_id)
	)`,
}

// EnsureSchema creates any missing tables.
func EnsureSchema(db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("applying schema: %w", err)
		}
	}
	return nil
}
