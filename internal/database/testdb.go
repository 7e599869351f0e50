package database

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

// testSchemaStatements mirrors schemaStatements in SQLite's dialect, so
// the store layer can be exercised against an in-memory database. The
// store's SQL sticks to the ?-placeholder subset both drivers accept.
var testSchemaStatements = []string{
	`CREATE TABLE users (
		id TEXT PRIMARY KEY,
		role TEXT NOT NULL DEFAULT 'user',
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		first_name TEXT,
		last_name TEXT,
		profile_image_url TEXT,
		style_preferences TEXT,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	)`,

	`CREATE TABLE items (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		slug TEXT NOT NULL,
		description TEXT,
		category TEXT NOT NULL,
		type TEXT NOT NULL,
		size TEXT NOT NULL,
		item_condition TEXT NOT NULL,
		color TEXT,
		brand TEXT,
		tags TEXT,
		images TEXT,
		points_value INTEGER NOT NULL DEFAULT 0,
		owner_id TEXT,
		status TEXT NOT NULL DEFAULT 'approved',
		is_featured INTEGER NOT NULL DEFAULT 0,
		is_donation INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	)`,

	`CREATE TABLE swaps (
		id TEXT PRIMARY KEY,
		requester_id TEXT NOT NULL,
		owner_id TEXT NOT NULL,
		requester_item_id TEXT NOT NULL,
		owner_item_id TEXT NOT NULL,
		points_difference INTEGER NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'pending',
		message TEXT,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	)`,

	`CREATE TABLE donations (
		id TEXT PRIMARY KEY,
		donor_id TEXT NOT NULL,
		item_id TEXT NOT NULL,
		points_earned INTEGER NOT NULL DEFAULT 20,
		created_at DATETIME NOT NULL
	)`,

	`CREATE TABLE ai_suggestions (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		base_item_id TEXT NOT NULL,
		suggested_items TEXT,
		reasoning TEXT,
		created_at DATETIME NOT NULL
	)`,

	`CREATE TABLE point_entries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id TEXT NOT NULL,
		event_type TEXT NOT NULL,
		source_id TEXT NOT NULL,
		points INTEGER NOT NULL,
		created_at DATETIME NOT NULL,
		UNIQUE (user_id, event_type, source_id)
	)`,

	`CREATE TABLE fashion_profiles (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		gender TEXT NOT NULL,
		body_type TEXT NOT NULL,
		skin_tone TEXT NOT NULL,
		occasion TEXT NOT NULL,
		season TEXT NOT NULL,
		color_preferences TEXT,
		style_preferences TEXT
	)`,

	`CREATE TABLE recommendations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		profile_id INTEGER NOT NULL,
		title TEXT NOT NULL,
		details TEXT,
		tips TEXT,
		tags TEXT,
		image_url TEXT,
		created_at DATETIME NOT NULL
	)`,
}

// NewTestDB creates a fresh in-memory SQLite database with the schema
// applied.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	// The in-memory database vanishes when its last connection closes.
	db.SetMaxOpenConns(1)

	for _, stmt := range testSchemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			t.Fatalf("creating test database schema: %v", err)
		}
	}

	t.Cleanup(func() { db.Close() })

	return db
}
