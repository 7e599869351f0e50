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

// CreateUser inserts a user and awards the signup bonus in the same
// transaction. The caller provides email, password hash and profile
// fields; id, role default and timestamps are assigned here.
func CreateUser(ctx context.Context, db *sql.DB, user *models.User) (*models.User, error) {
	user.ID = uuid.NewString()
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	var prefsJSON any
	if user.StylePreferences != nil {
		b, _ := json.Marshal(user.StylePreferences)
		prefsJSON = string(b)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO users
		 (id, role, email, password_hash, first_name, last_name,
		  profile_image_url, style_preferences, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		user.ID, user.Role, user.Email, user.PasswordHash, user.FirstName,
		user.LastName, user.ProfileImageURL, prefsJSON, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting user: %w", err)
	}

	if err := AwardPoints(ctx, tx, user.ID, models.EventSignup, user.ID, models.PointsSignupBonus); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing user: %w", err)
	}
	return user, nil
}

const userColumns = `id, role, email, password_hash, first_name, last_name,
	profile_image_url, style_preferences, created_at, updated_at`

// GetUser returns a user by ID, or nil if it does not exist.
func GetUser(ctx context.Context, db *sql.DB, id string) (*models.User, error) {
	user, err := scanUser(db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return user, nil
}

// GetUserByEmail returns a user by email, or nil if it does not exist.
func GetUserByEmail(ctx context.Context, db *sql.DB, email string) (*models.User, error) {
	user, err := scanUser(db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting user by email: %w", err)
	}
	return user, nil
}

func scanUser(row rowScanner) (*models.User, error) {
	var user models.User
	var prefsJSON []byte
	err := row.Scan(
		&user.ID, &user.Role, &user.Email, &user.PasswordHash,
		&user.FirstName, &user.LastName, &user.ProfileImageURL,
		&prefsJSON, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(prefsJSON) > 0 {
		json.Unmarshal(prefsJSON, &user.StylePreferences)
	}
	return &user, nil
}
