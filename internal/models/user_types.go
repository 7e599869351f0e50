package models

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User roles. Admins may moderate the item catalog.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is the model for the 'users' table.
// Point balances are NOT stored here; they are derived from the
// point_entries ledger (see store.PointsBalance).
type User struct {
	ID           string `json:"id" db:"id"`
	Role         string `json:"role" db:"role"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`

	// --- Profile Fields (Pointers = Clean JSON) ---
	FirstName       *string `json:"firstName,omitempty" db:"first_name"`
	LastName        *string `json:"lastName,omitempty" db:"last_name"`
	ProfileImageURL *string `json:"profileImageUrl,omitempty" db:"profile_image_url"`

	// Free-form style preference object, stored as a JSON column.
	StylePreferences map[string]interface{} `json:"stylePreferences,omitempty" db:"style_preferences"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Password Helper (Standard)
type Password struct {
	Plaintext *string
	Hash      string
}

func (p *Password) Set(plaintextPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintextPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	p.Hash = string(hash)
	p.Plaintext = &plaintextPassword
	return nil
}

func (p *Password) Matches(plaintextPassword string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(p.Hash), []byte(plaintextPassword))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
