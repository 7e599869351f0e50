package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/nitinog10/odoo-rewear-community-exchange/internal/database"
	"github.com/nitinog10/odoo-rewear-community-exchange/internal/models"
)

func newUser(t *testing.T, db *sql.DB, email string) *models.User {
	t.Helper()
	user, err := CreateUser(context.Background(), db, &models.User{
		Email:        email,
		PasswordHash: "x",
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	return user
}

func newItem(t *testing.T, db *sql.DB, ownerID, title, condition, itemType string) *models.Item {
	t.Helper()
	item, err := CreateItem(context.Background(), db, &models.Item{
		Title:     title,
		Category:  "Women",
		Type:      itemType,
		Size:      "M",
		Condition: condition,
		OwnerID:   &ownerID,
	})
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	return item
}

func TestSignupAwardsBonus(t *testing.T) {
	db := database.NewTestDB(t)
	ctx := context.Background()

	user := newUser(t, db, "alice@example.com")

	balance, err := PointsBalance(ctx, db, user.ID)
	if err != nil {
		t.Fatalf("PointsBalance: %v", err)
	}
	if balance != models.PointsSignupBonus {
		t.Errorf("expected signup balance %d, got %d", models.PointsSignupBonus, balance)
	}
}

func TestGetUserByEmailMissing(t *testing.T) {
	db := database.NewTestDB(t)

	user, err := GetUserByEmail(context.Background(), db, "nobody@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if user != nil {
		t.Errorf("expected nil for unknown email, got %+v", user)
	}
}
