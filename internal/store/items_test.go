package store

import (
	"context"
	"errors"
	"testing"

	"github.com/nitinog10/odoo-rewear-community-exchange/internal/database"
	"github.com/nitinog10/odoo-rewear-community-exchange/internal/models"
)

func TestPointsValueFor(t *testing.T) {
	tests := []struct {
		condition string
		itemType  string
		want      int
	}{
		{models.ConditionNew, "Dress", 170},
		{models.ConditionNew, "Shirt", 150},
		{models.ConditionLikeNew, "Jacket", 150},
		{models.ConditionLikeNew, "Pants", 130},
		{models.ConditionGood, "Boots", 130},
		{models.ConditionGood, "T-Shirt", 110},
		{models.ConditionFair, "Coat", 110},
		{models.ConditionFair, "Scarf", 90},
		{"", "Shoes", 120},
		{"", "", 100},
	}

	for _, tt := range tests {
		got := PointsValueFor(tt.condition, tt.itemType)
		if got != tt.want {
			t.Errorf("PointsValueFor(%q, %q) = %d, want %d", tt.condition, tt.itemType, got, tt.want)
		}
	}
}

func TestCreateItemAssignsValueAndSlug(t *testing.T) {
	db := database.NewTestDB(t)
	ctx := context.Background()

	owner := newUser(t, db, "owner@example.com")
	item := newItem(t, db, owner.ID, "Vintage Denim Jacket", models.ConditionLikeNew, "Jacket")

	if item.PointsValue != 150 {
		t.Errorf("expected points value 150, got %d", item.PointsValue)
	}
	if item.Slug != "vintage-denim-jacket" {
		t.Errorf("expected slug 'vintage-denim-jacket', got %q", item.Slug)
	}
	if item.Status != models.ItemStatusApproved {
		t.Errorf("expected default status 'approved', got %q", item.Status)
	}

	got, err := GetItem(ctx, db, item.ID)
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if got == nil || got.Title != "Vintage Denim Jacket" {
		t.Errorf("expected item to round-trip, got %+v", got)
	}
}

func TestCreateItemAwardsListingBonus(t *testing.T) {
	db := database.NewTestDB(t)
	ctx := context.Background()

	owner := newUser(t, db, "lister@example.com")
	newItem(t, db, owner.ID, "Wool Sweater", models.ConditionGood, "Sweater")

	balance, _ := PointsBalance(ctx, db, owner.ID)
	want := models.PointsSignupBonus + models.PointsListItem
	if balance != want {
		t.Errorf("expected balance %d after listing, got %d", want, balance)
	}
}

func TestGetItemMissing(t *testing.T) {
	db := database.NewTestDB(t)

	item, err := GetItem(context.Background(), db, "no-such-item")
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if item != nil {
		t.Errorf("expected nil for missing item, got %+v", item)
	}
}

func TestGetAllItemsFilters(t *testing.T) {
	db := database.NewTestDB(t)
	ctx := context.Background()

	owner := newUser(t, db, "filters@example.com")
	newItem(t, db, owner.ID, "Red Dress", models.ConditionNew, "Dress")
	shirt := newItem(t, db, owner.ID, "Blue Shirt", models.ConditionGood, "Shirt")
	UpdateItem(ctx, db, shirt.ID, ItemPatch{Status: strPtr(models.ItemStatusPending)})

	all, err := GetAllItems(ctx, db, models.ItemFilters{})
	if err != nil {
		t.Fatalf("GetAllItems: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 items, got %d", len(all))
	}

	approved, _ := GetAllItems(ctx, db, models.ItemFilters{Status: models.ItemStatusApproved})
	if len(approved) != 1 {
		t.Errorf("expected 1 approved item, got %d", len(approved))
	}

	dresses, _ := GetAllItems(ctx, db, models.ItemFilters{Type: "Dress"})
	if len(dresses) != 1 {
		t.Errorf("expected 1 dress, got %d", len(dresses))
	}
}

func TestGetFeaturedItemsCapAndStatus(t *testing.T) {
	db := database.NewTestDB(t)
	ctx := context.Background()

	owner := newUser(t, db, "featured@example.com")
	featured := true
	for i := 0; i < 10; i++ {
		item := newItem(t, db, owner.ID, "Featured Piece", models.ConditionGood, "Shirt")
		UpdateItem(ctx, db, item.ID, ItemPatch{IsFeatured: &featured})
	}

	// A featured but unapproved item must not show up.
	hidden := newItem(t, db, owner.ID, "Hidden Piece", models.ConditionGood, "Shirt")
	UpdateItem(ctx, db, hidden.ID, ItemPatch{
		IsFeatured: &featured,
		Status:     strPtr(models.ItemStatusPending),
	})

	items, err := GetFeaturedItems(ctx, db)
	if err != nil {
		t.Fatalf("GetFeaturedItems: %v", err)
	}
	if len(items) != 8 {
		t.Errorf("expected featured list capped at 8, got %d", len(items))
	}
	for _, item := range items {
		if item.Status != models.ItemStatusApproved {
			t.Errorf("expected only approved items, got status %q", item.Status)
		}
	}
}

func TestUpdateItemPatch(t *testing.T) {
	db := database.NewTestDB(t)
	ctx := context.Background()

	owner := newUser(t, db, "patcher@example.com")
	item := newItem(t, db, owner.ID, "Plain Tee", models.ConditionGood, "T-Shirt")

	updated, err := UpdateItem(ctx, db, item.ID, ItemPatch{
		Title:  strPtr("Graphic Tee"),
		Status: strPtr(models.ItemStatusRejected),
	})
	if err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	if updated.Title != "Graphic Tee" {
		t.Errorf("expected updated title, got %q", updated.Title)
	}
	if updated.Slug != "graphic-tee" {
		t.Errorf("expected slug to follow title, got %q", updated.Slug)
	}
	if updated.Status != models.ItemStatusRejected {
		t.Errorf("expected status 'rejected', got %q", updated.Status)
	}
	// The derived value never changes after creation.
	if updated.PointsValue != item.PointsValue {
		t.Errorf("expected points value to stay %d, got %d", item.PointsValue, updated.PointsValue)
	}
}

func TestUpdateItemMissing(t *testing.T) {
	db := database.NewTestDB(t)

	_, err := UpdateItem(context.Background(), db, "no-such-item", ItemPatch{Status: strPtr(models.ItemStatusApproved)})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteItem(t *testing.T) {
	db := database.NewTestDB(t)
	ctx := context.Background()

	owner := newUser(t, db, "deleter@example.com")
	item := newItem(t, db, owner.ID, "Short Lived", models.ConditionFair, "Hat")

	if err := DeleteItem(ctx, db, item.ID); err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}

	got, _ := GetItem(ctx, db, item.ID)
	if got != nil {
		t.Errorf("expected item gone after delete, got %+v", got)
	}
}

func strPtr(s string) *string { return &s }
