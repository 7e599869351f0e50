package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/nitinog10/odoo-rewear-community-exchange/internal/database"
	"github.com/nitinog10/odoo-rewear-community-exchange/internal/models"
)

func TestCreateAISuggestionRoundTrip(t *testing.T) {
	db := database.NewTestDB(t)
	ctx := context.Background()

	user := newUser(t, db, "styled@example.com")
	reasoning := "These pair well for autumn layering"

	created, err := CreateAISuggestion(ctx, db, &models.AISuggestion{
		UserID:     user.ID,
		BaseItemID: "base-item",
		SuggestedItems: []models.SuggestedItem{
			{ItemID: "match-1", MatchScore: 85, Reasoning: "Complementary colors"},
		},
		Reasoning: &reasoning,
	})
	if err != nil {
		t.Fatalf("CreateAISuggestion: %v", err)
	}

	cached, err := GetAISuggestions(ctx, db, user.ID, 0)
	if err != nil {
		t.Fatalf("GetAISuggestions: %v", err)
	}
	if len(cached) != 1 {
		t.Fatalf("expected 1 cached suggestion, got %d", len(cached))
	}
	got := cached[0]
	if got.ID != created.ID {
		t.Errorf("expected id %s, got %s", created.ID, got.ID)
	}
	if len(got.SuggestedItems) != 1 || got.SuggestedItems[0].ItemID != "match-1" {
		t.Errorf("expected suggested items to round-trip, got %+v", got.SuggestedItems)
	}
	if got.Reasoning == nil || *got.Reasoning != reasoning {
		t.Errorf("expected reasoning to round-trip, got %v", got.Reasoning)
	}
}

func TestGetAISuggestionsNewestFirstAndCapped(t *testing.T) {
	db := database.NewTestDB(t)
	ctx := context.Background()

	user := newUser(t, db, "styled2@example.com")
	for i := 0; i < 12; i++ {
		s, err := CreateAISuggestion(ctx, db, &models.AISuggestion{
			UserID:     user.ID,
			BaseItemID: fmt.Sprintf("base-%d", i),
		})
		if err != nil {
			t.Fatalf("CreateAISuggestion: %v", err)
		}
		// Spread timestamps so the ordering is unambiguous.
		backdated := time.Now().UTC().Add(time.Duration(i-12) * time.Minute)
		db.Exec(`UPDATE ai_suggestions SET created_at = ? WHERE id = ?`, backdated, s.ID)
	}

	cached, err := GetAISuggestions(ctx, db, user.ID, 0)
	if err != nil {
		t.Fatalf("GetAISuggestions: %v", err)
	}
	if len(cached) != 10 {
		t.Fatalf("expected default cap of 10, got %d", len(cached))
	}
	if cached[0].BaseItemID != "base-11" {
		t.Errorf("expected newest suggestion first, got %s", cached[0].BaseItemID)
	}

	three, _ := GetAISuggestions(ctx, db, user.ID, 3)
	if len(three) != 3 {
		t.Errorf("expected explicit limit of 3, got %d", len(three))
	}
}
