package store

import (
	"context"
	"testing"

	"github.com/nitinog10/odoo-rewear-community-exchange/internal/database"
	"github.com/nitinog10/odoo-rewear-community-exchange/internal/models"
)

func TestAwardPointsAtMostOncePerSource(t *testing.T) {
	db := database.NewTestDB(t)
	ctx := context.Background()

	user := newUser(t, db, "ledger@example.com")

	for i := 0; i < 3; i++ {
		if err := AwardPoints(ctx, db, user.ID, models.EventDonation, "donation-1", models.PointsDonateItem); err != nil {
			t.Fatalf("AwardPoints: %v", err)
		}
	}

	balance, _ := PointsBalance(ctx, db, user.ID)
	want := models.PointsSignupBonus + models.PointsDonateItem
	if balance != want {
		t.Errorf("expected balance %d after repeated awards, got %d", want, balance)
	}
}

func TestAwardPointsDistinctSources(t *testing.T) {
	db := database.NewTestDB(t)
	ctx := context.Background()

	user := newUser(t, db, "ledger2@example.com")

	AwardPoints(ctx, db, user.ID, models.EventDonation, "donation-1", models.PointsDonateItem)
	AwardPoints(ctx, db, user.ID, models.EventDonation, "donation-2", models.PointsDonateItem)

	balance, _ := PointsBalance(ctx, db, user.ID)
	want := models.PointsSignupBonus + 2*models.PointsDonateItem
	if balance != want {
		t.Errorf("expected balance %d, got %d", want, balance)
	}
}

func TestPointsBalanceUnknownUser(t *testing.T) {
	db := database.NewTestDB(t)

	balance, err := PointsBalance(context.Background(), db, "no-such-user")
	if err != nil {
		t.Fatalf("PointsBalance: %v", err)
	}
	if balance != 0 {
		t.Errorf("expected 0 for user with no ledger entries, got %d", balance)
	}
}

func TestPointsHistoryNewestFirst(t *testing.T) {
	db := database.NewTestDB(t)
	ctx := context.Background()

	user := newUser(t, db, "history@example.com")
	AwardPoints(ctx, db, user.ID, models.EventItemListed, "item-1", models.PointsListItem)
	AwardPoints(ctx, db, user.ID, models.EventDonation, "donation-1", models.PointsDonateItem)

	history, err := PointsHistory(ctx, db, user.ID)
	if err != nil {
		t.Fatalf("PointsHistory: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("expected 3 ledger entries, got %d", len(history))
	}
	if history[0].EventType != models.EventDonation {
		t.Errorf("expected newest entry first, got %q", history[0].EventType)
	}
	if history[2].EventType != models.EventSignup {
		t.Errorf("expected signup entry last, got %q", history[2].EventType)
	}
}
