package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/nitinog10/odoo-rewear-community-exchange/internal/database"
	"github.com/nitinog10/odoo-rewear-community-exchange/internal/models"
)

func newSwap(t *testing.T, db *sql.DB) (*models.Swap, *models.User, *models.User) {
	t.Helper()
	ctx := context.Background()

	requester := newUser(t, db, "requester@example.com")
	owner := newUser(t, db, "owner-side@example.com")
	requesterItem := newItem(t, db, requester.ID, "Requester Jacket", models.ConditionGood, "Jacket")
	ownerItem := newItem(t, db, owner.ID, "Owner Boots", models.ConditionLikeNew, "Boots")

	swap, err := CreateSwap(ctx, db, &models.Swap{
		RequesterID:     requester.ID,
		OwnerID:         owner.ID,
		RequesterItemID: requesterItem.ID,
		OwnerItemID:     ownerItem.ID,
	})
	if err != nil {
		t.Fatalf("CreateSwap: %v", err)
	}
	return swap, requester, owner
}

func TestCreateSwapStartsPending(t *testing.T) {
	db := database.NewTestDB(t)

	swap, _, _ := newSwap(t, db)
	if swap.Status != models.SwapStatusPending {
		t.Errorf("expected status 'pending', got %q", swap.Status)
	}
}

func TestCreateSwapChecksOwnership(t *testing.T) {
	db := database.NewTestDB(t)
	ctx := context.Background()

	requester := newUser(t, db, "thief@example.com")
	owner := newUser(t, db, "victim@example.com")
	ownerItem := newItem(t, db, owner.ID, "Owner Coat", models.ConditionNew, "Coat")

	// Proposing with someone else's item on the requester side fails.
	_, err := CreateSwap(ctx, db, &models.Swap{
		RequesterID:     requester.ID,
		OwnerID:         owner.ID,
		RequesterItemID: ownerItem.ID,
		OwnerItemID:     ownerItem.ID,
	})
	if err == nil {
		t.Error("expected error when requester item belongs to someone else")
	}

	_, err = CreateSwap(ctx, db, &models.Swap{
		RequesterID:     requester.ID,
		OwnerID:         owner.ID,
		RequesterItemID: "no-such-item",
		OwnerItemID:     ownerItem.ID,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing item, got %v", err)
	}
}

func TestSwapLifecycleTransitions(t *testing.T) {
	db := database.NewTestDB(t)
	ctx := context.Background()

	swap, _, _ := newSwap(t, db)

	// pending -> completed skips acceptance and must fail.
	_, err := UpdateSwapStatus(ctx, db, swap.ID, models.SwapStatusCompleted)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition for pending -> completed, got %v", err)
	}

	accepted, err := UpdateSwapStatus(ctx, db, swap.ID, models.SwapStatusAccepted)
	if err != nil {
		t.Fatalf("UpdateSwapStatus to accepted: %v", err)
	}
	if accepted.Status != models.SwapStatusAccepted {
		t.Errorf("expected status 'accepted', got %q", accepted.Status)
	}

	// accepted -> rejected is not a legal edge.
	_, err = UpdateSwapStatus(ctx, db, swap.ID, models.SwapStatusRejected)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition for accepted -> rejected, got %v", err)
	}

	completed, err := UpdateSwapStatus(ctx, db, swap.ID, models.SwapStatusCompleted)
	if err != nil {
		t.Fatalf("UpdateSwapStatus to completed: %v", err)
	}
	if completed.Status != models.SwapStatusCompleted {
		t.Errorf("expected status 'completed', got %q", completed.Status)
	}

	// completed is terminal.
	_, err = UpdateSwapStatus(ctx, db, swap.ID, models.SwapStatusAccepted)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition out of completed, got %v", err)
	}
}

func TestSwapUnknownStatus(t *testing.T) {
	db := database.NewTestDB(t)

	swap, _, _ := newSwap(t, db)
	_, err := UpdateSwapStatus(context.Background(), db, swap.ID, "cancelled")
	if !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition for unknown status, got %v", err)
	}
}

func TestSwapMissing(t *testing.T) {
	db := database.NewTestDB(t)

	_, err := UpdateSwapStatus(context.Background(), db, "no-such-swap", models.SwapStatusAccepted)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSwapCompletionAwardsBothOnce(t *testing.T) {
	db := database.NewTestDB(t)
	ctx := context.Background()

	swap, requester, owner := newSwap(t, db)

	UpdateSwapStatus(ctx, db, swap.ID, models.SwapStatusAccepted)
	if _, err := UpdateSwapStatus(ctx, db, swap.ID, models.SwapStatusCompleted); err != nil {
		t.Fatalf("completing swap: %v", err)
	}

	// Signup bonus + listing bonus + completion award per participant.
	want := models.PointsSignupBonus + models.PointsListItem + models.PointsCompleteSwap
	for _, user := range []*models.User{requester, owner} {
		balance, _ := PointsBalance(ctx, db, user.ID)
		if balance != want {
			t.Errorf("expected balance %d for %s, got %d", want, user.Email, balance)
		}
	}

	// A second completion attempt must not award again.
	_, err := UpdateSwapStatus(ctx, db, swap.ID, models.SwapStatusCompleted)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition on re-complete, got %v", err)
	}
	balance, _ := PointsBalance(ctx, db, requester.ID)
	if balance != want {
		t.Errorf("expected balance unchanged at %d, got %d", want, balance)
	}
}

func TestSwapCompletionMarksItemsSwapped(t *testing.T) {
	db := database.NewTestDB(t)
	ctx := context.Background()

	swap, _, _ := newSwap(t, db)
	UpdateSwapStatus(ctx, db, swap.ID, models.SwapStatusAccepted)
	UpdateSwapStatus(ctx, db, swap.ID, models.SwapStatusCompleted)

	for _, itemID := range []string{swap.RequesterItemID, swap.OwnerItemID} {
		item, _ := GetItem(ctx, db, itemID)
		if item == nil || item.Status != models.ItemStatusSwapped {
			t.Errorf("expected item %s marked swapped, got %+v", itemID, item)
		}
	}
}

func TestGetUserSwapsBothSides(t *testing.T) {
	db := database.NewTestDB(t)
	ctx := context.Background()

	swap, requester, owner := newSwap(t, db)

	for _, user := range []*models.User{requester, owner} {
		swaps, err := GetUserSwaps(ctx, db, user.ID)
		if err != nil {
			t.Fatalf("GetUserSwaps: %v", err)
		}
		if len(swaps) != 1 || swaps[0].ID != swap.ID {
			t.Errorf("expected %s to see the swap, got %+v", user.Email, swaps)
		}
	}

	stranger := newUser(t, db, "stranger@example.com")
	swaps, _ := GetUserSwaps(ctx, db, stranger.ID)
	if len(swaps) != 0 {
		t.Errorf("expected no swaps for a stranger, got %d", len(swaps))
	}
}

func TestExpireStaleSwaps(t *testing.T) {
	db := database.NewTestDB(t)
	ctx := context.Background()

	stale, _, _ := newSwap(t, db)

	// Backdate the proposal past the cutoff.
	old := time.Now().UTC().Add(-40 * 24 * time.Hour)
	if _, err := db.Exec(`UPDATE swaps SET created_at = ? WHERE id = ?`, old, stale.ID); err != nil {
		t.Fatalf("backdating swap: %v", err)
	}

	cutoff := time.Now().UTC().Add(-30 * 24 * time.Hour)
	expired, err := ExpireStaleSwaps(ctx, db, cutoff)
	if err != nil {
		t.Fatalf("ExpireStaleSwaps: %v", err)
	}
	if expired != 1 {
		t.Errorf("expected 1 expired swap, got %d", expired)
	}

	got, _ := GetSwap(ctx, db, stale.ID)
	if got.Status != models.SwapStatusRejected {
		t.Errorf("expected stale swap rejected, got %q", got.Status)
	}

	// Fresh pending swaps are untouched on the next run.
	expired, _ = ExpireStaleSwaps(ctx, db, cutoff)
	if expired != 0 {
		t.Errorf("expected no further expirations, got %d", expired)
	}
}
