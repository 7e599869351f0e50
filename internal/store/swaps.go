package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nitinog10/odoo-rewear-community-exchange/internal/models"
)

// CreateSwap inserts a trade proposal in status 'pending'. The two item
// references must belong to the requester and the owner respectively.
func CreateSwap(ctx context.Context, db *sql.DB, swap *models.Swap) (*models.Swap, error) {
	if err := checkItemOwner(ctx, db, swap.RequesterItemID, swap.RequesterID, "requester"); err != nil {
		return nil, err
	}
	if err := checkItemOwner(ctx, db, swap.OwnerItemID, swap.OwnerID, "owner"); err != nil {
		return nil, err
	}

	swap.ID = uuid.NewString()
	swap.Status = models.SwapStatusPending
	now := time.Now().UTC()
	swap.CreatedAt = now
	swap.UpdatedAt = now

	_, err := db.ExecContext(ctx,
		`INSERT INTO swaps
		 (id, requester_id, owner_id, requester_item_id, owner_item_id,
		  points_difference, status, message, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		swap.ID, swap.RequesterID, swap.OwnerID, swap.RequesterItemID,
		swap.OwnerItemID, swap.PointsDiff, swap.Status, swap.Message,
		swap.CreatedAt, swap.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting swap: %w", err)
	}
	return swap, nil
}

func checkItemOwner(ctx context.Context, db *sql.DB, itemID, userID, side string) error {
	var ownerID sql.NullString
	err := db.QueryRowContext(ctx, `SELECT owner_id FROM items WHERE id = ?`, itemID).Scan(&ownerID)
	if err == sql.ErrNoRows {
		return fmt.Errorf("%s item %s: %w", side, itemID, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("checking %s item: %w", side, err)
	}
	if !ownerID.Valid || ownerID.String != userID {
		return fmt.Errorf("%s item %s does not belong to the %s", side, itemID, side)
	}
	return nil
}

const swapColumns = `id, requester_id, owner_id, requester_item_id, owner_item_id,
	points_difference, status, message, created_at, updated_at`

// GetSwap returns a swap by ID, or nil if it does not exist.
func GetSwap(ctx context.Context, db *sql.DB, id string) (*models.Swap, error) {
	swap, err := scanSwap(db.QueryRowContext(ctx, `SELECT `+swapColumns+` FROM swaps WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting swap: %w", err)
	}
	return swap, nil
}

// GetUserSwaps returns every swap the user participates in, on either
// side, oldest first.
func GetUserSwaps(ctx context.Context, db *sql.DB, userID string) ([]models.Swap, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT `+swapColumns+` FROM swaps
		 WHERE requester_id = ? OR owner_id = ?
		 ORDER BY created_at`, userID, userID)
	if err != nil {
		return nil, fmt.Errorf("listing user swaps: %w", err)
	}
	defer rows.Close()

	var swaps []models.Swap
	for rows.Next() {
		swap, err := scanSwap(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning swap row: %w", err)
		}
		swaps = append(swaps, *swap)
	}
	return swaps, rows.Err()
}

// UpdateSwapStatus moves a swap along its lifecycle. Illegal edges
// (anything outside pending->accepted/rejected, accepted->completed)
// return ErrInvalidTransition. Entering 'completed' awards both
// participants and marks both items swapped, all in one transaction;
// the ledger's unique key keeps the award at-most-once even if two
// completion requests race.
func UpdateSwapStatus(ctx context.Context, db *sql.DB, id, next string) (*models.Swap, error) {
	if !models.ValidSwapStatus(next) {
		return nil, fmt.Errorf("unknown status %q: %w", next, ErrInvalidTransition)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	swap, err := scanSwap(tx.QueryRowContext(ctx, `SELECT `+swapColumns+` FROM swaps WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting swap: %w", err)
	}

	if !models.CanTransitionSwap(swap.Status, next) {
		return nil, fmt.Errorf("%s -> %s: %w", swap.Status, next, ErrInvalidTransition)
	}

	now := time.Now().UTC()
	if _, err := tx.ExecContext(ctx,
		`UPDATE swaps SET status = ?, updated_at = ? WHERE id = ?`, next, now, id); err != nil {
		return nil, fmt.Errorf("updating swap: %w", err)
	}

	if next == models.SwapStatusCompleted {
		if err := AwardPoints(ctx, tx, swap.RequesterID, models.EventSwapCompleted, swap.ID, models.PointsCompleteSwap); err != nil {
			return nil, err
		}
		if err := AwardPoints(ctx, tx, swap.OwnerID, models.EventSwapCompleted, swap.ID, models.PointsCompleteSwap); err != nil {
			return nil, err
		}
		for _, itemID := range []string{swap.RequesterItemID, swap.OwnerItemID} {
			if _, err := tx.ExecContext(ctx,
				`UPDATE items SET status = ?, updated_at = ? WHERE id = ?`,
				models.ItemStatusSwapped, now, itemID); err != nil {
				return nil, fmt.Errorf("marking item swapped: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing swap update: %w", err)
	}

	swap.Status = next
	swap.UpdatedAt = now
	return swap, nil
}

// ExpireStaleSwaps rejects pending swaps created before the cutoff and
// returns how many were touched. Run periodically by the background
// worker in cmd/api.
func ExpireStaleSwaps(ctx context.Context, db *sql.DB, cutoff time.Time) (int64, error) {
	result, err := db.ExecContext(ctx,
		`UPDATE swaps SET status = ?, updated_at = ?
		 WHERE status = ? AND created_at < ?`,
		models.SwapStatusRejected, time.Now().UTC(), models.SwapStatusPending, cutoff)
	if err != nil {
		return 0, fmt.Errorf("expiring stale swaps: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("expiring stale swaps: %w", err)
	}
	return affected, nil
}

func scanSwap(row rowScanner) (*models.Swap, error) {
	var swap models.Swap
	err := row.Scan(
		&swap.ID, &swap.RequesterID, &swap.OwnerID, &swap.RequesterItemID,
		&swap.OwnerItemID, &swap.PointsDiff, &swap.Status, &swap.Message,
		&swap.CreatedAt, &swap.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &swap, nil
}
