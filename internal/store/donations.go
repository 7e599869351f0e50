package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nitinog10/odoo-rewear-community-exchange/internal/models"
)

// CreateDonation records a donation, marks the item donated and awards
// the donor in one transaction. There is no ownership check: anyone may
// record a donation for an existing item, and donating the same item
// twice produces a second record — but each record awards exactly once
// through the ledger.
func CreateDonation(ctx context.Context, db *sql.DB, donorID, itemID string) (*models.Donation, error) {
	var exists int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM items WHERE id = ?`, itemID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("checking donated item: %w", err)
	}
	if exists == 0 {
		return nil, fmt.Errorf("item %s: %w", itemID, ErrNotFound)
	}

	donation := &models.Donation{
		ID:           uuid.NewString(),
		DonorID:      donorID,
		ItemID:       itemID,
		PointsEarned: models.PointsDonateItem,
		CreatedAt:    time.Now().UTC(),
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO donations (id, donor_id, item_id, points_earned, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		donation.ID, donation.DonorID, donation.ItemID, donation.PointsEarned, donation.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting donation: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE items SET status = ?, is_donation = ?, updated_at = ? WHERE id = ?`,
		models.ItemStatusDonated, true, donation.CreatedAt, itemID,
	)
	if err != nil {
		return nil, fmt.Errorf("marking item donated: %w", err)
	}

	if err := AwardPoints(ctx, tx, donorID, models.EventDonation, donation.ID, models.PointsDonateItem); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing donation: %w", err)
	}
	return donation, nil
}

// GetUserDonations returns the user's donations, oldest first.
func GetUserDonations(ctx context.Context, db *sql.DB, userID string) ([]models.Donation, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, donor_id, item_id, points_earned, created_at
		 FROM donations
		 WHERE donor_id = ?
		 ORDER BY created_at`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing donations: %w", err)
	}
	defer rows.Close()

	var donations []models.Donation
	for rows.Next() {
		var d models.Donation
		if err := rows.Scan(&d.ID, &d.DonorID, &d.ItemID, &d.PointsEarned, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning donation row: %w", err)
		}
		donations = append(donations, d)
	}
	return donations, rows.Err()
}
