package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/nitinog10/odoo-rewear-community-exchange/internal/models"
)

// Querier is the subset of database operations implemented by both
// *sql.DB and *sql.Tx, so the ledger helpers can be used in or out of
// a transaction.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// AwardPoints appends one entry to the points ledger. The ledger is the
// only way a balance changes. The unique key on (user_id, event_type,
// source_id) makes every award at-most-once per source entity: an award
// that already exists is skipped, and a concurrent duplicate insert
// fails the constraint and rolls back with its transaction.
func AwardPoints(ctx context.Context, q Querier, userID, eventType, sourceID string, points int) error {
	var n int
	err := q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM point_entries WHERE user_id = ? AND event_type = ? AND source_id = ?`,
		userID, eventType, sourceID,
	).Scan(&n)
	if err != nil {
		return fmt.Errorf("checking ledger: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = q.ExecContext(ctx,
		`INSERT INTO point_entries (user_id, event_type, source_id, points, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		userID, eventType, sourceID, points, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("awarding points: %w", err)
	}
	return nil
}

// PointsBalance returns the user's current balance: the sum of their
// ledger entries. A user with no entries has balance 0.
func PointsBalance(ctx context.Context, q Querier, userID string) (int, error) {
	var balance sql.NullInt64
	err := q.QueryRowContext(ctx,
		`SELECT SUM(points) FROM point_entries WHERE user_id = ?`, userID,
	).Scan(&balance)
	if err != nil && err != sql.ErrNoRows {
		return 0, fmt.Errorf("summing ledger: %w", err)
	}
	if !balance.Valid {
		return 0, nil
	}
	return int(balance.Int64), nil
}

// PointsHistory returns the user's ledger entries, newest first.
func PointsHistory(ctx context.Context, q Querier, userID string) ([]models.PointEntry, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT id, user_id, event_type, source_id, points, created_at
		 FROM point_entries
		 WHERE user_id = ?
		 ORDER BY created_at DESC, id DESC`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing ledger: %w", err)
	}
	defer rows.Close()

	var entries []models.PointEntry
	for rows.Next() {
		var e models.PointEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.EventType, &e.SourceID, &e.Points, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning ledger entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
