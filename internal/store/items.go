package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/nitinog10/odoo-rewear-community-exchange/internal/models"
)

// premiumTypes attract a listing bonus on top of the condition value.
var premiumTypes = map[string]bool{
	"Dress":  true,
	"Jacket": true,
	"Coat":   true,
	"Shoes":  true,
	"Boots":  true,
}

// PointsValueFor computes an item's point value from its condition and
// type. The floor is 50 regardless of inputs.
func PointsValueFor(condition, itemType string) int {
	value := 100

	switch condition {
	case models.ConditionNew:
		value += 50
	case models.ConditionLikeNew:
		value += 30
	case models.ConditionGood:
		value += 10
	case models.ConditionFair:
		value -= 10
	}

	if premiumTypes[itemType] {
		value += 20
	}

	if value < 50 {
		value = 50
	}
	return value
}

// CreateItem inserts a listing and awards the listing bonus to its
// owner in the same transaction. The caller fills in the descriptive
// fields; id, slug, points value, status default and timestamps are
// assigned here. The points value is derived once and never updated.
func CreateItem(ctx context.Context, db *sql.DB, item *models.Item) (*models.Item, error) {
	item.ID = uuid.NewString()
	item.Slug = slug.Make(item.Title)
	item.PointsValue = PointsValueFor(item.Condition, item.Type)
	if item.Status == "" {
		item.Status = models.ItemStatusApproved
	}
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now

	if item.Tags == nil {
		item.Tags = []string{}
	}
	if item.Images == nil {
		item.Images = []string{}
	}
	tagsJSON, _ := json.Marshal(item.Tags)
	imagesJSON, _ := json.Marshal(item.Images)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO items
		 (id, title, slug, description, category, type, size, item_condition,
		  color, brand, tags, images, points_value, owner_id, status,
		  is_featured, is_donation, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.Title, item.Slug, item.Description, item.Category,
		item.Type, item.Size, item.Condition, item.Color, item.Brand,
		string(tagsJSON), string(imagesJSON), item.PointsValue, item.OwnerID,
		item.Status, item.IsFeatured, item.IsDonation, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting item: %w", err)
	}

	if item.OwnerID != nil {
		if err := AwardPoints(ctx, tx, *item.OwnerID, models.EventItemListed, item.ID, models.PointsListItem); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing item: %w", err)
	}
	return item, nil
}

const itemColumns = `id, title, slug, description, category, type, size, item_condition,
	color, brand, tags, images, points_value, owner_id, status,
	is_featured, is_donation, created_at, updated_at`

// GetItem returns an item by ID, or nil if it does not exist.
func GetItem(ctx context.Context, db *sql.DB, id string) (*models.Item, error) {
	row := db.QueryRowContext(ctx, `SELECT `+itemColumns+` FROM items WHERE id = ?`, id)
	item, err := scanItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	return item, nil
}

// GetUserItems returns every item owned by the user.
func GetUserItems(ctx context.Context, db *sql.DB, userID string) ([]models.Item, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE owner_id = ? ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing user items: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

// GetFeaturedItems returns up to 8 featured, approved items.
func GetFeaturedItems(ctx context.Context, db *sql.DB) ([]models.Item, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM items
		 WHERE is_featured = ? AND status = ?
		 ORDER BY created_at DESC
		 LIMIT 8`, true, models.ItemStatusApproved)
	if err != nil {
		return nil, fmt.Errorf("listing featured items: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

// GetAllItems returns the catalog, optionally filtered by equality on
// category, type and status.
func GetAllItems(ctx context.Context, db *sql.DB, filters models.ItemFilters) ([]models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE 1=1`
	var args []any

	if filters.Category != "" {
		query += ` AND category = ?`
		args = append(args, filters.Category)
	}
	if filters.Type != "" {
		query += ` AND type = ?`
		args = append(args, filters.Type)
	}
	if filters.Status != "" {
		query += ` AND status = ?`
		args = append(args, filters.Status)
	}

	query += ` ORDER BY created_at`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

// ItemPatch is a partial update. Nil fields are left untouched. The
// points value is deliberately absent: it is immutable after creation.
type ItemPatch struct {
	Title       *string
	Description *string
	Category    *string
	Type        *string
	Size        *string
	Condition   *string
	Color       *string
	Brand       *string
	Tags        *[]string
	Images      *[]string
	Status      *string
	IsFeatured  *bool
	IsDonation  *bool
}

// UpdateItem applies a partial update to an item. Updating a missing
// item returns ErrNotFound.
func UpdateItem(ctx context.Context, db *sql.DB, id string, patch ItemPatch) (*models.Item, error) {
	querySet := "updated_at = ?"
	queryArgs := []any{time.Now().UTC()}

	set := func(col string, val any) {
		querySet += ", " + col + " = ?"
		queryArgs = append(queryArgs, val)
	}

	if patch.Title != nil {
		set("title", *patch.Title)
		set("slug", slug.Make(*patch.Title))
	}
	if patch.Description != nil {
		set("description", *patch.Description)
	}
	if patch.Category != nil {
		set("category", *patch.Category)
	}
	if patch.Type != nil {
		set("type", *patch.Type)
	}
	if patch.Size != nil {
		set("size", *patch.Size)
	}
	if patch.Condition != nil {
		set("item_condition", *patch.Condition)
	}
	if patch.Color != nil {
		set("color", *patch.Color)
	}
	if patch.Brand != nil {
		set("brand", *patch.Brand)
	}
	if patch.Tags != nil {
		tagsJSON, _ := json.Marshal(*patch.Tags)
		set("tags", string(tagsJSON))
	}
	if patch.Images != nil {
		imagesJSON, _ := json.Marshal(*patch.Images)
		set("images", string(imagesJSON))
	}
	if patch.Status != nil {
		set("status", *patch.Status)
	}
	if patch.IsFeatured != nil {
		set("is_featured", *patch.IsFeatured)
	}
	if patch.IsDonation != nil {
		set("is_donation", *patch.IsDonation)
	}

	queryArgs = append(queryArgs, id)
	result, err := db.ExecContext(ctx, "UPDATE items SET "+querySet+" WHERE id = ?", queryArgs...)
	if err != nil {
		return nil, fmt.Errorf("updating item: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("updating item: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	return GetItem(ctx, db, id)
}

// DeleteItem removes an item. Deleting a missing item is a no-op.
func DeleteItem(ctx context.Context, db *sql.DB, id string) error {
	if _, err := db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	return nil
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*models.Item, error) {
	var item models.Item
	var tagsJSON, imagesJSON []byte

	err := row.Scan(
		&item.ID, &item.Title, &item.Slug, &item.Description, &item.Category,
		&item.Type, &item.Size, &item.Condition, &item.Color, &item.Brand,
		&tagsJSON, &imagesJSON, &item.PointsValue, &item.OwnerID, &item.Status,
		&item.IsFeatured, &item.IsDonation, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	item.Tags = []string{}
	if len(tagsJSON) > 0 {
		json.Unmarshal(tagsJSON, &item.Tags)
	}
	item.Images = []string{}
	if len(imagesJSON) > 0 {
		json.Unmarshal(imagesJSON, &item.Images)
	}
	return &item, nil
}

func scanItems(rows *sql.Rows) ([]models.Item, error) {
	var items []models.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning item row: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}
