package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/recall/internal/db"
	"github.com/alexanderramin/recall/internal/domain"
	"github.com/google/uuid"
)

// SQLiteItemRepo implements ItemRepo using a SQLite database.
type SQLiteItemRepo struct {
	db db.DBTX
}

// NewSQLiteItemRepo binds the repo to a pool or to an open transaction.
func NewSQLiteItemRepo(conn db.DBTX) *SQLiteItemRepo {
	return &SQLiteItemRepo{db: conn}
}

const itemColumns = `id, user_id, topic, date, batch_id`

func (r *SQLiteItemRepo) AddBatch(ctx context.Context, userID, batchID string, items []domain.Item) ([]domain.StoredItem, error) {
	query := `INSERT INTO revision_items (id, user_id, topic, date, batch_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	createdAt := nowUTC()

	stored := make([]domain.StoredItem, 0, len(items))
	for _, it := range items {
		if it.Date.IsZero() {
			return nil, fmt.Errorf("inserting revision item %q: %w", it.Topic, domain.ErrInvalidDateFormat)
		}
		s := domain.StoredItem{
			Item:    it,
			ID:      uuid.New().String(),
			UserID:  userID,
			BatchID: batchID,
		}
		_, err := r.db.ExecContext(ctx, query,
			s.ID,
			s.UserID,
			s.Topic,
			s.Date.String(),
			s.BatchID,
			createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("inserting revision item: %w", err)
		}
		stored = append(stored, s)
	}
	return stored, nil
}

func (r *SQLiteItemRepo) ListByUser(ctx context.Context, userID string) ([]domain.StoredItem, error) {
	query := `SELECT ` + itemColumns + ` FROM revision_items WHERE user_id = ? ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing items by user: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *SQLiteItemRepo) ListBatch(ctx context.Context, batchID string) ([]domain.StoredItem, error) {
	query := `SELECT ` + itemColumns + ` FROM revision_items WHERE batch_id = ? ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query, batchID)
	if err != nil {
		return nil, fmt.Errorf("listing items by batch: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *SQLiteItemRepo) ListUsers(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT user_id FROM revision_items ORDER BY user_id`)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	var users []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning user id: %w", err)
		}
		users = append(users, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating users: %w", err)
	}
	return users, nil
}

func (r *SQLiteItemRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM revision_items WHERE user_id = ?`, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting items: %w", err)
	}
	return n, nil
}

// scanItems scans item rows. A stored date that no longer parses is an
// error rather than a silently dropped row.
func scanItems(rows *sql.Rows) ([]domain.StoredItem, error) {
	items := []domain.StoredItem{}
	for rows.Next() {
		var s domain.StoredItem
		var dateStr string
		if err := rows.Scan(&s.ID, &s.UserID, &s.Topic, &dateStr, &s.BatchID); err != nil {
			return nil, fmt.Errorf("scanning item row: %w", err)
		}
		d, err := domain.ParseDate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("revision item %s: %w", s.ID, err)
		}
		s.Date = d
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating items: %w", err)
	}
	return items, nil
}
