package repositories

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-reading-list/internal/logger"
	"github.com/sbilibin2017/gw-reading-list/internal/models"
)

// ReadingListReadRepository handles reading list lookups.
type ReadingListReadRepository struct {
	db *sqlx.DB
}

func NewReadingListReadRepository(db *sqlx.DB) *ReadingListReadRepository {
	return &ReadingListReadRepository{db: db}
}

// ListByUserID returns the user's entries in insertion order, paginated by
// offset/limit.
func (r *ReadingListReadRepository) ListByUserID(ctx context.Context, userID int64, skip, limit int) ([]models.ReadingListItemDB, error) {
	const query = `
		SELECT id, user_id, book_id, title, author, cover_id, year, created_at
		FROM reading_list_items
		WHERE user_id = $1
		ORDER BY id
		OFFSET $2 LIMIT $3
	`

	items := make([]models.ReadingListItemDB, 0)
	err := r.db.SelectContext(ctx, &items, query, userID, skip, limit)

	// Log with query in single line
	logger.Log.Infow("reading list query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, skip, limit},
		"count", len(items),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return items, nil
}

// ReadingListWriteRepository handles reading list mutations.
type ReadingListWriteRepository struct {
	db *sqlx.DB
}

func NewReadingListWriteRepository(db *sqlx.DB) *ReadingListWriteRepository {
	return &ReadingListWriteRepository{db: db}
}

// Save inserts a new entry and returns the stored row.
// Returns ErrUniqueViolation when the user already has this book.
func (r *ReadingListWriteRepository) Save(ctx context.Context, userID int64, bookID, title, author string, coverID *int64, year *int) (*models.ReadingListItemDB, error) {
	const query = `
		INSERT INTO reading_list_items (user_id, book_id, title, author, cover_id, year, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, user_id, book_id, title, author, cover_id, year, created_at
	`
	args := []any{userID, bookID, title, author, coverID, year}

	var item models.ReadingListItemDB
	err := r.db.GetContext(ctx, &item, query, args...)

	// Log with query in single line
	logger.Log.Infow("reading list insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if isUniqueViolation(err) {
		return nil, ErrUniqueViolation
	}
	if err != nil {
		return nil, err
	}

	return &item, nil
}

// Delete removes the entry with the given id if it is owned by userID.
// Returns sql.ErrNoRows when no such owned entry exists, which keeps a
// non-owned id indistinguishable from a missing one.
func (r *ReadingListWriteRepository) Delete(ctx context.Context, userID, itemID int64) error {
	const query = `
		DELETE FROM reading_list_items
		WHERE id = $1 AND user_id = $2
	`

	res, err := r.db.ExecContext(ctx, query, itemID, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log with query in single line
	logger.Log.Infow("reading list delete",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{itemID, userID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
