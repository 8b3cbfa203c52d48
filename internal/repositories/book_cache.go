package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-reading-list/internal/logger"
	"github.com/sbilibin2017/gw-reading-list/internal/models"
)

// BookDetailCacheRepository provides cached book detail records using Redis.
// Search results are never cached here, only individual work records.
type BookDetailCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached records
}

// NewBookDetailCacheRepository creates a new repository instance with TTL.
func NewBookDetailCacheRepository(client *redis.Client, expiration time.Duration) *BookDetailCacheRepository {
	return &BookDetailCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetBookDetail fetches a cached book detail record by id.
func (r *BookDetailCacheRepository) GetBookDetail(ctx context.Context, bookID string) (*models.BookDetail, error) {
	key := fmt.Sprintf("book_detail:%s", bookID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow("book cache miss",
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("book detail not found in cache for %s", bookID)
		}
		return nil, err
	}

	var detail models.BookDetail
	if err := json.Unmarshal([]byte(val), &detail); err != nil {
		logger.Log.Infow("book cache decode failed",
			"key", key,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow("book cache hit",
		"key", key,
		"error", nil,
	)

	return &detail, nil
}

// SetBookDetail caches a book detail record in Redis with expiration.
func (r *BookDetailCacheRepository) SetBookDetail(ctx context.Context, bookID string, detail *models.BookDetail) error {
	key := fmt.Sprintf("book_detail:%s", bookID)

	data, err := json.Marshal(detail)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("book cache set",
		"key", key,
		"error", err,
	)

	return err
}
