package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-reading-list/internal/logger"
	"github.com/sbilibin2017/gw-reading-list/internal/models"
	"github.com/sbilibin2017/gw-reading-list/internal/repositories"
	"github.com/segmentio/kafka-go"
)

var (
	// ErrBookAlreadyInList is returned when a user adds the same book twice.
	ErrBookAlreadyInList = errors.New("book already in reading list")
	// ErrItemNotFound is returned when an entry is missing or owned by
	// another user; the two cases are indistinguishable.
	ErrItemNotFound = errors.New("item not found in reading list")
)

// ReadingListReader defines methods for reading a user's entries.
type ReadingListReader interface {
	ListByUserID(ctx context.Context, userID int64, skip, limit int) ([]models.ReadingListItemDB, error)
}

// ReadingListWriter defines methods for mutating a user's entries.
type ReadingListWriter interface {
	Save(ctx context.Context, userID int64, bookID, title, author string, coverID *int64, year *int) (*models.ReadingListItemDB, error)
	Delete(ctx context.Context, userID, itemID int64) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ReadingListService handles ownership-scoped reading list operations and
// Kafka publishing.
type ReadingListService struct {
	readRepo    ReadingListReader
	writeRepo   ReadingListWriter
	kafkaWriter KafkaWriter
}

// NewReadingListService creates a new ReadingListService.
func NewReadingListService(readRepo ReadingListReader, writeRepo ReadingListWriter, kafkaWriter KafkaWriter) *ReadingListService {
	return &ReadingListService{
		readRepo:    readRepo,
		writeRepo:   writeRepo,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a reading list mutation to Kafka, best-effort.
func (s *ReadingListService) publishEvent(ctx context.Context, userID int64, bookID, operation string) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "operation", operation)
		return
	}

	event := models.ReadingListEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    userID,
		BookID:    bookID,
		Operation: operation,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "event_id", event.EventID, "operation", operation)
	}
}

// List returns the user's entries in insertion order.
func (s *ReadingListService) List(ctx context.Context, userID int64, skip, limit int) ([]models.ReadingListItemDB, error) {
	items, err := s.readRepo.ListByUserID(ctx, userID, skip, limit)
	if err != nil {
		logger.Log.Errorw("failed to list reading list", "userID", userID, "error", err)
		return nil, err
	}
	return items, nil
}

// Add inserts a new entry for the user and publishes the mutation.
func (s *ReadingListService) Add(ctx context.Context, userID int64, bookID, title, author string, coverID *int64, year *int) (*models.ReadingListItemDB, error) {
	item, err := s.writeRepo.Save(ctx, userID, bookID, title, author, coverID, year)
	if err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			logger.Log.Errorw("book already in reading list", "userID", userID, "bookID", bookID)
			return nil, ErrBookAlreadyInList
		}
		logger.Log.Errorw("failed to save reading list entry", "userID", userID, "bookID", bookID, "error", err)
		return nil, err
	}

	s.publishEvent(ctx, userID, bookID, "add")

	return item, nil
}

// Remove deletes the user's entry with the given id and publishes the
// mutation. A non-owned id fails exactly like a missing one.
func (s *ReadingListService) Remove(ctx context.Context, userID, itemID int64) error {
	if err := s.writeRepo.Delete(ctx, userID, itemID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Log.Errorw("reading list entry not found", "userID", userID, "itemID", itemID)
			return ErrItemNotFound
		}
		logger.Log.Errorw("failed to delete reading list entry", "userID", userID, "itemID", itemID, "error", err)
		return err
	}

	s.publishEvent(ctx, userID, "", "remove")

	return nil
}
