package services_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-reading-list/internal/models"
	"github.com/sbilibin2017/gw-reading-list/internal/repositories"
	"github.com/sbilibin2017/gw-reading-list/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestReadingListService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockReadingListReader(ctrl)
	mockWriter := services.NewMockReadingListWriter(ctrl)

	svc := services.NewReadingListService(mockReader, mockWriter, nil)

	tests := []struct {
		name      string
		userID    int64
		skip      int
		limit     int
		items     []models.ReadingListItemDB
		readerErr error
		wantErr   error
	}{
		{
			name:   "returns entries",
			userID: 1,
			skip:   0,
			limit:  10,
			items: []models.ReadingListItemDB{
				{ID: 1, UserID: 1, BookID: "OL6789012W", Title: "Harry Potter and the Sorcerer's Stone"},
				{ID: 2, UserID: 1, BookID: "OL3344556W", Title: "The Adventures of Sherlock Holmes"},
			},
		},
		{
			name:   "empty list",
			userID: 2,
			skip:   0,
			limit:  10,
			items:  []models.ReadingListItemDB{},
		},
		{
			name:      "repository error",
			userID:    3,
			skip:      0,
			limit:     10,
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				ListByUserID(gomock.Any(), tt.userID, tt.skip, tt.limit).
				Return(tt.items, tt.readerErr)

			items, err := svc.List(context.Background(), tt.userID, tt.skip, tt.limit)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, items)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.items, items)
			}
		})
	}
}

func TestReadingListService_Add(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockReadingListReader(ctrl)
	mockWriter := services.NewMockReadingListWriter(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	svc := services.NewReadingListService(mockReader, mockWriter, mockKafka)

	coverID := int64(10521270)
	year := 1997

	tests := []struct {
		name      string
		userID    int64
		bookID    string
		item      *models.ReadingListItemDB
		writerErr error
		wantErr   error
		published bool
	}{
		{
			name:   "successful add",
			userID: 1,
			bookID: "OL6789012W",
			item: &models.ReadingListItemDB{
				ID:      1,
				UserID:  1,
				BookID:  "OL6789012W",
				Title:   "Harry Potter and the Sorcerer's Stone",
				Author:  "J.K. Rowling",
				CoverID: &coverID,
				Year:    &year,
			},
			published: true,
		},
		{
			name:      "duplicate entry",
			userID:    1,
			bookID:    "OL6789012W",
			writerErr: repositories.ErrUniqueViolation,
			wantErr:   services.ErrBookAlreadyInList,
		},
		{
			name:      "repository error",
			userID:    2,
			bookID:    "OL3344556W",
			writerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWriter.EXPECT().
				Save(gomock.Any(), tt.userID, tt.bookID, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(tt.item, tt.writerErr)

			if tt.published {
				mockKafka.EXPECT().
					WriteMessages(gomock.Any(), gomock.Any()).
					Return(nil)
			}

			item, err := svc.Add(context.Background(), tt.userID, tt.bookID, "title", "author", &coverID, &year)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, item)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.item, item)
			}
		})
	}
}

func TestReadingListService_AddWithoutKafka(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockReadingListReader(ctrl)
	mockWriter := services.NewMockReadingListWriter(ctrl)

	svc := services.NewReadingListService(mockReader, mockWriter, nil)

	mockWriter.EXPECT().
		Save(gomock.Any(), int64(1), "OL6789012W", "title", "author", gomock.Nil(), gomock.Nil()).
		Return(&models.ReadingListItemDB{ID: 1, UserID: 1, BookID: "OL6789012W"}, nil)

	item, err := svc.Add(context.Background(), 1, "OL6789012W", "title", "author", nil, nil)
	assert.NoError(t, err)
	assert.NotNil(t, item)
}

func TestReadingListService_AddKafkaFailureDoesNotFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockReadingListReader(ctrl)
	mockWriter := services.NewMockReadingListWriter(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	svc := services.NewReadingListService(mockReader, mockWriter, mockKafka)

	mockWriter.EXPECT().
		Save(gomock.Any(), int64(1), "OL6789012W", "title", "author", gomock.Nil(), gomock.Nil()).
		Return(&models.ReadingListItemDB{ID: 1, UserID: 1, BookID: "OL6789012W"}, nil)
	mockKafka.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		Return(errors.New("broker unavailable"))

	item, err := svc.Add(context.Background(), 1, "OL6789012W", "title", "author", nil, nil)
	assert.NoError(t, err)
	assert.NotNil(t, item)
}

func TestReadingListService_Remove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockReadingListReader(ctrl)
	mockWriter := services.NewMockReadingListWriter(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	svc := services.NewReadingListService(mockReader, mockWriter, mockKafka)

	tests := []struct {
		name      string
		userID    int64
		itemID    int64
		deleteErr error
		wantErr   error
		published bool
	}{
		{
			name:      "successful remove",
			userID:    1,
			itemID:    5,
			published: true,
		},
		{
			name:      "entry not found",
			userID:    1,
			itemID:    99,
			deleteErr: sql.ErrNoRows,
			wantErr:   services.ErrItemNotFound,
		},
		{
			name:      "entry owned by another user",
			userID:    2,
			itemID:    5,
			deleteErr: sql.ErrNoRows,
			wantErr:   services.ErrItemNotFound,
		},
		{
			name:      "repository error",
			userID:    3,
			itemID:    7,
			deleteErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWriter.EXPECT().
				Delete(gomock.Any(), tt.userID, tt.itemID).
				Return(tt.deleteErr)

			if tt.published {
				mockKafka.EXPECT().
					WriteMessages(gomock.Any(), gomock.Any()).
					Return(nil)
			}

			err := svc.Remove(context.Background(), tt.userID, tt.itemID)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
