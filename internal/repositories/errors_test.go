package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "unique violation code",
			err:  &pgconn.PgError{Code: "23505"},
			want: true,
		},
		{
			name: "wrapped unique violation",
			err:  errors.Join(errors.New("insert failed"), &pgconn.PgError{Code: "23505"}),
			want: true,
		},
		{
			name: "other pg error",
			err:  &pgconn.PgError{Code: "23503"},
			want: false,
		},
		{
			name: "plain error",
			err:  errors.New("boom"),
			want: false,
		},
		{
			name: "nil",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueViolation(tt.err))
		})
	}
}

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	assert.NoError(t, err)
	return sqlx.NewDb(mockDB, "pgx"), mock
}

func TestUserReadRepository_QueryError(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, username, email").
		WillReturnError(errors.New("connection reset"))

	repo := NewUserReadRepository(db)
	user, err := repo.GetByUsername(context.Background(), "alice")
	assert.EqualError(t, err, "connection reset")
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReadingListReadRepository_QueryError(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, user_id, book_id").
		WillReturnError(errors.New("connection reset"))

	repo := NewReadingListReadRepository(db)
	items, err := repo.ListByUserID(context.Background(), 1, 0, 10)
	assert.EqualError(t, err, "connection reset")
	assert.Nil(t, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReadingListWriteRepository_DeleteError(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM reading_list_items").
		WillReturnError(errors.New("connection reset"))

	repo := NewReadingListWriteRepository(db)
	err := repo.Delete(context.Background(), 1, 5)
	assert.EqualError(t, err, "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}
