package models

import "time"

// ReadingListItemDB represents a reading list entry owned by a user.
type ReadingListItemDB struct {
	ID        int64     `json:"id" db:"id"`                 // Primary key
	UserID    int64     `json:"user_id" db:"user_id"`       // Owning user
	BookID    string    `json:"book_id" db:"book_id"`       // Open Library work identifier
	Title     string    `json:"title" db:"title"`           // Title captured at add time
	Author    string    `json:"author" db:"author"`         // Author captured at add time
	CoverID   *int64    `json:"cover_id" db:"cover_id"`     // Optional cover image id
	Year      *int      `json:"year" db:"year"`             // Optional first publish year
	CreatedAt time.Time `json:"added_at" db:"created_at"`   // Creation timestamp
}
