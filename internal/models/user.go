package models

import "time"

// UserDB represents a user record in the database.
type UserDB struct {
	ID           int64     `json:"id" db:"id"`                         // Primary key
	Username     string    `json:"username" db:"username"`             // Unique username
	Email        string    `json:"email" db:"email"`                   // Unique email
	PasswordHash string    `json:"-" db:"password_hash"`               // Bcrypt hash, never serialized
	IsActive     bool      `json:"is_active" db:"is_active"`           // Deactivated accounts keep their rows
	CreatedAt    time.Time `json:"created_at" db:"created_at"`         // Creation timestamp (UTC)
}
