package handlers

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sbilibin2017/gw-reading-list/internal/models"
)

// validate is the shared request validator.
var validate = validator.New()

// UserResponse represents a user profile in API responses
// swagger:model UserResponse
type UserResponse struct {
	// User id
	// default: 1
	ID int64 `json:"id"`

	// Username
	// default: john_doe
	Username string `json:"username"`

	// Email
	// default: john@example.com
	Email string `json:"email"`

	// Active flag
	// default: true
	IsActive bool `json:"is_active"`

	// Creation timestamp
	CreatedAt time.Time `json:"created_at"`
}

func newUserResponse(user *models.UserDB) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
}
