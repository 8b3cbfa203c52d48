package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sbilibin2017/gw-reading-list/internal/middlewares"
	"github.com/sbilibin2017/gw-reading-list/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestMeHandler(t *testing.T) {
	handler := NewMeHandler()

	t.Run("returns profile without password hash", func(t *testing.T) {
		user := &models.UserDB{
			ID:           1,
			Username:     "john_doe",
			Email:        "john@example.com",
			PasswordHash: "$2a$10$secret",
			IsActive:     true,
			CreatedAt:    time.Now(),
		}

		req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
		req = req.WithContext(middlewares.SetUserToContext(req.Context(), user))
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp UserResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, user.ID, resp.ID)
		assert.Equal(t, user.Username, resp.Username)
		assert.Equal(t, user.Email, resp.Email)
		assert.True(t, resp.IsActive)
		assert.NotContains(t, rr.Body.String(), user.PasswordHash)
	})

	t.Run("unauthorized without user in context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
