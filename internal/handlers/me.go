package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-reading-list/internal/middlewares"
)

// MeErrorResponse represents an error response for the profile endpoint
// swagger:model MeErrorResponse
type MeErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewMeHandler returns an HTTP handler for the current user's profile.
// @Summary Get current user profile
// @Description Returns the authenticated user's profile. The password hash is never included.
// @Tags users
// @Produce json
// @Success 200 {object} handlers.UserResponse "User profile"
// @Failure 401 {object} handlers.MeErrorResponse "Unauthorized"
// @Router /users/me [get]
// @Security BearerAuth
func NewMeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(MeErrorResponse{Error: "Unauthorized"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(newUserResponse(user))
	}
}
