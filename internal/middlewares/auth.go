package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-reading-list/internal/jwt"
	"github.com/sbilibin2017/gw-reading-list/internal/logger"
	"github.com/sbilibin2017/gw-reading-list/internal/models"
)

// Tokener defines the minimal token operations needed by the middleware.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// UserGetter resolves a token subject to a user record.
type UserGetter interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

type authErrorResponse struct {
	Error string `json:"error"`
}

// userKey is an unexported type for the current-user context key.
type userKey struct{}

// SetUserToContext stores the authenticated user in the context.
func SetUserToContext(ctx context.Context, user *models.UserDB) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// GetUserFromContext retrieves the authenticated user from the context.
// Returns nil if the request did not pass AuthMiddleware.
func GetUserFromContext(ctx context.Context) *models.UserDB {
	user, _ := ctx.Value(userKey{}).(*models.UserDB)
	return user
}

// AuthMiddleware returns a middleware that resolves the bearer token to an
// active user on every protected request. It is the single authorization
// chokepoint: missing/invalid/expired tokens and unknown users get 401,
// deactivated accounts get 400.
func AuthMiddleware(tokener Tokener, users UserGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			w.Header().Set("Content-Type", "application/json")

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(authErrorResponse{Error: "Unauthorized"})
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(authErrorResponse{Error: "Unauthorized"})
				return
			}

			user, err := users.GetByID(ctx, claims.UserID)
			if err != nil {
				logger.Log.Errorw("failed to load user for token", "userID", claims.UserID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(authErrorResponse{Error: "Internal server error"})
				return
			}
			if user == nil {
				logger.Log.Errorw("token references missing user", "userID", claims.UserID)
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(authErrorResponse{Error: "Unauthorized"})
				return
			}

			if !user.IsActive {
				logger.Log.Errorw("inactive user rejected", "userID", user.ID)
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(authErrorResponse{Error: "Inactive user"})
				return
			}

			next.ServeHTTP(w, r.WithContext(SetUserToContext(ctx, user)))
		})
	}
}
