package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/gw-reading-list/internal/logger"
	"github.com/sbilibin2017/gw-reading-list/internal/middlewares"
	"github.com/sbilibin2017/gw-reading-list/internal/models"
)

// ReadingLister defines the interface that the reading list service must implement.
type ReadingLister interface {
	List(ctx context.Context, userID int64, skip, limit int) ([]models.ReadingListItemDB, error)
}

// ReadingListErrorResponse represents an error response for reading list endpoints
// swagger:model ReadingListErrorResponse
type ReadingListErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewReadingListGetHandler returns an HTTP handler for listing the
// authenticated user's reading list.
// @Summary Get reading list
// @Description Returns the caller's reading list entries in insertion order.
// @Tags reading-list
// @Produce json
// @Param skip query int false "Entries to skip" default(0)
// @Param limit query int false "Maximum entries to return" default(10)
// @Success 200 {array} models.ReadingListItemDB "Reading list entries"
// @Failure 401 {object} handlers.ReadingListErrorResponse "Unauthorized"
// @Router /reading-list [get]
// @Security BearerAuth
func NewReadingListGetHandler(svc ReadingLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ReadingListErrorResponse{Error: "Unauthorized"})
			return
		}

		skip := 0
		if raw := r.URL.Query().Get("skip"); raw != "" {
			v, err := strconv.Atoi(raw)
			if err != nil || v < 0 {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ReadingListErrorResponse{Error: "Invalid skip parameter"})
				return
			}
			skip = v
		}

		limit, err := parsePositiveInt(r.URL.Query().Get("limit"), defaultSearchLimit)
		if err != nil || limit > maxListLimit {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ReadingListErrorResponse{Error: "Invalid limit parameter"})
			return
		}

		items, err := svc.List(r.Context(), user.ID, skip, limit)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ReadingListErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(items)
	}
}
