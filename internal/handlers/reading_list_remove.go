package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-reading-list/internal/logger"
	"github.com/sbilibin2017/gw-reading-list/internal/middlewares"
	"github.com/sbilibin2017/gw-reading-list/internal/services"
)

// ReadingListRemover defines the interface that the reading list service must implement.
type ReadingListRemover interface {
	Remove(ctx context.Context, userID, itemID int64) error
}

// NewReadingListRemoveHandler returns an HTTP handler for removing an entry
// from the authenticated user's reading list.
// @Summary Remove book from reading list
// @Description Deletes the caller's reading list entry. An entry owned by another user is reported as not found.
// @Tags reading-list
// @Produce json
// @Param id path int true "Entry id"
// @Success 204 "Entry removed"
// @Failure 401 {object} handlers.ReadingListErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ReadingListErrorResponse "Entry not found"
// @Router /reading-list/{id} [delete]
// @Security BearerAuth
func NewReadingListRemoveHandler(svc ReadingListRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ReadingListErrorResponse{Error: "Unauthorized"})
			return
		}

		itemID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ReadingListErrorResponse{Error: "Invalid entry id"})
			return
		}

		if err := svc.Remove(r.Context(), user.ID, itemID); err != nil {
			w.Header().Set("Content-Type", "application/json")
			switch {
			case errors.Is(err, services.ErrItemNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ReadingListErrorResponse{Error: "Item not found in reading list"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ReadingListErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
