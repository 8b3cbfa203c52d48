package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-reading-list/internal/logger"
	"github.com/sbilibin2017/gw-reading-list/internal/models"
	"github.com/sbilibin2017/gw-reading-list/internal/services"
)

// BookDetailsGetter defines the interface that the books service must implement.
type BookDetailsGetter interface {
	GetDetails(ctx context.Context, bookID string) (*models.BookDetail, error)
}

// BookDetailsErrorResponse represents an error response for book details
// swagger:model BookDetailsErrorResponse
type BookDetailsErrorResponse struct {
	// Error message
	// default: Book not found
	Error string `json:"error"`
}

// NewBookDetailsHandler returns an HTTP handler for a single catalog work.
// @Summary Get book details
// @Description Fetches a normalized work record from the external catalog. Serves a placeholder when the upstream is unavailable.
// @Tags books
// @Produce json
// @Param id path string true "Book id"
// @Success 200 {object} models.BookDetail "Book detail"
// @Failure 401 {object} handlers.BookDetailsErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.BookDetailsErrorResponse "Book not found"
// @Router /books/{id} [get]
// @Security BearerAuth
func NewBookDetailsHandler(svc BookDetailsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		bookID := chi.URLParam(r, "id")
		if bookID == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(BookDetailsErrorResponse{
				Error: "Book id is required",
			})
			return
		}

		detail, err := svc.GetDetails(r.Context(), bookID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrBookNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(BookDetailsErrorResponse{
					Error: "Book not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(BookDetailsErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(detail)
	}
}
