package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/gw-reading-list/internal/logger"
	"github.com/sbilibin2017/gw-reading-list/internal/models"
)

// BookSearcher defines the interface that the books service must implement.
type BookSearcher interface {
	Search(ctx context.Context, query, searchType string, page, limit int) (*models.BookSearchResult, error)
}

// BookSearchErrorResponse represents an error response for book search
// swagger:model BookSearchErrorResponse
type BookSearchErrorResponse struct {
	// Error message
	// default: Query parameter is required
	Error string `json:"error"`
}

const (
	defaultSearchLimit = 10
	maxListLimit       = 100
)

// NewBookSearchHandler returns an HTTP handler for catalog search.
// @Summary Search books
// @Description Searches the external book catalog by title, author, isbn or full text. Serves static fallback data when the upstream is unavailable.
// @Tags books
// @Produce json
// @Param query query string true "Search query"
// @Param type query string false "Search type (title, author, isbn)" default(title)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Results per page" default(10)
// @Success 200 {object} models.BookSearchResult "Search results"
// @Failure 400 {object} handlers.BookSearchErrorResponse "Missing or invalid parameters"
// @Failure 401 {object} handlers.BookSearchErrorResponse "Unauthorized"
// @Router /books/search [get]
// @Security BearerAuth
func NewBookSearchHandler(svc BookSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		query := r.URL.Query().Get("query")
		if query == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(BookSearchErrorResponse{
				Error: "Query parameter is required",
			})
			return
		}

		searchType := r.URL.Query().Get("type")
		if searchType == "" {
			searchType = "title"
		}

		page, err := parsePositiveInt(r.URL.Query().Get("page"), 1)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(BookSearchErrorResponse{
				Error: "Invalid page parameter",
			})
			return
		}

		limit, err := parsePositiveInt(r.URL.Query().Get("limit"), defaultSearchLimit)
		if err != nil || limit > maxListLimit {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(BookSearchErrorResponse{
				Error: "Invalid limit parameter",
			})
			return
		}

		result, err := svc.Search(r.Context(), query, searchType, page, limit)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(BookSearchErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(result)
	}
}

// parsePositiveInt parses a query parameter that must be >= 1, returning
// the default when absent.
func parsePositiveInt(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, strconv.ErrSyntax
	}
	return v, nil
}
