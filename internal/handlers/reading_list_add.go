package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-reading-list/internal/logger"
	"github.com/sbilibin2017/gw-reading-list/internal/middlewares"
	"github.com/sbilibin2017/gw-reading-list/internal/models"
	"github.com/sbilibin2017/gw-reading-list/internal/services"
)

// ReadingListAdder defines the interface that the reading list service must implement.
type ReadingListAdder interface {
	Add(ctx context.Context, userID int64, bookID, title, author string, coverID *int64, year *int) (*models.ReadingListItemDB, error)
}

// ReadingListAddRequest represents the JSON body for adding a book
// swagger:model ReadingListAddRequest
type ReadingListAddRequest struct {
	// External book id
	// required: true
	// default: OL6789012W
	BookID string `json:"book_id" validate:"required"`

	// Title captured at add time
	// required: true
	// default: Harry Potter and the Sorcerer's Stone
	Title string `json:"title" validate:"required"`

	// Author captured at add time
	// default: J.K. Rowling
	Author string `json:"author"`

	// Optional cover image id
	CoverID *int64 `json:"cover_id"`

	// Optional first publish year
	Year *int `json:"year"`
}

// NewReadingListAddHandler returns an HTTP handler for adding a book to the
// authenticated user's reading list.
// @Summary Add book to reading list
// @Description Adds a catalog book to the caller's reading list. Each book can be added at most once per user.
// @Tags reading-list
// @Accept json
// @Produce json
// @Param addRequest body handlers.ReadingListAddRequest true "Book to add"
// @Success 201 {object} models.ReadingListItemDB "Created entry"
// @Failure 400 {object} handlers.ReadingListErrorResponse "Book already in reading list / invalid request"
// @Failure 401 {object} handlers.ReadingListErrorResponse "Unauthorized"
// @Router /reading-list [post]
// @Security BearerAuth
func NewReadingListAddHandler(svc ReadingListAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ReadingListErrorResponse{Error: "Unauthorized"})
			return
		}

		var req ReadingListAddRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ReadingListErrorResponse{Error: "Invalid request body"})
			return
		}

		if err := validate.Struct(req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ReadingListErrorResponse{Error: "book_id and title are required"})
			return
		}

		item, err := svc.Add(r.Context(), user.ID, req.BookID, req.Title, req.Author, req.CoverID, req.Year)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrBookAlreadyInList):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ReadingListErrorResponse{Error: "Book already in reading list"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ReadingListErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(item)
	}
}
