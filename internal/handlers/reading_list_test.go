package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-reading-list/internal/middlewares"
	"github.com/sbilibin2017/gw-reading-list/internal/models"
	"github.com/sbilibin2017/gw-reading-list/internal/services"
	"github.com/stretchr/testify/assert"
)

func authedRequest(method, target string, body *bytes.Buffer, user *models.UserDB) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, body)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if user != nil {
		req = req.WithContext(middlewares.SetUserToContext(req.Context(), user))
	}
	return req
}

func TestReadingListGetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.UserDB{ID: 1, Username: "john_doe", IsActive: true}

	tests := []struct {
		name         string
		url          string
		user         *models.UserDB
		mockSetup    func(m *MockReadingLister)
		expectedCode int
		expectedLen  int
	}{
		{
			name: "returns entries with defaults",
			url:  "/reading-list",
			user: user,
			mockSetup: func(m *MockReadingLister) {
				m.EXPECT().
					List(gomock.Any(), int64(1), 0, 10).
					Return([]models.ReadingListItemDB{
						{ID: 1, UserID: 1, BookID: "OL6789012W", Title: "Harry Potter and the Sorcerer's Stone"},
						{ID: 2, UserID: 1, BookID: "OL3344556W", Title: "The Adventures of Sherlock Holmes"},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name: "empty list",
			url:  "/reading-list?skip=5&limit=20",
			user: user,
			mockSetup: func(m *MockReadingLister) {
				m.EXPECT().
					List(gomock.Any(), int64(1), 5, 20).
					Return([]models.ReadingListItemDB{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  0,
		},
		{
			name:         "unauthorized without user",
			url:          "/reading-list",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "negative skip",
			url:          "/reading-list?skip=-1",
			user:         user,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "limit above cap",
			url:          "/reading-list?limit=101",
			user:         user,
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "internal server error",
			url:  "/reading-list",
			user: user,
			mockSetup: func(m *MockReadingLister) {
				m.EXPECT().
					List(gomock.Any(), int64(1), 0, 10).
					Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockReadingLister(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewReadingListGetHandler(mockSvc)

			req := authedRequest(http.MethodGet, tt.url, nil, tt.user)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusOK {
				var items []models.ReadingListItemDB
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &items))
				assert.Len(t, items, tt.expectedLen)
			}
		})
	}
}

func TestReadingListAddHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.UserDB{ID: 1, Username: "john_doe", IsActive: true}
	coverID := int64(10521270)
	year := 1997

	tests := []struct {
		name          string
		reqBody       ReadingListAddRequest
		rawBody       string
		user          *models.UserDB
		mockSetup     func(m *MockReadingListAdder)
		expectedCode  int
		expectedError string
	}{
		{
			name: "success",
			reqBody: ReadingListAddRequest{
				BookID:  "OL6789012W",
				Title:   "Harry Potter and the Sorcerer's Stone",
				Author:  "J.K. Rowling",
				CoverID: &coverID,
				Year:    &year,
			},
			user: user,
			mockSetup: func(m *MockReadingListAdder) {
				m.EXPECT().
					Add(gomock.Any(), int64(1), "OL6789012W", "Harry Potter and the Sorcerer's Stone", "J.K. Rowling", &coverID, &year).
					Return(&models.ReadingListItemDB{
						ID:      1,
						UserID:  1,
						BookID:  "OL6789012W",
						Title:   "Harry Potter and the Sorcerer's Stone",
						Author:  "J.K. Rowling",
						CoverID: &coverID,
						Year:    &year,
					}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:    "book already in list",
			reqBody: ReadingListAddRequest{BookID: "OL6789012W", Title: "Harry Potter and the Sorcerer's Stone"},
			user:    user,
			mockSetup: func(m *MockReadingListAdder) {
				m.EXPECT().
					Add(gomock.Any(), int64(1), "OL6789012W", "Harry Potter and the Sorcerer's Stone", "", gomock.Nil(), gomock.Nil()).
					Return(nil, services.ErrBookAlreadyInList)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Book already in reading list",
		},
		{
			name:          "unauthorized without user",
			reqBody:       ReadingListAddRequest{BookID: "OL6789012W", Title: "x"},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Unauthorized",
		},
		{
			name:          "invalid json",
			rawBody:       "{invalid json}",
			user:          user,
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "missing book id",
			reqBody:       ReadingListAddRequest{Title: "x"},
			user:          user,
			expectedCode:  http.StatusBadRequest,
			expectedError: "book_id and title are required",
		},
		{
			name:    "internal server error",
			reqBody: ReadingListAddRequest{BookID: "OL6789012W", Title: "x"},
			user:    user,
			mockSetup: func(m *MockReadingListAdder) {
				m.EXPECT().
					Add(gomock.Any(), int64(1), "OL6789012W", "x", "", gomock.Nil(), gomock.Nil()).
					Return(nil, errors.New("db error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockReadingListAdder(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewReadingListAddHandler(mockSvc)

			var body *bytes.Buffer
			if tt.rawBody != "" {
				body = bytes.NewBufferString(tt.rawBody)
			} else {
				bodyBytes, _ := json.Marshal(tt.reqBody)
				body = bytes.NewBuffer(bodyBytes)
			}

			req := authedRequest(http.MethodPost, "/reading-list", body, tt.user)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusCreated {
				var item models.ReadingListItemDB
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &item))
				assert.Equal(t, tt.reqBody.BookID, item.BookID)
			} else if tt.expectedError != "" {
				var resp ReadingListErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			}
		})
	}
}

func TestReadingListRemoveHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.UserDB{ID: 1, Username: "john_doe", IsActive: true}

	tests := []struct {
		name         string
		itemID       string
		user         *models.UserDB
		mockSetup    func(m *MockReadingListRemover)
		expectedCode int
	}{
		{
			name:   "success",
			itemID: "5",
			user:   user,
			mockSetup: func(m *MockReadingListRemover) {
				m.EXPECT().
					Remove(gomock.Any(), int64(1), int64(5)).
					Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:   "item not found",
			itemID: "99",
			user:   user,
			mockSetup: func(m *MockReadingListRemover) {
				m.EXPECT().
					Remove(gomock.Any(), int64(1), int64(99)).
					Return(services.ErrItemNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "unauthorized without user",
			itemID:       "5",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "invalid id",
			itemID:       "abc",
			user:         user,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "internal server error",
			itemID: "5",
			user:   user,
			mockSetup: func(m *MockReadingListRemover) {
				m.EXPECT().
					Remove(gomock.Any(), int64(1), int64(5)).
					Return(errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockReadingListRemover(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewReadingListRemoveHandler(mockSvc)

			req := authedRequest(http.MethodDelete, "/reading-list/"+tt.itemID, nil, tt.user)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.itemID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
