package facades

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/sbilibin2017/gw-reading-list/internal/logger"
	"github.com/sbilibin2017/gw-reading-list/internal/models"
)

// Errors returned by the facade.
var (
	// ErrBookNotFound is returned when the upstream reports 404 for a work.
	ErrBookNotFound = errors.New("book not found")
	// ErrUpstreamUnavailable is returned for network failures, timeouts and
	// non-2xx upstream responses other than 404.
	ErrUpstreamUnavailable = errors.New("catalog upstream unavailable")
)

// searchFields is the projection requested from the upstream search API.
const searchFields = "key,title,author_name,first_publish_year,cover_i,isbn"

// OpenLibraryFacade implements catalog search and work lookup over the
// Open Library REST API. Every call is a single attempt bounded by the
// injected client's timeout.
type OpenLibraryFacade struct {
	client    *http.Client
	searchURL string // e.g. https://openlibrary.org/search.json
	workURL   string // e.g. https://openlibrary.org/works/%s.json
}

// NewOpenLibraryFacade creates a new facade with an HTTP client and endpoint URLs.
func NewOpenLibraryFacade(client *http.Client, searchURL, workURL string) *OpenLibraryFacade {
	return &OpenLibraryFacade{
		client:    client,
		searchURL: searchURL,
		workURL:   workURL,
	}
}

type searchResponse struct {
	NumFound int              `json:"numFound"`
	Docs     []models.BookDoc `json:"docs"`
}

// Search queries the upstream search endpoint with the given field
// ("title", "author", "isbn" or "q"), limit and offset, and returns the
// upstream total and documents verbatim.
func (f *OpenLibraryFacade) Search(ctx context.Context, field, query string, limit, offset int) (int, []models.BookDoc, error) {
	params := url.Values{}
	params.Set(field, query)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", strconv.Itoa(offset))
	params.Set("fields", searchFields)
	params.Set("mode", "everything")

	reqURL := f.searchURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("catalog search request failed", "url", reqURL, "error", err)
		return 0, nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Log.Errorw("catalog search returned non-2xx", "url", reqURL, "status", resp.StatusCode)
		return 0, nil, fmt.Errorf("%w: status %d", ErrUpstreamUnavailable, resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		logger.Log.Errorw("catalog search response malformed", "url", reqURL, "error", err)
		return 0, nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	logger.Log.Infow("catalog search",
		"field", field,
		"query", query,
		"numFound", body.NumFound,
	)

	return body.NumFound, body.Docs, nil
}

// textOrObject accepts both upstream description shapes: a bare string or
// an object with a nested "value" field.
type textOrObject struct {
	Value string
}

func (t *textOrObject) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		t.Value = s
		return nil
	}

	var obj struct {
		Value string `json:"value"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	t.Value = obj.Value
	return nil
}

type workResponse struct {
	Title        string       `json:"title"`
	Description  textOrObject `json:"description"`
	Subjects     []string     `json:"subjects"`
	Created      textOrObject `json:"created"`
	LastModified textOrObject `json:"last_modified"`
	Covers       []int64      `json:"covers"`
	Authors      []struct {
		Author struct {
			Key string `json:"key"`
		} `json:"author"`
	} `json:"authors"`
}

// GetWork fetches a work record by its clean id (no "/works/" prefix) and
// normalizes it into a BookDetail.
func (f *OpenLibraryFacade) GetWork(ctx context.Context, bookID string) (*models.BookDetail, error) {
	reqURL := fmt.Sprintf(f.workURL, bookID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("catalog work request failed", "url", reqURL, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrBookNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Log.Errorw("catalog work returned non-2xx", "url", reqURL, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", ErrUpstreamUnavailable, resp.StatusCode)
	}

	var body workResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		logger.Log.Errorw("catalog work response malformed", "url", reqURL, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	detail := &models.BookDetail{
		ID:           bookID,
		Title:        body.Title,
		Description:  body.Description.Value,
		Subjects:     body.Subjects,
		Created:      body.Created.Value,
		LastModified: body.LastModified.Value,
		Authors:      make([]models.BookAuthor, 0, len(body.Authors)),
	}
	if detail.Title == "" {
		detail.Title = "Unknown Title"
	}
	if len(body.Covers) > 0 {
		detail.CoverID = &body.Covers[0]
	}
	for _, a := range body.Authors {
		if a.Author.Key == "" {
			continue
		}
		parts := strings.Split(a.Author.Key, "/")
		detail.Authors = append(detail.Authors, models.BookAuthor{Name: parts[len(parts)-1]})
	}

	return detail, nil
}
