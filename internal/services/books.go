package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sbilibin2017/gw-reading-list/internal/facades"
	"github.com/sbilibin2017/gw-reading-list/internal/logger"
	"github.com/sbilibin2017/gw-reading-list/internal/models"
)

// ErrBookNotFound is returned when the catalog definitively reports that a
// work does not exist.
var ErrBookNotFound = errors.New("book not found")

// CatalogSearcher fetches search results from the catalog upstream.
type CatalogSearcher interface {
	Search(ctx context.Context, field, query string, limit, offset int) (int, []models.BookDoc, error)
}

// WorkGetter fetches a single work record from the catalog upstream.
type WorkGetter interface {
	GetWork(ctx context.Context, bookID string) (*models.BookDetail, error)
}

// BookDetailCache caches book detail records.
type BookDetailCache interface {
	GetBookDetail(ctx context.Context, bookID string) (*models.BookDetail, error)
	SetBookDetail(ctx context.Context, bookID string, detail *models.BookDetail) error
}

// FallbackCatalog serves static sample data for degraded responses.
type FallbackCatalog interface {
	Search(query, searchType string, page, limit int) (int, []models.BookDoc)
	Detail(bookID string) *models.BookDetail
}

// BooksService proxies catalog search and detail lookups. On upstream
// failure it degrades to the fallback catalog rather than surfacing an
// error; the policy is uniform across search and details.
type BooksService struct {
	searcher CatalogSearcher
	getter   WorkGetter
	cache    BookDetailCache
	fallback FallbackCatalog
}

// NewBooksService creates a new BooksService.
func NewBooksService(searcher CatalogSearcher, getter WorkGetter, cache BookDetailCache, fallback FallbackCatalog) *BooksService {
	return &BooksService{
		searcher: searcher,
		getter:   getter,
		cache:    cache,
		fallback: fallback,
	}
}

// searchField maps the public search type to the upstream query field.
// Anything other than title/author/isbn selects full-text search.
func searchField(searchType string) string {
	switch searchType {
	case "title", "author", "isbn":
		return searchType
	default:
		return "q"
	}
}

// Search queries the catalog with offset = (page-1)*limit.
func (s *BooksService) Search(ctx context.Context, query, searchType string, page, limit int) (*models.BookSearchResult, error) {
	offset := (page - 1) * limit

	numFound, docs, err := s.searcher.Search(ctx, searchField(searchType), query, limit, offset)
	if err != nil {
		logger.Log.Errorw("catalog search failed, serving fallback", "query", query, "type", searchType, "error", err)
		numFound, docs = s.fallback.Search(query, searchType, page, limit)
		return &models.BookSearchResult{
			NumFound: numFound,
			Docs:     docs,
			Page:     page,
			Limit:    limit,
			Degraded: true,
		}, nil
	}

	return &models.BookSearchResult{
		NumFound: numFound,
		Docs:     docs,
		Page:     page,
		Limit:    limit,
	}, nil
}

// GetDetails returns a normalized work record, consulting the cache first.
// A definitive upstream 404 is surfaced as ErrBookNotFound; any other
// upstream failure degrades to a sample placeholder record.
func (s *BooksService) GetDetails(ctx context.Context, bookID string) (*models.BookDetail, error) {
	cleanID := strings.TrimPrefix(bookID, "/works/")
	cleanID = strings.TrimPrefix(cleanID, "works/")

	if s.cache != nil {
		if detail, err := s.cache.GetBookDetail(ctx, cleanID); err == nil {
			return detail, nil
		}
	}

	detail, err := s.getter.GetWork(ctx, cleanID)
	if err != nil {
		if errors.Is(err, facades.ErrBookNotFound) {
			return nil, ErrBookNotFound
		}
		logger.Log.Errorw("catalog work lookup failed, serving fallback", "bookID", cleanID, "error", err)
		degraded := s.fallback.Detail(cleanID)
		degraded.Degraded = true
		return degraded, nil
	}

	if s.cache != nil {
		if err := s.cache.SetBookDetail(ctx, cleanID, detail); err != nil {
			logger.Log.Errorw("failed to cache book detail", "bookID", cleanID, "error", err)
		}
	}

	return detail, nil
}
