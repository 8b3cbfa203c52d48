// Package fallback provides a small static catalog served when the real
// catalog upstream is unreachable. The store is injected and synchronized;
// it is never written to after construction in normal operation, but Seed
// may replace the data set at runtime.
package fallback

import (
	"strings"
	"sync"

	"github.com/sbilibin2017/gw-reading-list/internal/models"
)

// Catalog is a synchronized in-memory set of sample books.
type Catalog struct {
	mu   sync.RWMutex
	docs []models.BookDoc
}

// NewCatalog creates a catalog seeded with the default sample books.
func NewCatalog() *Catalog {
	return &Catalog{docs: defaultDocs()}
}

// Seed replaces the catalog contents.
func (c *Catalog) Seed(docs []models.BookDoc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs = make([]models.BookDoc, len(docs))
	copy(c.docs, docs)
}

// Search filters the sample books by the same type/query rules used for
// real catalog search and paginates the result.
func (c *Catalog) Search(query, searchType string, page, limit int) (int, []models.BookDoc) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	q := strings.ToLower(query)

	matched := make([]models.BookDoc, 0)
	for _, doc := range c.docs {
		if matches(doc, q, searchType) {
			matched = append(matched, doc)
		}
	}

	total := len(matched)
	offset := (page - 1) * limit
	if offset >= total {
		return total, []models.BookDoc{}
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return total, matched[offset:end]
}

// Detail returns the sample record for the given id, or a generic
// placeholder when the id is not part of the sample set.
func (c *Catalog) Detail(bookID string) *models.BookDetail {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, doc := range c.docs {
		if strings.TrimPrefix(doc.Key, "/works/") != bookID {
			continue
		}
		detail := &models.BookDetail{
			ID:          bookID,
			Title:       doc.Title,
			Description: "No description available.",
			Authors:     make([]models.BookAuthor, 0, len(doc.AuthorName)),
		}
		if doc.CoverI != 0 {
			cover := doc.CoverI
			detail.CoverID = &cover
		}
		for _, name := range doc.AuthorName {
			detail.Authors = append(detail.Authors, models.BookAuthor{Name: name})
		}
		return detail
	}

	return &models.BookDetail{
		ID:          bookID,
		Title:       "Unknown Title",
		Description: "No description available.",
		Authors:     []models.BookAuthor{},
	}
}

func matches(doc models.BookDoc, q, searchType string) bool {
	switch searchType {
	case "title":
		return strings.Contains(strings.ToLower(doc.Title), q)
	case "author":
		for _, name := range doc.AuthorName {
			if strings.Contains(strings.ToLower(name), q) {
				return true
			}
		}
		return false
	case "isbn":
		for _, isbn := range doc.ISBN {
			if isbn == q {
				return true
			}
		}
		return false
	default:
		// Full-text: title or author.
		if strings.Contains(strings.ToLower(doc.Title), q) {
			return true
		}
		for _, name := range doc.AuthorName {
			if strings.Contains(strings.ToLower(name), q) {
				return true
			}
		}
		return false
	}
}

func defaultDocs() []models.BookDoc {
	return []models.BookDoc{
		{
			Key:              "/works/OL6789012W",
			Title:            "Harry Potter and the Sorcerer's Stone",
			AuthorName:       []string{"J.K. Rowling"},
			FirstPublishYear: 1997,
			CoverI:           8372296,
			ISBN:             []string{"9780590353427"},
		},
		{
			Key:              "/works/OL1122334W",
			Title:            "Harry Potter and the Chamber of Secrets",
			AuthorName:       []string{"J.K. Rowling"},
			FirstPublishYear: 1998,
			CoverI:           8372297,
			ISBN:             []string{"9780439064866"},
		},
		{
			Key:              "/works/OL2233445W",
			Title:            "Harry Potter and the Prisoner of Azkaban",
			AuthorName:       []string{"J.K. Rowling"},
			FirstPublishYear: 1999,
			CoverI:           8372298,
			ISBN:             []string{"9780439136358"},
		},
		{
			Key:              "/works/OL3344556W",
			Title:            "Sherlock Holmes",
			AuthorName:       []string{"Arthur Conan Doyle"},
			FirstPublishYear: 1887,
			CoverI:           8372299,
			ISBN:             []string{"9780439139595"},
		},
		{
			Key:              "/works/OL4455667W",
			Title:            "The Great Gatsby",
			AuthorName:       []string{"F. Scott Fitzgerald"},
			FirstPublishYear: 1925,
			CoverI:           8323053,
			ISBN:             []string{"9780061120084"},
		},
	}
}
