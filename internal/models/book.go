package models

// BookDoc is a single search match as returned by the catalog upstream.
type BookDoc struct {
	Key              string   `json:"key,omitempty"`
	Title            string   `json:"title"`
	AuthorName       []string `json:"author_name,omitempty"`
	FirstPublishYear int      `json:"first_publish_year,omitempty"`
	CoverI           int64    `json:"cover_i,omitempty"`
	ISBN             []string `json:"isbn,omitempty"`
}

// BookSearchResult is a page of catalog search matches.
type BookSearchResult struct {
	NumFound int       `json:"numFound"`
	Docs     []BookDoc `json:"docs"`
	Page     int       `json:"page"`
	Limit    int       `json:"limit"`
	Degraded bool      `json:"degraded,omitempty"` // true when served from fallback data
}

// BookAuthor is an author reference on a book detail record.
type BookAuthor struct {
	Name string `json:"name"`
}

// BookDetail is a normalized catalog work record.
type BookDetail struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Subjects     []string     `json:"subjects,omitempty"`
	Created      string       `json:"created,omitempty"`
	LastModified string       `json:"last_modified,omitempty"`
	CoverID      *int64       `json:"cover_id"`
	Authors      []BookAuthor `json:"authors"`
	Degraded     bool         `json:"degraded,omitempty"` // true when served from fallback data
}
