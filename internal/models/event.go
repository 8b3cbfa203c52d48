package models

// ReadingListEvent represents a reading list mutation published to Kafka.
type ReadingListEvent struct {
	EventID   string `json:"event_id"`  // EventID is a unique identifier for the event.
	Timestamp int64  `json:"timestamp"` // Timestamp is the Unix timestamp (in seconds) when the mutation occurred.
	UserID    int64  `json:"user_id"`   // UserID is the owner of the reading list.
	BookID    string `json:"book_id"`   // BookID is the external catalog identifier of the book.
	Operation string `json:"operation"` // Operation is the mutation type, "add" or "remove".
}
