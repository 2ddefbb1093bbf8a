package book

import "errors"

// ErrNotFound is returned when no book exists for an ISBN, or a search
// matches nothing.
var ErrNotFound = errors.New("book not found")

// ErrReviewNotFound is returned when a user has no review on a book.
var ErrReviewNotFound = errors.New("review not found")

// Book is a catalog record. Records are seeded at startup and never removed;
// only the Reviews map mutates, keyed by the reviewing username.
type Book struct {
	Title   string            `json:"title"`
	Author  string            `json:"author"`
	Reviews map[string]string `json:"reviews"`
}

// TaggedBook is a catalog record together with its ISBN key, used by
// author/title searches where the key is not implied by the result shape.
type TaggedBook struct {
	ISBN string `json:"isbn"`
	Book
}
