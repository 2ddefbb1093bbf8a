package book

import (
	"context"
	"sort"
)

// Service provides read-only catalog queries. It carries no state of its
// own; all lookups go through the repository.
type Service struct {
	repo Repository
}

// NewService creates a new catalog query service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// All returns the whole catalog keyed by ISBN.
func (s *Service) All(ctx context.Context) (map[string]Book, error) {
	return s.repo.All(ctx)
}

// GetByISBN returns the book for an ISBN.
func (s *Service) GetByISBN(ctx context.Context, isbn string) (Book, error) {
	return s.repo.GetByISBN(ctx, isbn)
}

// ByAuthor returns all books whose author exactly equals the argument,
// tagged with their ISBN and sorted by it. Returns ErrNotFound when nothing
// matches.
func (s *Service) ByAuthor(ctx context.Context, author string) ([]TaggedBook, error) {
	return s.filter(ctx, func(b Book) bool { return b.Author == author })
}

// ByTitle returns all books whose title exactly equals the argument, tagged
// with their ISBN and sorted by it. Returns ErrNotFound when nothing
// matches.
func (s *Service) ByTitle(ctx context.Context, title string) ([]TaggedBook, error) {
	return s.filter(ctx, func(b Book) bool { return b.Title == title })
}

// Reviews returns the reviews map for a book.
func (s *Service) Reviews(ctx context.Context, isbn string) (map[string]string, error) {
	b, err := s.repo.GetByISBN(ctx, isbn)
	if err != nil {
		return nil, err
	}
	return b.Reviews, nil
}

func (s *Service) filter(ctx context.Context, match func(Book) bool) ([]TaggedBook, error) {
	books, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	var found []TaggedBook
	for isbn, b := range books {
		if match(b) {
			found = append(found, TaggedBook{ISBN: isbn, Book: b})
		}
	}
	if len(found) == 0 {
		return nil, ErrNotFound
	}

	sort.Slice(found, func(i, j int) bool { return found[i].ISBN < found[j].ISBN })
	return found, nil
}
