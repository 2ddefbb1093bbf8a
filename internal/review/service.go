package review

import (
	"context"

	"bookreviews/internal/book"
)

// Service manages per-user review annotations on catalog records. Callers
// must pass a username taken from a verified session token.
type Service struct {
	repo book.Repository
}

func NewService(repo book.Repository) *Service {
	return &Service{repo: repo}
}

// Upsert sets the user's review on a book, replacing any prior one, and
// returns the book's full reviews map.
func (s *Service) Upsert(ctx context.Context, isbn, username, text string) (map[string]string, error) {
	return s.repo.SetReview(ctx, isbn, username, text)
}

// Delete removes the user's review from a book and returns the remaining
// reviews map.
func (s *Service) Delete(ctx context.Context, isbn, username string) (map[string]string, error) {
	return s.repo.RemoveReview(ctx, isbn, username)
}
