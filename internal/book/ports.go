package book

import (
	"context"
)

// Repository defines the contract for catalog storage. Review mutations are
// repository operations so implementations can apply them atomically; whole
// records are never created or deleted after seeding.
type Repository interface {
	All(ctx context.Context) (map[string]Book, error)
	GetByISBN(ctx context.Context, isbn string) (Book, error)
	SetReview(ctx context.Context, isbn, username, text string) (map[string]string, error)
	RemoveReview(ctx context.Context, isbn, username string) (map[string]string, error)
}
