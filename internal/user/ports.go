package user

import (
	"context"
)

// Repository defines the contract for account storage.
type Repository interface {
	Create(ctx context.Context, u User) error
	GetByUsername(ctx context.Context, username string) (User, error)
}
