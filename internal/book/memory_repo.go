package book

import (
	"context"
	"sync"
)

// MemoryRepo is the in-process catalog store. All state is volatile and
// resets on restart. A single RWMutex guards the map; review mutations run
// as one critical section so concurrent upserts on the same book cannot lose
// writes.
type MemoryRepo struct {
	mu    sync.RWMutex
	books map[string]Book
}

// NewMemoryRepo creates a catalog store seeded with the given records.
// The seed map is copied; the caller keeps ownership of its argument.
func NewMemoryRepo(seed map[string]Book) *MemoryRepo {
	books := make(map[string]Book, len(seed))
	for isbn, b := range seed {
		books[isbn] = copyBook(b)
	}
	return &MemoryRepo{books: books}
}

func copyBook(b Book) Book {
	reviews := make(map[string]string, len(b.Reviews))
	for user, text := range b.Reviews {
		reviews[user] = text
	}
	b.Reviews = reviews
	return b
}

func (r *MemoryRepo) All(ctx context.Context) (map[string]Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make(map[string]Book, len(r.books))
	for isbn, b := range r.books {
		snapshot[isbn] = copyBook(b)
	}
	return snapshot, nil
}

func (r *MemoryRepo) GetByISBN(ctx context.Context, isbn string) (Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.books[isbn]
	if !ok {
		return Book{}, ErrNotFound
	}
	return copyBook(b), nil
}

func (r *MemoryRepo) SetReview(ctx context.Context, isbn, username, text string) (map[string]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.books[isbn]
	if !ok {
		return nil, ErrNotFound
	}
	if b.Reviews == nil {
		b.Reviews = make(map[string]string)
		r.books[isbn] = b
	}
	b.Reviews[username] = text
	return copyBook(b).Reviews, nil
}

func (r *MemoryRepo) RemoveReview(ctx context.Context, isbn, username string) (map[string]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.books[isbn]
	if !ok {
		return nil, ErrNotFound
	}
	if _, ok := b.Reviews[username]; !ok {
		return nil, ErrReviewNotFound
	}
	delete(b.Reviews, username)
	return copyBook(b).Reviews, nil
}
