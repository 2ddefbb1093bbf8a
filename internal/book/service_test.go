package book

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	repo := NewMemoryRepo(map[string]Book{
		"1": {Title: "Book One", Author: "A", Reviews: map[string]string{}},
		"2": {Title: "Book Two", Author: "A", Reviews: map[string]string{}},
		"3": {Title: "Book One", Author: "C", Reviews: map[string]string{"dave": "solid"}},
	})
	return NewService(repo)
}

func TestService_All(t *testing.T) {
	svc := newTestService()

	books, err := svc.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, books, 3)
}

func TestService_ByAuthor(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	t.Run("matches tagged with isbn, ordered", func(t *testing.T) {
		books, err := svc.ByAuthor(ctx, "A")
		require.NoError(t, err)
		require.Len(t, books, 2)
		assert.Equal(t, "1", books[0].ISBN)
		assert.Equal(t, "Book One", books[0].Title)
		assert.Equal(t, "A", books[0].Author)
		assert.Equal(t, "2", books[1].ISBN)
	})

	t.Run("no match", func(t *testing.T) {
		_, err := svc.ByAuthor(ctx, "Z")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("match is case-sensitive", func(t *testing.T) {
		_, err := svc.ByAuthor(ctx, "a")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestService_ByTitle(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	t.Run("matches across authors", func(t *testing.T) {
		books, err := svc.ByTitle(ctx, "Book One")
		require.NoError(t, err)
		require.Len(t, books, 2)
		assert.Equal(t, "1", books[0].ISBN)
		assert.Equal(t, "3", books[1].ISBN)
	})

	t.Run("no match", func(t *testing.T) {
		_, err := svc.ByTitle(ctx, "No Such Title")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestService_Reviews(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		reviews, err := svc.Reviews(ctx, "3")
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"dave": "solid"}, reviews)
	})

	t.Run("unknown isbn", func(t *testing.T) {
		_, err := svc.Reviews(ctx, "999")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDeferred_MatchesDirectResults(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	direct, err := svc.All(ctx)
	require.NoError(t, err)

	out := <-Deferred(ctx, time.Millisecond, svc.All)
	require.NoError(t, out.Err)
	assert.Equal(t, direct, out.Value)
}

func TestDeferred_PropagatesErrors(t *testing.T) {
	svc := newTestService()

	out := <-Deferred(context.Background(), time.Millisecond, func(ctx context.Context) (Book, error) {
		return svc.GetByISBN(ctx, "999")
	})
	assert.ErrorIs(t, out.Err, ErrNotFound)
}

func TestDeferred_ContextCancelledDuringDelay(t *testing.T) {
	svc := newTestService()

	ctx, cancel := context.WithCancel(context.Background())
	ch := Deferred(ctx, time.Minute, svc.All)
	cancel()

	out := <-ch
	assert.ErrorIs(t, out.Err, context.Canceled)
}

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()
	require.Len(t, catalog, 10)

	b, ok := catalog["8"]
	require.True(t, ok)
	assert.Equal(t, "Jane Austen", b.Author)
	assert.Equal(t, "Pride and Prejudice", b.Title)
	assert.NotNil(t, b.Reviews)
}
