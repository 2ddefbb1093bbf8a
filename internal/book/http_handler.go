package book

import (
	"context"
	"errors"
	"net/http"
	"time"

	"bookreviews/internal/httpx"
)

type HTTPHandler struct {
	service *Service
	delay   time.Duration
}

// NewHTTPHandler creates the public read handler. delay applies only to the
// deferred (/async, /promise) routes.
func NewHTTPHandler(service *Service, delay time.Duration) *HTTPHandler {
	return &HTTPHandler{service: service, delay: delay}
}

// List handles GET /
// @Summary List all books
// @Description Return the entire catalog keyed by ISBN
// @Tags books
// @Produce json
// @Success 200 {object} httpx.SuccessResponse
// @Router / [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.All(r.Context())
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, map[string]any{"books": books}, nil)
}

// GetByISBN handles GET /isbn/{isbn}
// @Summary Get book by ISBN
// @Tags books
// @Produce json
// @Param isbn path string true "Book ISBN"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /isbn/{isbn} [get]
func (h *HTTPHandler) GetByISBN(w http.ResponseWriter, r *http.Request) {
	isbn := r.PathValue("isbn")
	if isbn == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "ISBN is required", nil)
		return
	}

	b, err := h.service.GetByISBN(r.Context(), isbn)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, b, nil)
}

// GetByAuthor handles GET /author/{author}
// @Summary List books by author
// @Tags books
// @Produce json
// @Param author path string true "Author name (exact match)"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /author/{author} [get]
func (h *HTTPHandler) GetByAuthor(w http.ResponseWriter, r *http.Request) {
	author := r.PathValue("author")
	books, err := h.service.ByAuthor(r.Context(), author)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "No books found by this author", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, map[string]any{"books": books}, nil)
}

// GetByTitle handles GET /title/{title}
// @Summary List books by title
// @Tags books
// @Produce json
// @Param title path string true "Title (exact match)"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /title/{title} [get]
func (h *HTTPHandler) GetByTitle(w http.ResponseWriter, r *http.Request) {
	title := r.PathValue("title")
	books, err := h.service.ByTitle(r.Context(), title)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "No books found with this title", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, map[string]any{"books": books}, nil)
}

// GetReviews handles GET /review/{isbn}
// @Summary Get reviews for a book
// @Tags reviews
// @Produce json
// @Param isbn path string true "Book ISBN"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /review/{isbn} [get]
func (h *HTTPHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	isbn := r.PathValue("isbn")
	reviews, err := h.service.Reviews(r.Context(), isbn)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, map[string]any{"reviews": reviews}, nil)
}

// The deferred variants below serve the /async and /promise route families.
// They run the exact same service calls through Deferred, so payloads and
// error semantics mirror the direct routes; only delivery is delayed.

// ListDeferred handles GET /async/books and GET /promise/books
func (h *HTTPHandler) ListDeferred(w http.ResponseWriter, r *http.Request) {
	out := <-Deferred(r.Context(), h.delay, h.service.All)
	if out.Err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Error fetching books", nil)
		return
	}
	httpx.JSONSuccess(w, r, map[string]any{"books": out.Value}, nil)
}

// GetByISBNDeferred handles GET /async/books/isbn/{isbn} and the /promise twin.
func (h *HTTPHandler) GetByISBNDeferred(w http.ResponseWriter, r *http.Request) {
	isbn := r.PathValue("isbn")
	out := <-Deferred(r.Context(), h.delay, func(ctx context.Context) (Book, error) {
		return h.service.GetByISBN(ctx, isbn)
	})
	if out.Err != nil {
		if errors.Is(out.Err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Error fetching book", nil)
		return
	}
	httpx.JSONSuccess(w, r, out.Value, nil)
}

// GetByAuthorDeferred handles GET /async/books/author/{author} and the /promise twin.
func (h *HTTPHandler) GetByAuthorDeferred(w http.ResponseWriter, r *http.Request) {
	author := r.PathValue("author")
	out := <-Deferred(r.Context(), h.delay, func(ctx context.Context) ([]TaggedBook, error) {
		return h.service.ByAuthor(ctx, author)
	})
	if out.Err != nil {
		if errors.Is(out.Err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "No books found by this author", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Error fetching books by author", nil)
		return
	}
	httpx.JSONSuccess(w, r, map[string]any{"books": out.Value}, nil)
}

// GetByTitleDeferred handles GET /async/books/title/{title} and the /promise twin.
func (h *HTTPHandler) GetByTitleDeferred(w http.ResponseWriter, r *http.Request) {
	title := r.PathValue("title")
	out := <-Deferred(r.Context(), h.delay, func(ctx context.Context) ([]TaggedBook, error) {
		return h.service.ByTitle(ctx, title)
	})
	if out.Err != nil {
		if errors.Is(out.Err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "No books found with this title", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Error fetching books by title", nil)
		return
	}
	httpx.JSONSuccess(w, r, map[string]any{"books": out.Value}, nil)
}
