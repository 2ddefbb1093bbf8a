package review

import (
	"errors"
	"net/http"

	"bookreviews/internal/book"
	"bookreviews/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Upsert handles PUT /auth/review/{isbn}
// @Summary Add or update a book review
// @Description Set the authenticated user's review text for a book
// @Tags reviews
// @Produce json
// @Security Bearer
// @Param isbn path string true "Book ISBN"
// @Param review query string true "Review text"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /auth/review/{isbn} [put]
func (h *HTTPHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	username := httpx.UsernameFrom(r)
	if username == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	isbn := r.PathValue("isbn")
	text := r.URL.Query().Get("review")
	if text == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Review is required", nil)
		return
	}

	reviews, err := h.service.Upsert(r.Context(), isbn, username, text)
	if err != nil {
		if errors.Is(err, book.ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, r, map[string]any{
		"message": "Review successfully added/updated",
		"reviews": reviews,
	}, nil)
}

// Delete handles DELETE /auth/review/{isbn}
// @Summary Delete a book review
// @Description Remove the authenticated user's review from a book
// @Tags reviews
// @Produce json
// @Security Bearer
// @Param isbn path string true "Book ISBN"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /auth/review/{isbn} [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	username := httpx.UsernameFrom(r)
	if username == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	isbn := r.PathValue("isbn")

	reviews, err := h.service.Delete(r.Context(), isbn, username)
	if err != nil {
		switch {
		case errors.Is(err, book.ErrNotFound):
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		case errors.Is(err, book.ErrReviewNotFound):
			httpx.JSONError(w, r, http.StatusNotFound, "REVIEW_NOT_FOUND", "Review not found for this user", nil)
		default:
			httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}

	httpx.JSONSuccess(w, r, map[string]any{
		"message": "Review successfully deleted",
		"reviews": reviews,
	}, nil)
}
