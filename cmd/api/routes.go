package main

import (
	"net/http"
	"time"

	"bookreviews/internal/auth"
	"bookreviews/internal/book"
	"bookreviews/internal/httpx"
	"bookreviews/internal/review"
	"bookreviews/internal/user"
)

// newRouter wires repositories, services, and handlers onto a ServeMux.
// queryDelay applies only to the deferred read route families.
func newRouter(jwtSecret string, queryDelay time.Duration, bookRepository book.Repository, userRepository user.Repository) *http.ServeMux {
	bookService := book.NewService(bookRepository)
	authService := auth.NewService(jwtSecret, userRepository)
	reviewService := review.NewService(bookRepository)

	bookHandler := book.NewHTTPHandler(bookService, queryDelay)
	authHandler := auth.NewHTTPHandler(authService)
	reviewHandler := review.NewHTTPHandler(reviewService)

	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.HandleFunc("POST /register", authHandler.Register)
	router.HandleFunc("POST /login", authHandler.Login)

	router.HandleFunc("GET /{$}", bookHandler.List)
	router.HandleFunc("GET /isbn/{isbn}", bookHandler.GetByISBN)
	router.HandleFunc("GET /author/{author}", bookHandler.GetByAuthor)
	router.HandleFunc("GET /title/{title}", bookHandler.GetByTitle)
	router.HandleFunc("GET /review/{isbn}", bookHandler.GetReviews)

	// Deferred read routes; /promise is an alias family kept for
	// compatibility with older clients.
	for _, prefix := range []string{"/async", "/promise"} {
		router.HandleFunc("GET "+prefix+"/books", bookHandler.ListDeferred)
		router.HandleFunc("GET "+prefix+"/books/isbn/{isbn}", bookHandler.GetByISBNDeferred)
		router.HandleFunc("GET "+prefix+"/books/author/{author}", bookHandler.GetByAuthorDeferred)
		router.HandleFunc("GET "+prefix+"/books/title/{title}", bookHandler.GetByTitleDeferred)
	}

	requireAuth := httpx.AuthMiddleware(auth.Verifier(jwtSecret))
	router.Handle("PUT /auth/review/{isbn}", requireAuth(http.HandlerFunc(reviewHandler.Upsert)))
	router.Handle("DELETE /auth/review/{isbn}", requireAuth(http.HandlerFunc(reviewHandler.Delete)))

	return router
}
