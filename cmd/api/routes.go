package main

import (
	"log/slog"
	"net/http"

	"bookshelf/internal/book"
	"bookshelf/internal/httpx"
)

const msgRouteNotFound = "Halaman tidak ditemukan"

// routes registers the book endpoints and wraps them in the middleware
// chain (outermost first): request id, access log, recovery, CORS,
// security headers, rate limit, body size limit.
func routes(cfg config, logger *slog.Logger, bookHandler *book.HTTPHandler, limiter *httpx.RateLimitMiddleware) http.Handler {
	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.HandleFunc("POST /books", bookHandler.Create)
	router.HandleFunc("GET /books", bookHandler.List)
	router.HandleFunc("GET /books/{bookId}", bookHandler.Get)
	router.HandleFunc("PUT /books/{bookId}", bookHandler.Update)
	router.HandleFunc("DELETE /books/{bookId}", bookHandler.Delete)
	router.HandleFunc("GET /{$}", bookHandler.List)

	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSONFail(w, http.StatusNotFound, msgRouteNotFound)
	})

	mws := []httpx.Middleware{
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware(logger),
		httpx.RecoveryMiddleware(logger),
		httpx.CORSMiddleware(cfg.allowedOrigins),
		httpx.SecurityHeadersMiddleware,
	}
	if limiter != nil {
		mws = append(mws, limiter.Middleware)
	}
	mws = append(mws, httpx.RequestSizeLimitMiddleware(cfg.maxBodyBytes))

	return httpx.Chain(router, mws...)
}
