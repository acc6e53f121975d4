package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookshelf/internal/book"
	"bookshelf/internal/httpx"
)

func main() {
	loadEnvFiles()
	cfg := loadConfig()

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bookService := book.NewService(book.NewStore())
	if cfg.seedFile != "" {
		mustSeed(ctx, logger, bookService, cfg.seedFile)
	}
	bookHandler := book.NewHTTPHandler(bookService, logger)

	var limiter *httpx.RateLimitMiddleware
	if cfg.rateLimitRPS > 0 {
		limiter = httpx.NewRateLimitMiddleware(cfg.rateLimitRPS, cfg.rateLimitBurst)
		go limiter.Run(ctx)
	}

	httpServer := &http.Server{
		Addr:         cfg.addr,
		Handler:      routes(cfg, logger, bookHandler, limiter),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	if err := serve(ctx, logger, httpServer, cfg.shutdownTimeout); err != nil {
		logger.Error("server error", slog.Any("error", err))
		os.Exit(1)
	}
}

func mustSeed(ctx context.Context, logger *slog.Logger, svc *book.Service, path string) {
	f, err := os.Open(path)
	if err != nil {
		logger.Error("cannot open seed file", slog.String("path", path), slog.Any("error", err))
		os.Exit(1)
	}
	defer f.Close()

	n, err := book.Seed(ctx, svc, f)
	if err != nil {
		logger.Error("cannot seed books", slog.String("path", path), slog.Int("added", n), slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("books seeded", slog.String("path", path), slog.Int("count", n))
}
