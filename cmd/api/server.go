package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

// serve runs srv until ctx is cancelled, then shuts it down gracefully
// within timeout.
func serve(ctx context.Context, logger *slog.Logger, srv *http.Server, timeout time.Duration) error {
	shutdownErr := make(chan error, 1)

	go func() {
		<-ctx.Done()
		logger.Info("shutting down server", slog.String("addr", srv.Addr))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		shutdownErr <- srv.Shutdown(shutdownCtx)
	}()

	logger.Info("starting server", slog.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	if err := <-shutdownErr; err != nil {
		return err
	}
	logger.Info("server stopped", slog.String("addr", srv.Addr))
	return nil
}
