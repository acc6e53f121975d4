package httpx

import (
	"log/slog"
	"net/http"
	"runtime/debug"
)

// InternalErrorMessage is sent to clients whenever a request fails unexpectedly.
const InternalErrorMessage = "Terjadi kegagalan pada server"

func RecoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler {
						panic(err)
					}
					logger.Error("panic recovered",
						slog.String("request_id", RequestIDFrom(r)),
						slog.Any("error", err),
						slog.String("stack", string(debug.Stack())),
					)

					var wroteHeader bool
					if rw, ok := w.(*responseWriter); ok {
						wroteHeader = rw.wroteHeader()
					}

					if !wroteHeader {
						w.Header().Set("Connection", "close")
						JSONFail(w, http.StatusInternalServerError, InternalErrorMessage)
					}
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
