package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"becsus/pkg/handlers"
)

// Recover returns middleware that converts handler panics into a generic
// JSON 500 response. The panic value and stack are logged server-side;
// the client never sees internal detail.
func Recover(logger *slog.Logger, clientErr error) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error(
						"panic recovered",
						"panic", rec,
						"uri", r.URL.RequestURI(),
						"stack", string(debug.Stack()),
					)
					handlers.RespondError(
						w, logger,
						http.StatusInternalServerError, clientErr,
					)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
