package middlewares

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// EchoRequestID reflects the generated request id back to the caller so the
// UI can quote it when reporting a failure.
func EchoRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := middleware.GetReqID(r.Context()); id != "" {
			w.Header().Set("X-Request-Id", id)
		}
		next.ServeHTTP(w, r)
	})
}
