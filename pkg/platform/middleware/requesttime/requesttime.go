// Package requesttime pins one "now" per HTTP request so every timestamp
// taken while serving it agrees.
package requesttime

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"presence/pkg/requestcontext"
)

// Middleware captures the current time at the start of the request and
// carries chi's request ID into requestcontext. Mount it after
// middleware.RequestID.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithTime(r.Context(), time.Now())
		if reqID := middleware.GetReqID(ctx); reqID != "" {
			ctx = requestcontext.WithRequestID(ctx, reqID)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
