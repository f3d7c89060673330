// Package middleware provides HTTP middleware for the travel planner API server.
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewSlogLogger returns a middleware that logs each request as a structured
// JSON line via the provided slog.Logger. It captures method, escaped path,
// the matched chi route pattern, HTTP status, response size, duration, and
// the request ID set by chi's RequestID middleware.
//
// The escaped path is logged rather than the decoded one because date path
// parameters carry encoded slashes; "/itinerary/18%2F06%2F25" is one
// segment, which the decoded form hides. The route pattern (for example
// "/itinerary/{date}") gives log queries a stable key per endpoint.
//
// Wire it after chimiddleware.RequestID so the request ID is available.
func NewSlogLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// WrapResponseWriter intercepts WriteHeader so we can read the
			// status code after the downstream handler has run.
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			// The pattern is only known after routing, and only when the
			// request actually went through a chi router.
			var route string
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				route = rctx.RoutePattern()
			}

			log.InfoContext(r.Context(), "request",
				"method", r.Method,
				"path", r.URL.EscapedPath(),
				"route", route,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", chimiddleware.GetReqID(r.Context()),
			)
		})
	}
}
