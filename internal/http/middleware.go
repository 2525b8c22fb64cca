package http

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"

	"bookmarkhub/internal/contextutil"
	"bookmarkhub/internal/handlers"
	"bookmarkhub/internal/metrics"
	"bookmarkhub/internal/service"
)

// LoggerMiddleware adds a structured logger to the request context.
func LoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := slog.Default().With(
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
		)
		ctx := contextutil.WithLogger(r.Context(), logger)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Recoverer turns a panicking handler into a 500 with the usual JSON error
// body, like chi's middleware.Recoverer but without the plain-text reply.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				// The client went away; let net/http drop the connection.
				panic(rec)
			}
			contextutil.LoggerFromContext(r.Context()).ErrorContext(r.Context(), "handler panicked",
				"panic", rec,
				"stack", string(debug.Stack()),
			)
			handlers.WriteError(w, http.StatusInternalServerError, "Internal server error")
		}()
		next.ServeHTTP(w, r)
	})
}

// responseWriter captures the status code written by a handler.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// RequestLogger logs one line per finished request. Successful pings are
// skipped so that client reachability probes do not flood the log.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		if r.URL.Path == "/api/ping" && rw.statusCode == http.StatusOK {
			return
		}
		level := slog.LevelInfo
		if rw.statusCode >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		slog.Log(r.Context(), level, "request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration", time.Since(start),
		)
	})
}

// Metrics records request counts and latency per route pattern.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		metrics.ObserveRequest(r.Method, route, rw.statusCode, time.Since(start).Seconds())
	})
}

// CORS lets any origin call the API with the shared secret header.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight requests
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireSecret rejects requests whose Authorization header is not the
// current password.
func RequireSecret(svc service.BookmarkService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			err := svc.Authorize(ctx, r.Header.Get("Authorization"))
			if errors.Is(err, service.ErrUnauthorized) {
				contextutil.LoggerFromContext(ctx).WarnContext(ctx, "rejected secret")
				handlers.WriteError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			if err != nil {
				contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to check secret", "error", err)
				handlers.WriteError(w, http.StatusInternalServerError, "Server error")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
