package server

import (
	"log/slog"
	"mime"
	"net/http"
	"time"
)

// statusRecorder captures the status code for the request
// log.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// logger writes one slog line per request.
func logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		slog.Info(
			"request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

// recovery turns a handler panic into a 500 response.
func recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rv := recover(); rv != nil {
				slog.Error("panic recovered", "panic", rv, "path", r.URL.Path)
				writeError(
					w, http.StatusInternalServerError,
					ErrCodeInternalError, "internal server error",
				)
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// jsonContentType rejects bodies declared as anything other
// than JSON. A missing Content-Type is accepted.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "" {
			mt, _, err := mime.ParseMediaType(ct)
			if err != nil || mt != "application/json" {
				writeError(
					w, http.StatusUnsupportedMediaType,
					ErrCodeInvalidRequest,
					"Content-Type must be application/json",
				)

				return
			}
		}

		next.ServeHTTP(w, r)
	})
}
