package middleware

import (
	"context"
	"log"
	"net/http"
	"time"

	"etsy-mock-api/internal/model"
	"etsy-mock-api/internal/repository"
)

// NewLogging creates a middleware that logs HTTP requests. When a request
// log repository is supplied, every handled call is also recorded there so
// that client traffic can be inspected afterwards; recording happens in the
// request cycle itself, there are no background writers.
func NewLogging(logs repository.RequestLogRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			duration := time.Since(start)
			log.Printf(
				"[%s] %s %s %d %s",
				r.Method,
				r.URL.Path,
				r.RemoteAddr,
				wrapped.statusCode,
				duration,
			)

			if logs == nil {
				return
			}
			entry := &model.RequestLog{
				RequestID:  GetRequestID(r.Context()),
				Method:     r.Method,
				Path:       r.URL.Path,
				Status:     wrapped.statusCode,
				DurationMs: duration.Milliseconds(),
				RemoteAddr: r.RemoteAddr,
			}
			// The client response is already written; a failed audit insert
			// only warrants a log line.
			if err := logs.Insert(context.WithoutCancel(r.Context()), entry); err != nil {
				log.Printf("request log insert failed: %v", err)
			}
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
