package middleware

import (
	"net/http"
	"time"

	"github.com/SscSPs/bizdash/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDHeader carries a per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// RequestID stamps every outgoing request with an X-Request-ID. An id already
// present in the request context is reused so that log lines correlate.
func RequestID() Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			id := logger.RequestID(r.Context())
			if id == "" {
				id = uuid.NewString()
			}
			r = r.Clone(logger.ContextWithRequestID(r.Context(), id))
			r.Header.Set(RequestIDHeader, id)
			return next.RoundTrip(r)
		})
	}
}

// StructuredLogging logs method, path, status and latency of every request
// with the context-scoped logger, falling back to base.
func StructuredLogging(base *zap.Logger) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			start := time.Now()
			l := loggerFor(r, base).With(
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
			)

			resp, err := next.RoundTrip(r)
			latency := time.Since(start)
			if err != nil {
				l.Error("Request failed", zap.Duration("latency", latency), zap.Error(err))
				return nil, err
			}

			fields := []zap.Field{zap.Int("status", resp.StatusCode), zap.Duration("latency", latency)}
			switch {
			case resp.StatusCode >= 500:
				l.Error("Request completed", fields...)
			case resp.StatusCode >= 400:
				l.Warn("Request completed", fields...)
			default:
				l.Debug("Request completed", fields...)
			}
			return resp, nil
		})
	}
}

func loggerFor(r *http.Request, base *zap.Logger) *zap.Logger {
	l := logger.FromContext(r.Context())
	if l == logger.Base() && base != nil {
		l = base
	}
	if id := r.Header.Get(RequestIDHeader); id != "" {
		l = l.With(zap.String("request_id", id))
	}
	return l
}
