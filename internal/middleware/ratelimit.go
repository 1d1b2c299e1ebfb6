package middleware

import (
	"net/http"
	"time"

	"github.com/SscSPs/bizdash/pkg/logger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	"go.uber.org/zap"
)

// rateLimitKey is the single bucket shared by every outgoing request.
const rateLimitKey = "backend"

// NewLimiter builds an in-memory limiter from a formatted rate such as "10-S".
func NewLimiter(formatted string) (*limiter.Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, err
	}
	return limiter.New(memory.NewStore(), rate), nil
}

// RateLimit throttles outgoing requests. When the limit is reached it waits
// for the window to reset instead of failing; a cancelled context aborts the wait.
func RateLimit(l *limiter.Limiter) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			ctx := r.Context()
			for {
				lctx, err := l.Get(ctx, rateLimitKey)
				if err != nil {
					logger.WithContext(ctx).Error("Failed to get rate limit context", zap.Error(err))
					break
				}
				if !lctx.Reached {
					break
				}
				wait := time.Until(time.Unix(lctx.Reset, 0))
				if wait <= 0 {
					wait = 10 * time.Millisecond
				}
				logger.WithContext(ctx).Debug("Rate limit reached, waiting",
					zap.Int64("limit", lctx.Limit),
					zap.Duration("wait", wait),
				)
				timer := time.NewTimer(wait)
				select {
				case <-ctx.Done():
					timer.Stop()
					return nil, ctx.Err()
				case <-timer.C:
				}
			}
			return next.RoundTrip(r)
		})
	}
}
