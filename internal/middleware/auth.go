package middleware

import (
	"context"
	"net/http"

	"github.com/SscSPs/bizdash/internal/core/ports/repositories"
	"github.com/SscSPs/bizdash/pkg/logger"
	"go.uber.org/zap"
)

// SessionTerminator is invoked after every 401, once the tokens are cleared.
// The CLI uses it to tell the user to log in again.
type SessionTerminator func(ctx context.Context)

// BearerAuth attaches the stored access token to every request. Any 401
// response clears all stored tokens and calls onTerminate, whatever the caller.
func BearerAuth(tokens repositories.TokenStore, onTerminate SessionTerminator) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			ctx := r.Context()
			access, err := tokens.Access(ctx)
			if err != nil {
				logger.WithContext(ctx).Warn("Failed to read access token", zap.Error(err))
			}
			if access != "" {
				r = r.Clone(ctx)
				r.Header.Set("Authorization", "Bearer "+access)
			}

			resp, err := next.RoundTrip(r)
			if err != nil {
				return nil, err
			}

			if resp.StatusCode == http.StatusUnauthorized {
				logger.WithContext(ctx).Warn("Session rejected by backend, clearing tokens", zap.String("path", r.URL.Path))
				if cerr := tokens.Clear(ctx); cerr != nil {
					logger.WithContext(ctx).Error("Failed to clear tokens", zap.Error(cerr))
				}
				if onTerminate != nil {
					onTerminate(ctx)
				}
			}
			return resp, nil
		})
	}
}
