package repositories

import "context"

// KeyValueStore is the persistent client-side storage used for session
// tokens and preferences.
type KeyValueStore interface {
	// Get returns the value stored under key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// TokenStore persists the superuser access and refresh tokens.
type TokenStore interface {
	Save(ctx context.Context, access, refresh string) error
	// Access returns the stored access token or "" when logged out.
	Access(ctx context.Context) (string, error)
	// Refresh returns the stored refresh token or "" when logged out.
	Refresh(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}
