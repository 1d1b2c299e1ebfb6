package storage

import (
	"context"
	"errors"

	"github.com/SscSPs/bizdash/internal/core/ports/repositories"
)

const (
	AccessTokenKey  = "access_token"
	RefreshTokenKey = "refresh_token"
)

// TokenStore keeps the session tokens in a KeyValueStore under fixed keys.
type TokenStore struct {
	kv repositories.KeyValueStore
}

var _ repositories.TokenStore = (*TokenStore)(nil)

func NewTokenStore(kv repositories.KeyValueStore) *TokenStore {
	return &TokenStore{kv: kv}
}

func (t *TokenStore) Save(ctx context.Context, access, refresh string) error {
	if err := t.kv.Set(ctx, AccessTokenKey, access); err != nil {
		return err
	}
	return t.kv.Set(ctx, RefreshTokenKey, refresh)
}

func (t *TokenStore) Access(ctx context.Context) (string, error) {
	v, _, err := t.kv.Get(ctx, AccessTokenKey)
	return v, err
}

func (t *TokenStore) Refresh(ctx context.Context) (string, error) {
	v, _, err := t.kv.Get(ctx, RefreshTokenKey)
	return v, err
}

// Clear removes both tokens, attempting each even if the first fails.
func (t *TokenStore) Clear(ctx context.Context) error {
	return errors.Join(
		t.kv.Delete(ctx, AccessTokenKey),
		t.kv.Delete(ctx, RefreshTokenKey),
	)
}
