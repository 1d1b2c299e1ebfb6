package storage

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/SscSPs/bizdash/internal/core/ports/repositories"
	"golang.org/x/crypto/nacl/secretbox"
)

const nonceSize = 24

// ErrSealedValue is returned when a stored value cannot be opened with the configured key.
var ErrSealedValue = errors.New("stored value could not be decrypted")

// SealedStore encrypts values with NaCl secretbox before handing them to the
// wrapped store. Keys are left in the clear.
type SealedStore struct {
	inner repositories.KeyValueStore
	key   [32]byte
}

var _ repositories.KeyValueStore = (*SealedStore)(nil)

// NewSealedStore requires a 32 byte key.
func NewSealedStore(inner repositories.KeyValueStore, key []byte) (*SealedStore, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("encryption key must be 32 bytes, got %d", len(key))
	}
	s := &SealedStore{inner: inner}
	copy(s.key[:], key)
	return s, nil
}

func (s *SealedStore) Get(ctx context.Context, key string) (string, bool, error) {
	sealed, ok, err := s.inner.Get(ctx, key)
	if err != nil || !ok {
		return "", ok, err
	}
	raw, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil || len(raw) < nonceSize {
		return "", false, fmt.Errorf("%w: %s", ErrSealedValue, key)
	}
	var nonce [nonceSize]byte
	copy(nonce[:], raw[:nonceSize])
	plain, ok := secretbox.Open(nil, raw[nonceSize:], &nonce, &s.key)
	if !ok {
		return "", false, fmt.Errorf("%w: %s", ErrSealedValue, key)
	}
	return string(plain), true, nil
}

func (s *SealedStore) Set(ctx context.Context, key, value string) error {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return fmt.Errorf("generate nonce: %w", err)
	}
	box := secretbox.Seal(nonce[:], []byte(value), &nonce, &s.key)
	return s.inner.Set(ctx, key, base64.StdEncoding.EncodeToString(box))
}

func (s *SealedStore) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, key)
}
