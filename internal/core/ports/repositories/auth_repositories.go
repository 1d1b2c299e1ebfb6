package repositories

import (
	"context"

	"github.com/SscSPs/bizdash/internal/dto"
)

// AuthRepository talks to the superuser session endpoints.
type AuthRepository interface {
	Login(ctx context.Context, username, password string) (dto.TokenPair, error)
	Logout(ctx context.Context, refresh string) error
}
