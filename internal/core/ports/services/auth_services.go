package services

import (
	"context"

	"github.com/SscSPs/bizdash/internal/core/domain"
)

// AuthSvcFacade manages the superuser session.
type AuthSvcFacade interface {
	Login(ctx context.Context, username, password string) error
	// Logout always clears the local tokens, even when the backend call fails.
	Logout(ctx context.Context) error
	// Session describes the stored access token without verifying it.
	Session(ctx context.Context) (domain.Session, error)
}
