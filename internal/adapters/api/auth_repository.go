package api

import (
	"context"
	"net/http"

	"github.com/SscSPs/bizdash/internal/core/ports/repositories"
	"github.com/SscSPs/bizdash/internal/dto"
)

const (
	loginPath  = "/api/superuser/login/"
	logoutPath = "/api/superuser/logout/"
)

// AuthRepository uses a client without the session middleware: a failed
// login must not be treated as an expired session.
type AuthRepository struct {
	client *Client
	tokens repositories.TokenStore
}

var _ repositories.AuthRepository = (*AuthRepository)(nil)

func NewAuthRepository(c *Client, tokens repositories.TokenStore) *AuthRepository {
	return &AuthRepository{client: c, tokens: tokens}
}

func (r *AuthRepository) Login(ctx context.Context, username, password string) (dto.TokenPair, error) {
	raw, err := r.client.Do(ctx, http.MethodPost, loginPath, nil, dto.LoginRequest{Username: username, Password: password})
	if err != nil {
		return dto.TokenPair{}, err
	}
	return decode[dto.TokenPair](raw)
}

// Logout attaches the stored access token itself.
func (r *AuthRepository) Logout(ctx context.Context, refresh string) error {
	access, err := r.tokens.Access(ctx)
	if err != nil {
		return err
	}
	_, err = r.client.doWithBearer(ctx, http.MethodPost, logoutPath, dto.LogoutRequest{Refresh: refresh}, access)
	return err
}
