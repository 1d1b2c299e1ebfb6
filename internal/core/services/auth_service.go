package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/bizdash/internal/apperrors"
	"github.com/SscSPs/bizdash/internal/core/domain"
	portsrepo "github.com/SscSPs/bizdash/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizdash/internal/core/ports/services"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// AuthService handles the superuser session tokens.
type AuthService struct {
	BaseService
	repo   portsrepo.AuthRepository
	tokens portsrepo.TokenStore
}

func NewAuthService(repo portsrepo.AuthRepository, tokens portsrepo.TokenStore) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

var _ portssvc.AuthSvcFacade = (*AuthService)(nil)

// Login exchanges credentials for a token pair and persists it.
func (s *AuthService) Login(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return apperrors.NewValidationError("username", "is required")
	}
	if password == "" {
		return apperrors.NewValidationError("password", "is required")
	}

	pair, err := s.repo.Login(ctx, username, password)
	if err != nil {
		s.LogError(ctx, err, "Superuser login failed", zap.String("username", username))
		return fmt.Errorf("failed to log in: %w", err)
	}
	if pair.Access == "" {
		return fmt.Errorf("failed to log in: %w", apperrors.NewTransportError(errors.New("login response carries no access token")))
	}
	if err := s.tokens.Save(ctx, pair.Access, pair.Refresh); err != nil {
		s.LogError(ctx, err, "Failed to persist session tokens")
		return fmt.Errorf("failed to save session: %w", err)
	}
	s.GetLogger(ctx).Info("Superuser logged in", zap.String("username", username))
	return nil
}

// Logout revokes the refresh token when there is one. Local tokens are
// cleared whatever the backend answers.
func (s *AuthService) Logout(ctx context.Context) error {
	var remoteErr error
	refresh, err := s.tokens.Refresh(ctx)
	if err != nil {
		s.LogWarn(ctx, "Could not read refresh token", zap.Error(err))
	}
	if refresh != "" {
		if remoteErr = s.repo.Logout(ctx, refresh); remoteErr != nil {
			s.LogWarn(ctx, "Backend logout failed, clearing local session anyway", zap.Error(remoteErr))
			remoteErr = fmt.Errorf("failed to log out: %w", remoteErr)
		}
	}
	if err := s.tokens.Clear(ctx); err != nil {
		s.LogError(ctx, err, "Failed to clear session tokens")
		return errors.Join(remoteErr, fmt.Errorf("failed to clear session: %w", err))
	}
	return remoteErr
}

// Session reads exp and user_id from the stored access token. The signature
// is not checked; the backend remains the authority.
func (s *AuthService) Session(ctx context.Context) (domain.Session, error) {
	access, err := s.tokens.Access(ctx)
	if err != nil {
		return domain.Session{}, fmt.Errorf("failed to read session: %w", err)
	}
	if access == "" {
		return domain.Session{}, fmt.Errorf("no stored session: %w", apperrors.ErrUnauthorized)
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(access, claims); err != nil {
		return domain.Session{}, fmt.Errorf("failed to decode access token: %w", err)
	}

	var session domain.Session
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		session.ExpiresAt = exp.Time
	}
	switch v := claims["user_id"].(type) {
	case string:
		session.UserID = v
	case float64:
		session.UserID = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return session, nil
}
