package service

import (
	"context"
	"fmt"
	"time"

	"bistroboss/internal/auth"
)

// AuthService issues and revokes access tokens.
type AuthService interface {
	IssueToken(ctx context.Context, identity auth.Identity) (string, error)
	Logout(ctx context.Context, claims *auth.Claims) error
}

type authService struct {
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
	now        func() time.Time
}

// NewAuthService creates a new authentication service.
func NewAuthService(jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface) AuthService {
	return &authService{
		jwtService: jwtService,
		tokenStore: tokenStore,
		now:        time.Now,
	}
}

// IssueToken signs an access token for the identity the client has already authenticated.
func (s *authService) IssueToken(ctx context.Context, identity auth.Identity) (string, error) {
	token, err := s.jwtService.GenerateAccessToken(identity)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}
	return token, nil
}

// Logout revokes the token described by claims for the rest of its lifetime.
func (s *authService) Logout(ctx context.Context, claims *auth.Claims) error {
	if claims.ID == "" || claims.ExpiresAt == nil {
		return nil
	}
	ttl := claims.ExpiresAt.Time.Sub(s.now())
	if err := s.tokenStore.BlacklistAccessToken(ctx, claims.ID, ttl); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}
