package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bistroboss/internal/auth"
)

func TestAuthService_IssueToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	svc := NewAuthService(jwtService, new(MockTokenStore))

	token, err := svc.IssueToken(context.Background(), auth.Identity{Email: "guest@bistro.test", Name: "Guest"})
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "guest@bistro.test", claims.Email)
	assert.Equal(t, "Guest", claims.Name)
}

func TestAuthService_Logout(t *testing.T) {
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		claims        *auth.Claims
		setupMock     func(*MockTokenStore)
		expectedError bool
	}{
		{
			name: "revokes for remaining lifetime",
			claims: &auth.Claims{Email: "guest@bistro.test", RegisteredClaims: jwt.RegisteredClaims{
				ID:        "jti-1",
				ExpiresAt: jwt.NewNumericDate(now.Add(40 * time.Minute)),
			}},
			setupMock: func(m *MockTokenStore) {
				m.On("BlacklistAccessToken", mock.Anything, "jti-1", 40*time.Minute).Return(nil)
			},
		},
		{
			name:      "token without id is ignored",
			claims:    &auth.Claims{Email: "guest@bistro.test"},
			setupMock: func(m *MockTokenStore) {},
		},
		{
			name: "store failure",
			claims: &auth.Claims{Email: "guest@bistro.test", RegisteredClaims: jwt.RegisteredClaims{
				ID:        "jti-2",
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
			}},
			setupMock: func(m *MockTokenStore) {
				m.On("BlacklistAccessToken", mock.Anything, "jti-2", time.Minute).Return(errors.New("redis down"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockTokenStore)
			tt.setupMock(store)

			svc := &authService{jwtService: auth.NewJWTService("test-secret"), tokenStore: store, now: func() time.Time { return now }}
			err := svc.Logout(context.Background(), tt.claims)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			store.AssertExpectations(t)
		})
	}
}
