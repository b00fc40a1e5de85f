package auth

import (
	"context"
	"net/http"
	"net/url"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "bistroboss/internal/errors"
	"bistroboss/internal/model"
)

const (
	tokenContextKey    = "token_claims"
	identityContextKey = "identity"
)

var (
	// ErrUnauthorized is the response for a missing, invalid, expired or revoked token.
	ErrUnauthorized = echo.NewHTTPError(http.StatusUnauthorized, "unauthorized access")
	// ErrForbidden is the response for an authenticated caller lacking the required identity or role.
	ErrForbidden = echo.NewHTTPError(http.StatusForbidden, "forbidden access")
)

// UserLookup resolves a user record by email. A nil user with no error means no such user.
type UserLookup interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

// Guard builds the middleware chain protecting privileged routes.
type Guard struct {
	jwtService *JWTService
	tokenStore TokenStoreInterface
	users      UserLookup
}

// NewGuard creates a guard backed by the token service, revocation store and user lookup.
func NewGuard(jwtService *JWTService, tokenStore TokenStoreInterface, users UserLookup) *Guard {
	return &Guard{
		jwtService: jwtService,
		tokenStore: tokenStore,
		users:      users,
	}
}

// VerifyToken requires an "Authorization: Bearer <token>" header carrying a valid,
// unexpired, unrevoked token and exposes its claims through ClaimsFrom.
func (g *Guard) VerifyToken() echo.MiddlewareFunc {
	verify := echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ContextKey:  tokenContextKey,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return g.jwtService.ValidateToken(token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return ErrUnauthorized
		},
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return verify(g.attachIdentity(next))
	}
}

func (g *Guard) attachIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(tokenContextKey).(*Claims)
		if !ok {
			return ErrUnauthorized
		}
		if g.tokenStore != nil && claims.ID != "" {
			revoked, _ := g.tokenStore.IsAccessTokenBlacklisted(c.Request().Context(), claims.ID)
			if revoked {
				return ErrUnauthorized
			}
		}
		c.Set(identityContextKey, claims)
		return next(c)
	}
}

// RequireAdmin admits the request only when the identity's user record has the admin role.
// It must run after VerifyToken. The lookup is not cached.
func (g *Guard) RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFrom(c)
			if !ok {
				return ErrForbidden
			}
			user, err := g.users.FindByEmail(c.Request().Context(), claims.Email)
			if err != nil {
				c.Logger().Errorf("admin check for %s: %v", claims.Email, err)
				httpErr := apperrors.MapErrorToHTTP(err)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			if !user.IsAdmin() {
				return ErrForbidden
			}
			return next(c)
		}
	}
}

// RequireSelf admits the request only when the named path parameter, percent-decoded,
// equals the identity's email. It must run after VerifyToken.
func (g *Guard) RequireSelf(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFrom(c)
			if !ok {
				return ErrForbidden
			}
			value, err := url.PathUnescape(c.Param(param))
			if err != nil || value != claims.Email {
				return ErrForbidden
			}
			return next(c)
		}
	}
}

// ClaimsFrom returns the identity attached by VerifyToken.
func ClaimsFrom(c echo.Context) (*Claims, bool) {
	claims, ok := c.Get(identityContextKey).(*Claims)
	return claims, ok
}
