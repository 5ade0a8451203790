package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"auth-gateway/app/domain"
)

// authUserKey is the echo context key the authenticated user is stored
// under.
const authUserKey = "auth_user"

// AuthMiddleware enforces the gateway side of the bearer contract: a token
// must be present, well-formed and unexpired, and its subject becomes the
// caller identity. Cryptographic signature verification is owned by the
// upstream authorization layer in front of this service; the gateway only
// enforces the shape it depends on.
type AuthMiddleware struct {
	logger *slog.Logger
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		logger: logger,
	}
}

// RequireBearer rejects requests without a usable bearer token and stashes
// the extracted caller identity in the request context.
func (m *AuthMiddleware) RequireBearer() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := bearerToken(c.Request().Header.Get("Authorization"))
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "bearer token required",
				})
			}

			user, err := m.extractUser(raw)
			if err != nil {
				m.logger.Info("rejected bearer token", "error", err)
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "invalid or expired token",
				})
			}

			c.Set(authUserKey, user)
			return next(c)
		}
	}
}

func (m *AuthMiddleware) extractUser(raw string) (domain.AuthenticatedUser, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return domain.AuthenticatedUser{}, err
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return domain.AuthenticatedUser{}, jwt.ErrTokenInvalidClaims
	}
	if exp.Before(time.Now()) {
		return domain.AuthenticatedUser{}, jwt.ErrTokenExpired
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return domain.AuthenticatedUser{}, jwt.ErrTokenInvalidSubject
	}

	email, _ := claims["email"].(string)

	return domain.AuthenticatedUser{
		ExternalID: sub,
		Email:      email,
	}, nil
}

// AuthenticatedUserFrom returns the caller identity the middleware stored.
func AuthenticatedUserFrom(c echo.Context) (domain.AuthenticatedUser, bool) {
	user, ok := c.Get(authUserKey).(domain.AuthenticatedUser)
	return user, ok
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}
