package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-key"))
	require.NoError(t, err)
	return signed
}

func TestAuthMiddleware_RequireBearer(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
		wantStatus int
		wantID     string
		wantEmail  string
	}{
		{
			name: "valid token passes with extracted identity",
			authHeader: "Bearer " + signedToken(t, jwt.MapClaims{
				"sub":   "ext-42",
				"email": "ada@example.com",
				"exp":   time.Now().Add(time.Hour).Unix(),
			}),
			wantStatus: http.StatusOK,
			wantID:     "ext-42",
			wantEmail:  "ada@example.com",
		},
		{
			name:       "missing header rejected",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "non-bearer scheme rejected",
			authHeader: "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "garbage token rejected",
			authHeader: "Bearer not.a.jwt",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "expired token rejected",
			authHeader: "Bearer " + signedToken(t, jwt.MapClaims{
				"sub": "ext-42",
				"exp": time.Now().Add(-time.Minute).Unix(),
			}),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "token without expiry rejected",
			authHeader: "Bearer " + signedToken(t, jwt.MapClaims{
				"sub": "ext-42",
			}),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "token without subject rejected",
			authHeader: "Bearer " + signedToken(t, jwt.MapClaims{
				"exp": time.Now().Add(time.Hour).Unix(),
			}),
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/v1/user", nil)
			if tt.authHeader != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.authHeader)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			m := NewAuthMiddleware(slog.Default())
			handler := m.RequireBearer()(func(c echo.Context) error {
				user, ok := AuthenticatedUserFrom(c)
				require.True(t, ok)
				assert.Equal(t, tt.wantID, user.ExternalID)
				assert.Equal(t, tt.wantEmail, user.Email)
				return c.NoContent(http.StatusOK)
			})

			require.NoError(t, handler(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
