package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"auth-gateway/app/domain"
	"auth-gateway/app/mocks"
)

func newUserHandlerForTest(t *testing.T) (*UserHandler, *mocks.MockRegistrationUsecase, *mocks.MockVerificationUsecase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	registration := mocks.NewMockRegistrationUsecase(ctrl)
	verification := mocks.NewMockVerificationUsecase(ctrl)

	h := NewUserHandler(registration, verification, slog.Default())
	return h, registration, verification
}

func TestUserHandler_GetUser(t *testing.T) {
	user := domain.AuthenticatedUser{ExternalID: "ext-42", Email: "ada@example.com"}

	t.Run("returns identity with ensured profile", func(t *testing.T) {
		h, registration, _ := newUserHandlerForTest(t)
		registration.EXPECT().
			EnsureProfile(gomock.Any(), user).
			Return(&domain.UserProfile{ID: "p-1", ExternalID: "ext-42", Email: "ada@example.com"}, nil)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/v1/user", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("auth_user", user)

		require.NoError(t, h.GetUser(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "ext-42", resp["id"])
		assert.Equal(t, "ada@example.com", resp["email"])
	})

	t.Run("missing identity returns 401", func(t *testing.T) {
		h, _, _ := newUserHandlerForTest(t)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/v1/user", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, h.GetUser(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("profile service outage returns 502", func(t *testing.T) {
		h, registration, _ := newUserHandlerForTest(t)
		registration.EXPECT().
			EnsureProfile(gomock.Any(), user).
			Return(nil, domain.ErrUpstreamUnavailable)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/v1/user", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("auth_user", user)

		require.NoError(t, h.GetUser(c))
		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}

func TestUserHandler_IsVerified(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(m *mocks.MockVerificationUsecase)
		wantStatus int
	}{
		{
			name: "verified user",
			setupMocks: func(m *mocks.MockVerificationUsecase) {
				m.EXPECT().IsVerified(gomock.Any(), "ext-42").Return(true, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "unknown user returns 404",
			setupMocks: func(m *mocks.MockVerificationUsecase) {
				m.EXPECT().IsVerified(gomock.Any(), "ext-42").Return(false, domain.ErrIdentityNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "idp outage returns 502",
			setupMocks: func(m *mocks.MockVerificationUsecase) {
				m.EXPECT().IsVerified(gomock.Any(), "ext-42").Return(false, domain.ErrUpstreamUnavailable)
			},
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _, verification := newUserHandlerForTest(t)
			tt.setupMocks(verification)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/v1/user/ext-42/is-verified", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetParamNames("id")
			c.SetParamValues("ext-42")

			require.NoError(t, h.IsVerified(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestUserHandler_ResendVerificationEmail(t *testing.T) {
	t.Run("accepted on success", func(t *testing.T) {
		h, _, verification := newUserHandlerForTest(t)
		verification.EXPECT().Resend(gomock.Any(), "ext-42").Return(nil)

		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/v1/user/ext-42/resend-verification-email", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("ext-42")

		require.NoError(t, h.ResendVerificationEmail(c))
		assert.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("unknown user returns 404", func(t *testing.T) {
		h, _, verification := newUserHandlerForTest(t)
		verification.EXPECT().Resend(gomock.Any(), "ext-42").Return(domain.ErrIdentityNotFound)

		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/v1/user/ext-42/resend-verification-email", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("ext-42")

		require.NoError(t, h.ResendVerificationEmail(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
