package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"auth-gateway/app/domain"
	"auth-gateway/app/mocks"
)

func performRequest(t *testing.T, handler echo.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler(c))
	return rec
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMocks func(m *mocks.MockLoginUsecase)
		wantStatus int
	}{
		{
			name: "successful login returns tokens",
			body: `{"email":"ada@example.com","password":"supersecret"}`,
			setupMocks: func(m *mocks.MockLoginUsecase) {
				m.EXPECT().
					Login(gomock.Any(), domain.LoginCredentials{Email: "ada@example.com", Password: "supersecret"}).
					Return(&domain.TokenResponse{AccessToken: "access", TokenType: "Bearer"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "invalid credentials return 401",
			body: `{"email":"ada@example.com","password":"wrong"}`,
			setupMocks: func(m *mocks.MockLoginUsecase) {
				m.EXPECT().
					Login(gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrInvalidCredentials)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "upstream outage returns 502",
			body: `{"email":"ada@example.com","password":"supersecret"}`,
			setupMocks: func(m *mocks.MockLoginUsecase) {
				m.EXPECT().
					Login(gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrUpstreamUnavailable)
			},
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "malformed body returns 400 without touching the usecase",
			body:       `{not json`,
			setupMocks: func(m *mocks.MockLoginUsecase) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			login := mocks.NewMockLoginUsecase(ctrl)
			tt.setupMocks(login)

			h := NewAuthHandler(mocks.NewMockRegistrationUsecase(ctrl), login, slog.Default())
			rec := performRequest(t, h.Login, http.MethodPost, "/v1/auth/login", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAuthHandler_Register(t *testing.T) {
	body := `{"email":"ada@example.com","password":"supersecret","firstName":"Ada","lastName":"Lovelace"}`

	tests := []struct {
		name         string
		outcome      *domain.RegistrationOutcome
		wantStatus   int
		wantRespStat string
		wantWarning  bool
	}{
		{
			name: "succeeded returns 201",
			outcome: &domain.RegistrationOutcome{
				Status:  domain.SagaSucceeded,
				Profile: &domain.UserProfile{ID: "p-1", ExternalID: "ext-42"},
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "succeeded with verification warning",
			outcome: &domain.RegistrationOutcome{
				Status:              domain.SagaSucceeded,
				Profile:             &domain.UserProfile{ID: "p-1"},
				VerificationWarning: domain.ErrUpstreamUnavailable,
			},
			wantStatus:  http.StatusCreated,
			wantWarning: true,
		},
		{
			name: "duplicate rejection returns 409",
			outcome: &domain.RegistrationOutcome{
				Status: domain.SagaRejected,
				Reason: domain.NewSagaError(domain.StepCreateIdentity, "", domain.ErrDuplicateIdentity),
			},
			wantStatus:   http.StatusConflict,
			wantRespStat: string(domain.SagaRejected),
		},
		{
			name: "upstream rejection returns 502",
			outcome: &domain.RegistrationOutcome{
				Status: domain.SagaRejected,
				Reason: domain.NewSagaError(domain.StepCreateIdentity, "", domain.ErrUpstreamUnavailable),
			},
			wantStatus:   http.StatusBadGateway,
			wantRespStat: string(domain.SagaRejected),
		},
		{
			name: "compensated returns 502 with outcome category",
			outcome: &domain.RegistrationOutcome{
				Status:     domain.SagaCompensated,
				ExternalID: "ext-42",
				Reason:     domain.NewSagaError(domain.StepCreateProfile, "ext-42", domain.ErrUpstreamUnavailable),
			},
			wantStatus:   http.StatusBadGateway,
			wantRespStat: string(domain.SagaCompensated),
		},
		{
			name: "compensation failure returns 500 with outcome category",
			outcome: &domain.RegistrationOutcome{
				Status:     domain.SagaCompensationFailed,
				ExternalID: "ext-42",
				CompensationErr: &domain.CompensationError{
					ExternalID: "ext-42",
					Cause:      domain.ErrUpstreamUnavailable,
				},
			},
			wantStatus:   http.StatusInternalServerError,
			wantRespStat: string(domain.SagaCompensationFailed),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			registration := mocks.NewMockRegistrationUsecase(ctrl)
			registration.EXPECT().
				Register(gomock.Any(), gomock.Any()).
				Return(tt.outcome)

			h := NewAuthHandler(registration, mocks.NewMockLoginUsecase(ctrl), slog.Default())
			rec := performRequest(t, h.Register, http.MethodPost, "/v1/auth/register", body)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusCreated {
				var resp RegisterResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				if tt.wantWarning {
					assert.NotEmpty(t, resp.Warning)
				} else {
					assert.Empty(t, resp.Warning)
				}
				return
			}

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantRespStat, resp.Status)
		})
	}
}
