package gateway

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"auth-gateway/app/domain"
	"auth-gateway/app/mocks"
)

func cachedToken() domain.AdminToken {
	return domain.AdminToken{Value: "cached-tok", ExpiresAt: time.Now().Add(time.Minute)}
}

func freshToken() domain.AdminToken {
	return domain.AdminToken{Value: "fresh-tok", ExpiresAt: time.Now().Add(time.Minute)}
}

func newGatewayForTest(t *testing.T) (*IdentityGateway, *mocks.MockKeycloakAPI, *mocks.MockAdminTokenSource) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mocks.NewMockKeycloakAPI(ctrl)
	tokens := mocks.NewMockAdminTokenSource(ctrl)

	g := NewIdentityGateway(api, tokens, slog.Default()).(*IdentityGateway)
	return g, api, tokens
}

func TestIdentityGateway_CreateIdentity(t *testing.T) {
	req := &domain.RegistrationRequest{Email: "ada@example.com", Password: "supersecret"}

	t.Run("returns external id with the token that created it", func(t *testing.T) {
		g, api, tokens := newGatewayForTest(t)

		tokens.EXPECT().Token(gomock.Any()).Return(cachedToken(), nil)
		api.EXPECT().
			CreateUser(gomock.Any(), req, "cached-tok").
			Return("ext-42", nil)

		provisioned, err := g.CreateIdentity(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "ext-42", provisioned.ExternalID)
		assert.Equal(t, "cached-tok", provisioned.AdminToken.Value)
	})

	t.Run("stale token retried exactly once", func(t *testing.T) {
		g, api, tokens := newGatewayForTest(t)

		first := tokens.EXPECT().Token(gomock.Any()).Return(cachedToken(), nil)
		api.EXPECT().
			CreateUser(gomock.Any(), req, "cached-tok").
			Return("", domain.ErrUpstreamAuth)
		tokens.EXPECT().Invalidate(cachedTokenMatcher{})
		tokens.EXPECT().Token(gomock.Any()).Return(freshToken(), nil).After(first)
		api.EXPECT().
			CreateUser(gomock.Any(), req, "fresh-tok").
			Return("ext-42", nil)

		provisioned, err := g.CreateIdentity(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "fresh-tok", provisioned.AdminToken.Value)
	})

	t.Run("second rejection surfaces without a third attempt", func(t *testing.T) {
		g, api, tokens := newGatewayForTest(t)

		tokens.EXPECT().Token(gomock.Any()).Return(cachedToken(), nil)
		api.EXPECT().
			CreateUser(gomock.Any(), req, "cached-tok").
			Return("", domain.ErrUpstreamAuth)
		tokens.EXPECT().Invalidate(gomock.Any()).Times(1)
		tokens.EXPECT().Token(gomock.Any()).Return(freshToken(), nil)
		api.EXPECT().
			CreateUser(gomock.Any(), req, "fresh-tok").
			Return("", domain.ErrUpstreamAuth).
			Times(1)

		_, err := g.CreateIdentity(context.Background(), req)
		assert.ErrorIs(t, err, domain.ErrUpstreamAuth)
	})

	t.Run("duplicate surfaces without retry", func(t *testing.T) {
		g, api, tokens := newGatewayForTest(t)

		tokens.EXPECT().Token(gomock.Any()).Return(cachedToken(), nil)
		api.EXPECT().
			CreateUser(gomock.Any(), req, "cached-tok").
			Return("", domain.ErrDuplicateIdentity).
			Times(1)

		_, err := g.CreateIdentity(context.Background(), req)
		assert.ErrorIs(t, err, domain.ErrDuplicateIdentity)
	})

	t.Run("token acquisition failure surfaces", func(t *testing.T) {
		g, _, tokens := newGatewayForTest(t)

		tokens.EXPECT().Token(gomock.Any()).Return(domain.AdminToken{}, domain.ErrIdpRejectedAdmin)

		_, err := g.CreateIdentity(context.Background(), req)
		assert.ErrorIs(t, err, domain.ErrIdpRejectedAdmin)
	})
}

// cachedTokenMatcher matches any token whose value is the cached one,
// ignoring the expiry timestamp.
type cachedTokenMatcher struct{}

func (cachedTokenMatcher) Matches(x any) bool {
	tok, ok := x.(domain.AdminToken)
	return ok && tok.Value == "cached-tok"
}

func (cachedTokenMatcher) String() string { return "admin token with cached value" }

func TestIdentityGateway_DeleteIdentity(t *testing.T) {
	t.Run("absent identity is success", func(t *testing.T) {
		g, api, tokens := newGatewayForTest(t)

		tokens.EXPECT().Token(gomock.Any()).Return(cachedToken(), nil)
		api.EXPECT().
			DeleteUser(gomock.Any(), "ext-42", "cached-tok").
			Return(domain.ErrIdentityNotFound)

		assert.NoError(t, g.DeleteIdentity(context.Background(), "ext-42"))
	})

	t.Run("upstream outage surfaces", func(t *testing.T) {
		g, api, tokens := newGatewayForTest(t)

		tokens.EXPECT().Token(gomock.Any()).Return(cachedToken(), nil)
		api.EXPECT().
			DeleteUser(gomock.Any(), "ext-42", "cached-tok").
			Return(domain.ErrUpstreamUnavailable)

		assert.ErrorIs(t, g.DeleteIdentity(context.Background(), "ext-42"), domain.ErrUpstreamUnavailable)
	})
}

func TestIdentityGateway_GetIdentity(t *testing.T) {
	g, api, tokens := newGatewayForTest(t)

	tokens.EXPECT().Token(gomock.Any()).Return(cachedToken(), nil)
	api.EXPECT().
		GetUser(gomock.Any(), "ext-42", "cached-tok").
		Return(&domain.IdentityRecord{ExternalID: "ext-42", EmailVerified: true}, nil)

	record, err := g.GetIdentity(context.Background(), "ext-42")
	require.NoError(t, err)
	assert.True(t, record.EmailVerified)
}

func TestIdentityGateway_SendVerificationEmail(t *testing.T) {
	g, api, tokens := newGatewayForTest(t)

	tokens.EXPECT().Token(gomock.Any()).Return(cachedToken(), nil)
	api.EXPECT().
		SendVerifyEmail(gomock.Any(), "ext-42", "cached-tok").
		Return(nil)

	assert.NoError(t, g.SendVerificationEmail(context.Background(), "ext-42"))
}

func TestIdentityGateway_IssuePasswordToken(t *testing.T) {
	g, api, _ := newGatewayForTest(t)
	creds := domain.LoginCredentials{Email: "ada@example.com", Password: "supersecret"}

	api.EXPECT().
		IssuePasswordToken(gomock.Any(), creds).
		Return(nil, domain.ErrInvalidCredentials)

	_, err := g.IssuePasswordToken(context.Background(), creds)
	assert.True(t, errors.Is(err, domain.ErrInvalidCredentials))
}
