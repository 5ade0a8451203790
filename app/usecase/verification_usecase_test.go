package usecase

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"auth-gateway/app/domain"
	"auth-gateway/app/mocks"
)

func TestVerificationUseCase_IsVerified(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(m *mocks.MockIdentityProvider)
		want       bool
		wantErr    bool
	}{
		{
			name: "verified identity",
			setupMocks: func(m *mocks.MockIdentityProvider) {
				m.EXPECT().
					GetIdentity(gomock.Any(), "ext-1").
					Return(&domain.IdentityRecord{ExternalID: "ext-1", EmailVerified: true}, nil)
			},
			want: true,
		},
		{
			name: "unverified identity",
			setupMocks: func(m *mocks.MockIdentityProvider) {
				m.EXPECT().
					GetIdentity(gomock.Any(), "ext-1").
					Return(&domain.IdentityRecord{ExternalID: "ext-1"}, nil)
			},
			want: false,
		},
		{
			name: "unknown identity",
			setupMocks: func(m *mocks.MockIdentityProvider) {
				m.EXPECT().
					GetIdentity(gomock.Any(), "ext-1").
					Return(nil, domain.ErrIdentityNotFound)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			identity := mocks.NewMockIdentityProvider(ctrl)
			tt.setupMocks(identity)

			uc := NewVerificationUseCase(identity, slog.Default())
			got, err := uc.IsVerified(context.Background(), "ext-1")

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVerificationUseCase_Resend(t *testing.T) {
	ctrl := gomock.NewController(t)
	identity := mocks.NewMockIdentityProvider(ctrl)
	identity.EXPECT().
		SendVerificationEmail(gomock.Any(), "ext-1").
		Return(nil)

	uc := NewVerificationUseCase(identity, slog.Default())
	assert.NoError(t, uc.Resend(context.Background(), "ext-1"))
}

func TestVerificationUseCase_Resend_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	identity := mocks.NewMockIdentityProvider(ctrl)
	identity.EXPECT().
		SendVerificationEmail(gomock.Any(), "ext-1").
		Return(domain.ErrUpstreamUnavailable)

	uc := NewVerificationUseCase(identity, slog.Default())
	assert.ErrorIs(t, uc.Resend(context.Background(), "ext-1"), domain.ErrUpstreamUnavailable)
}
