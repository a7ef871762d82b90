package authenticating

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/magento-reporting-api/internal/config"
	"github.com/vfg2006/magento-reporting-api/internal/domain"
	"github.com/vfg2006/magento-reporting-api/pkg/apiErrors"
)

func newTestService(secret string, now time.Time) *Service {
	return &Service{
		cfg: &config.Config{Auth: config.Auth{Secret: secret}},
		now: func() time.Time { return now },
	}
}

func TestService_GenerateAndValidateToken(t *testing.T) {
	now := time.Date(2026, time.October, 14, 12, 0, 0, 0, time.UTC)
	service := newTestService("segredo", now)

	token, err := service.GenerateToken("  agent-1 ", time.Hour)
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "agent-1", claims.Subject)
	assert.Equal(t, "tools", claims.Scope)
	assert.Equal(t, now.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestService_ValidateToken(t *testing.T) {
	now := time.Date(2026, time.October, 14, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		setup    func(t *testing.T) (*Service, string)
		validate func(t *testing.T, claims *domain.Claims, err error)
	}{
		{
			name: "token expirado",
			setup: func(t *testing.T) (*Service, string) {
				token, err := newTestService("segredo", now.Add(-2*time.Hour)).GenerateToken("agent", time.Hour)
				require.NoError(t, err)
				return newTestService("segredo", now), token
			},
			validate: func(t *testing.T, claims *domain.Claims, err error) {
				assert.Nil(t, claims)
				assert.True(t, errors.Is(err, ErrExpiredToken))

				var authErr *AuthError
				require.True(t, errors.As(err, &authErr))
				assert.Equal(t, apiErrors.ErrExpiredToken, authErr.Code)
			},
		},
		{
			name: "assinado com outro segredo",
			setup: func(t *testing.T) (*Service, string) {
				token, err := newTestService("outro", now).GenerateToken("agent", time.Hour)
				require.NoError(t, err)
				return newTestService("segredo", now), token
			},
			validate: func(t *testing.T, claims *domain.Claims, err error) {
				assert.True(t, errors.Is(err, ErrInvalidToken))
			},
		},
		{
			name: "algoritmo none rejeitado",
			setup: func(t *testing.T) (*Service, string) {
				token := jwt.NewWithClaims(jwt.SigningMethodNone, domain.Claims{
					RegisteredClaims: jwt.RegisteredClaims{Subject: "agent", Issuer: tokenIssuer},
				})
				signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
				require.NoError(t, err)
				return newTestService("segredo", now), signed
			},
			validate: func(t *testing.T, claims *domain.Claims, err error) {
				assert.True(t, errors.Is(err, ErrInvalidToken))
			},
		},
		{
			name: "token vazio",
			setup: func(t *testing.T) (*Service, string) {
				return newTestService("segredo", now), " "
			},
			validate: func(t *testing.T, claims *domain.Claims, err error) {
				assert.True(t, errors.Is(err, ErrMissingToken))
			},
		},
		{
			name: "autenticação desabilitada",
			setup: func(t *testing.T) (*Service, string) {
				return newTestService("", now), "qualquer"
			},
			validate: func(t *testing.T, claims *domain.Claims, err error) {
				assert.True(t, errors.Is(err, ErrAuthDisabled))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, token := tt.setup(t)
			claims, err := service.ValidateToken(token)
			tt.validate(t, claims, err)
		})
	}
}

func TestService_GenerateToken_Errors(t *testing.T) {
	now := time.Now()

	_, err := newTestService("", now).GenerateToken("agent", time.Hour)
	assert.True(t, errors.Is(err, ErrAuthDisabled))

	_, err = newTestService("segredo", now).GenerateToken(" ", time.Hour)
	assert.Error(t, err)

	assert.False(t, newTestService("", now).Enabled())
	assert.True(t, newTestService("segredo", now).Enabled())
}
