package authenticating

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/magento-reporting-api/internal/config"
	"github.com/vfg2006/magento-reporting-api/internal/domain"
	"github.com/vfg2006/magento-reporting-api/pkg/apiErrors"
)

const (
	DefaultTokenTTL = 24 * time.Hour
	tokenIssuer     = "magento-reporting-api"
)

type Authenticator interface {
	Enabled() bool
	GenerateToken(subject string, ttl time.Duration) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	cfg *config.Config
	now func() time.Time
}

// NewService cria o autenticador. Sem AUTH_SECRET a autenticação fica desabilitada.
func NewService(cfg *config.Config) Authenticator {
	return &Service{
		cfg: cfg,
		now: time.Now,
	}
}

func (s *Service) Enabled() bool {
	return s.cfg.Auth.Secret != ""
}

func (s *Service) GenerateToken(subject string, ttl time.Duration) (string, error) {
	if !s.Enabled() {
		return "", NewAuthError(ErrAuthDisabled, apiErrors.ErrInternalServer, "AUTH_SECRET não configurado")
	}

	subject = strings.TrimSpace(subject)
	if subject == "" {
		return "", NewAuthError(ErrInvalidToken, apiErrors.ErrMissingRequiredData, "subject é obrigatório")
	}

	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	now := s.now()
	claims := domain.Claims{
		Scope: "tools",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.Secret))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	if !s.Enabled() {
		return nil, NewAuthError(ErrAuthDisabled, apiErrors.ErrInternalServer, "")
	}

	if strings.TrimSpace(tokenString) == "" {
		return nil, NewAuthError(ErrMissingToken, apiErrors.ErrInvalidToken, "")
	}

	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	}, jwt.WithTimeFunc(s.now), jwt.WithIssuer(tokenIssuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	return claims, nil
}
