package identity

import (
	"context"
	"errors"

	"media-gallery/internal/domain/repositories"
	"media-gallery/internal/pkg/config"
)

var (
	ErrNotConfigured = errors.New("identity provider not configured")
	ErrInvalidToken  = errors.New("invalid or expired token")
	ErrMissingToken  = errors.New("session token missing")
)

// NewVerifier prefers the hosted provider (OIDC) when an issuer is set and
// falls back to a shared-secret JWT.
func NewVerifier(cfg config.AuthConfig) repositories.IdentityVerifier {
	switch {
	case cfg.Issuer != "":
		return NewOIDCVerifier(context.Background(), cfg.Issuer, cfg.JWKSURL, cfg.Audience)
	case cfg.JWTSecret != "":
		return NewJWTVerifier(cfg.JWTSecret, cfg.Audience)
	default:
		return disabledVerifier{}
	}
}

type disabledVerifier struct{}

func (disabledVerifier) Verify(context.Context, string) (string, error) {
	return "", ErrNotConfigured
}
