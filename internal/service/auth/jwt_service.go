package auth

import (
	"context"
	"time"

	"github.com/phrazzld/sahayak-api/internal/domain"
)

// JWTService verifies the identity provider's access tokens.
type JWTService interface {
	// ValidateToken validates the access token and returns the caller's identity.
	// A valid token without a subject, such as a project API key, yields an
	// anonymous identity. Returns ErrMissingToken, ErrExpiredToken,
	// ErrTokenNotYetValid, ErrInvalidSubject or ErrInvalidToken when
	// validation fails.
	ValidateToken(ctx context.Context, tokenString string) (domain.Identity, error)

	// GenerateToken signs a token for identity with the given lifetime, in the
	// same shape the identity provider issues. An anonymous identity produces
	// an API-key style token. Used by tooling and tests.
	GenerateToken(ctx context.Context, identity domain.Identity, lifetime time.Duration) (string, error)
}

// UserMetadata is the provider-managed profile data embedded in a token.
type UserMetadata struct {
	FullName string `json:"full_name,omitempty"`
}
