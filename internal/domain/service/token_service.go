package service

import (
	"time"

	"mercado/internal/domain/entity"

	"github.com/google/uuid"
)

// TokenService defines the interface for issuing and validating access tokens.
// Token issuance for end users lives in the platform's identity service; this
// service only needs enough to validate tokens and to mint scoped tokens for
// tests and operational tooling.
type TokenService interface {
	// GenerateAccessToken creates a signed access token carrying the
	// principal's roles and admin scopes.
	GenerateAccessToken(userID uuid.UUID, roles entity.Roles, scopes TokenScopes) (string, error)

	// ValidateAccessToken checks a token string and resolves the acting principal.
	ValidateAccessToken(tokenString string) (entity.Principal, error)

	// AccessTokenDuration returns the configured access-token lifetime.
	AccessTokenDuration() time.Duration
}

// TokenScopes carries the optional admin scope IDs embedded in a token.
type TokenScopes struct {
	OrganizationID *uuid.UUID
	PlaceID        *uuid.UUID
	CompanyID      *uuid.UUID
}
