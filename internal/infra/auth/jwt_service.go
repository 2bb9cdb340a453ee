// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"mercado/config"
	"mercado/internal/domain/entity"
	"mercado/internal/domain/service"
)

const defaultAccessTTL = 15 * time.Minute

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret string
	accessTTL    time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{
		accessSecret: cfg.SecretKey.Access,
		accessTTL:    defaultAccessTTL,
	}, nil
}

// GenerateAccessToken creates a signed access token carrying the principal's
// roles and admin scopes.
func (s *jwtService) GenerateAccessToken(userID uuid.UUID, roles entity.Roles, scopes service.TokenScopes) (string, error) {
	claims := jwt.MapClaims{
		"sub":   userID.String(),
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(s.accessTTL).Unix(),
		"roles": roles.ToStrings(),
	}
	if scopes.OrganizationID != nil {
		claims["org"] = scopes.OrganizationID.String()
	}
	if scopes.PlaceID != nil {
		claims["place"] = scopes.PlaceID.String()
	}
	if scopes.CompanyID != nil {
		claims["company"] = scopes.CompanyID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.accessSecret))
}

// ValidateAccessToken checks a token string and resolves the acting principal.
func (s *jwtService) ValidateAccessToken(tokenString string) (entity.Principal, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Reject tokens signed with anything but the expected HMAC family.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.accessSecret), nil
	})
	if err != nil {
		return entity.Principal{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return entity.Principal{}, jwt.ErrTokenInvalidClaims
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return entity.Principal{}, err
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return entity.Principal{}, errors.New("token subject is not a valid UUID")
	}

	principal := entity.Principal{
		UserID:         userID,
		Roles:          entity.RolesFromStrings(claimStrings(claims, "roles")),
		OrganizationID: claimUUID(claims, "org"),
		PlaceID:        claimUUID(claims, "place"),
		CompanyID:      claimUUID(claims, "company"),
	}

	return principal, nil
}

// AccessTokenDuration returns the configured access-token lifetime.
func (s *jwtService) AccessTokenDuration() time.Duration {
	return s.accessTTL
}

func claimStrings(claims jwt.MapClaims, key string) []string {
	raw, ok := claims[key].([]any)
	if !ok {
		return nil
	}

	result := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			result = append(result, s)
		}
	}

	return result
}

func claimUUID(claims jwt.MapClaims, key string) *uuid.UUID {
	raw, ok := claims[key].(string)
	if !ok {
		return nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}

	return &id
}
