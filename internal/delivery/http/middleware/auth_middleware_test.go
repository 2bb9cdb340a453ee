package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"mercado/config"
	"mercado/internal/domain/entity"
	"mercado/internal/domain/service"
	"mercado/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return tokenSvc
}

func TestAuthMiddleware_Authenticate_SetsPrincipal(t *testing.T) {
	tokenSvc := newTestTokenService(t)
	authMiddleware := NewAuthMiddleware(tokenSvc)

	userID := uuid.New()
	companyID := uuid.New()
	token, err := tokenSvc.GenerateAccessToken(userID, entity.Roles{entity.RoleCompanyAdmin}, service.TokenScopes{
		CompanyID: &companyID,
	})
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var captured entity.Principal
	next := func(c echo.Context) error {
		captured = c.Get(ContextKeyPrincipal).(entity.Principal)

		return c.NoContent(http.StatusOK)
	}

	err = authMiddleware.Authenticate(next)(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, captured.UserID)
	assert.True(t, captured.Roles.Contains(entity.RoleCompanyAdmin))
	require.NotNil(t, captured.CompanyID)
	assert.Equal(t, companyID, *captured.CompanyID)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	authMiddleware := NewAuthMiddleware(newTestTokenService(t))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		t.Fatal("next handler should not be called")

		return nil
	}

	err := authMiddleware.Authenticate(next)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_TOKEN")
}

func TestAuthMiddleware_Authenticate_BadToken(t *testing.T) {
	authMiddleware := NewAuthMiddleware(newTestTokenService(t))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		t.Fatal("next handler should not be called")

		return nil
	}

	err := authMiddleware.Authenticate(next)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	authMiddleware := NewAuthMiddleware(newTestTokenService(t))

	tests := []struct {
		name     string
		roles    entity.Roles
		required entity.Role
		wantCode int
	}{
		{name: "company admin allowed", roles: entity.Roles{entity.RoleCompanyAdmin}, required: entity.RoleCompanyAdmin, wantCode: http.StatusOK},
		{name: "super admin outranks", roles: entity.Roles{entity.RoleSuperAdmin}, required: entity.RoleCompanyAdmin, wantCode: http.StatusOK},
		{name: "public user denied", roles: entity.Roles{entity.RolePublicUser}, required: entity.RoleCompanyAdmin, wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.Set(ContextKeyPrincipal, entity.Principal{UserID: uuid.New(), Roles: tt.roles})

			next := func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			}

			err := authMiddleware.RequireRole(tt.required)(next)(c)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
