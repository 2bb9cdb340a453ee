// Package service declares the domain-level service contracts implemented by
// the infrastructure and usecase layers.
package service

import (
	"context"

	"mercado/internal/domain/entity"

	"github.com/google/uuid"
)

// Authorizer decides whether an acting principal may manage a company.
// All mutation entry points for delivery and schedule configuration go
// through this single capability instead of re-deriving role scope locally.
type Authorizer interface {
	// CanManageCompany reports whether the principal's role and scope cover
	// the target company. A company that does not exist yields an error.
	CanManageCompany(ctx context.Context, principal entity.Principal, companyID uuid.UUID) (bool, error)
}
