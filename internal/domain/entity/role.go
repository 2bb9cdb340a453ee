// Package entity contains the core business objects of the project.
package entity

import (
	"slices"

	"github.com/google/uuid"
)

// Role represents a position in the fixed marketplace role hierarchy.
type Role string

const (
	// RoleSuperAdmin has platform-wide access.
	RoleSuperAdmin Role = "SUPER_ADMIN"
	// RoleOrganizationAdmin manages one organization and all of its places.
	RoleOrganizationAdmin Role = "ORGANIZATION_ADMIN"
	// RolePlaceAdmin manages one place and all of its companies.
	RolePlaceAdmin Role = "PLACE_ADMIN"
	// RoleCompanyAdmin manages a single company.
	RoleCompanyAdmin Role = "COMPANY_ADMIN"
	// RolePublicUser is the unprivileged default.
	RolePublicUser Role = "PUBLIC_USER"
)

// roleRank orders roles from most to least privileged.
var roleRank = map[Role]int{
	RoleSuperAdmin:        4,
	RoleOrganizationAdmin: 3,
	RolePlaceAdmin:        2,
	RoleCompanyAdmin:      1,
	RolePublicUser:        0,
}

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	_, ok := roleRank[r]

	return ok
}

// AtLeast reports whether the role sits at or above other in the hierarchy.
func (r Role) AtLeast(other Role) bool {
	return roleRank[r] >= roleRank[other]
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// Highest returns the most privileged role in the slice, or RolePublicUser when empty.
func (rs Roles) Highest() Role {
	highest := RolePublicUser
	for _, r := range rs {
		if r.AtLeast(highest) {
			highest = r
		}
	}

	return highest
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}

// Principal is the acting identity resolved from an access token.
// Scope IDs are only meaningful for the matching admin role.
type Principal struct {
	UserID         uuid.UUID
	Roles          Roles
	OrganizationID *uuid.UUID
	PlaceID        *uuid.UUID
	CompanyID      *uuid.UUID
}
