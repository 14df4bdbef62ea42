package usecase

import (
	"blog-api/pkg/apperr"
	"blog-api/services/webapi/internal/entity"
)

// Caller is the identity taken from a validated bearer token. The zero value
// is an anonymous caller.
type Caller struct {
	UserID   string
	Username string
	Role     entity.UserRole
}

func (c Caller) Authenticated() bool {
	return c.UserID != ""
}

// RequireRole passes when the caller holds one of roles.
func RequireRole(caller Caller, roles ...entity.UserRole) error {
	if !caller.Authenticated() {
		return apperr.Unauthenticated("Authentication required")
	}
	for _, role := range roles {
		if caller.Role == role {
			return nil
		}
	}
	return apperr.Forbidden("Insufficient permissions")
}

// RequireOwner passes when the caller is the resource owner.
func RequireOwner(caller Caller, ownerID string) error {
	if !caller.Authenticated() {
		return apperr.Unauthenticated("Authentication required")
	}
	if caller.UserID != ownerID {
		return apperr.Forbidden("You do not own this resource")
	}
	return nil
}
