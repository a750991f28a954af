package domain

import "time"

type AdminRole string

const (
	RoleAdmin      AdminRole = "admin"
	RoleSuperAdmin AdminRole = "super_admin"
)

func ParseAdminRole(s string) (AdminRole, bool) {
	switch AdminRole(s) {
	case RoleAdmin, RoleSuperAdmin:
		return AdminRole(s), true
	default:
		return "", false
	}
}

type Admin struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         AdminRole `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// AdminIdentity is the acting admin resolved from the session. Every
// operation that needs authorization takes it as an explicit argument;
// nothing reads it from ambient state.
type AdminIdentity struct {
	ID    string
	Email string
	Role  AdminRole
}

// AdminChanges describes the mutation an acting admin is requesting on a
// target admin account. Nil fields are left unchanged.
type AdminChanges struct {
	Name     *string    `json:"name,omitempty" validate:"omitempty,max=200"`
	Role     *AdminRole `json:"role,omitempty" validate:"omitempty,oneof=admin super_admin"`
	IsActive *bool      `json:"is_active,omitempty"`
}

// AuthorizeAdminCreate checks whether the acting admin may create a new
// admin account.
func AuthorizeAdminCreate(actor AdminIdentity) error {
	if actor.Role != RoleSuperAdmin {
		return &AuthorizationError{Message: "super admin role required to create admin accounts"}
	}
	return nil
}

// AuthorizeAdminUpdate checks whether the acting admin may apply the
// requested changes to the target account. Only a super admin may touch
// another admin, and no admin may alter its own role or active flag.
func AuthorizeAdminUpdate(actor AdminIdentity, targetID string, changes AdminChanges) error {
	if actor.Role != RoleSuperAdmin {
		return &AuthorizationError{Message: "super admin role required to modify admin accounts"}
	}
	if actor.ID == targetID && (changes.Role != nil || changes.IsActive != nil) {
		return &AuthorizationError{Message: "admins cannot change their own role or active status"}
	}
	return nil
}

// AuthorizeAdminDelete checks whether the acting admin may deactivate the
// target account. Accounts are deactivated, never purged, and never by
// their own owner.
func AuthorizeAdminDelete(actor AdminIdentity, targetID string) error {
	if actor.Role != RoleSuperAdmin {
		return &AuthorizationError{Message: "super admin role required to delete admin accounts"}
	}
	if actor.ID == targetID {
		return &AuthorizationError{Message: "admins cannot deactivate their own account"}
	}
	return nil
}
