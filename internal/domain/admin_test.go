package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }
func strPtr(s string) *string { return &s }

func TestAuthorizeAdminCreate(t *testing.T) {
	super := AdminIdentity{ID: "a1", Email: "root@surfcamp.lk", Role: RoleSuperAdmin}
	regular := AdminIdentity{ID: "a2", Email: "staff@surfcamp.lk", Role: RoleAdmin}

	assert.NoError(t, AuthorizeAdminCreate(super))

	err := AuthorizeAdminCreate(regular)
	require.Error(t, err)
	assert.IsType(t, &AuthorizationError{}, err)
}

func TestAuthorizeAdminUpdate(t *testing.T) {
	super := AdminIdentity{ID: "a1", Role: RoleSuperAdmin}
	regular := AdminIdentity{ID: "a2", Role: RoleAdmin}

	t.Run("regular admin cannot update accounts", func(t *testing.T) {
		err := AuthorizeAdminUpdate(regular, "a3", AdminChanges{Name: strPtr("New Name")})
		assert.IsType(t, &AuthorizationError{}, err)
	})

	t.Run("super admin updates another account", func(t *testing.T) {
		role := RoleSuperAdmin
		assert.NoError(t, AuthorizeAdminUpdate(super, "a3", AdminChanges{Role: &role, IsActive: boolPtr(false)}))
	})

	t.Run("super admin may rename self", func(t *testing.T) {
		assert.NoError(t, AuthorizeAdminUpdate(super, "a1", AdminChanges{Name: strPtr("Root")}))
	})

	t.Run("self role change rejected", func(t *testing.T) {
		role := RoleAdmin
		err := AuthorizeAdminUpdate(super, "a1", AdminChanges{Role: &role})
		assert.IsType(t, &AuthorizationError{}, err)
	})

	t.Run("self deactivation rejected", func(t *testing.T) {
		err := AuthorizeAdminUpdate(super, "a1", AdminChanges{IsActive: boolPtr(false)})
		assert.IsType(t, &AuthorizationError{}, err)
	})
}

func TestAuthorizeAdminDelete(t *testing.T) {
	super := AdminIdentity{ID: "a1", Role: RoleSuperAdmin}
	regular := AdminIdentity{ID: "a2", Role: RoleAdmin}

	assert.NoError(t, AuthorizeAdminDelete(super, "a2"))
	assert.IsType(t, &AuthorizationError{}, AuthorizeAdminDelete(regular, "a1"))
	assert.IsType(t, &AuthorizationError{}, AuthorizeAdminDelete(super, "a1"), "self delete must be rejected")
}

func TestParseAdminRole(t *testing.T) {
	for _, valid := range []string{"admin", "super_admin"} {
		_, ok := ParseAdminRole(valid)
		assert.True(t, ok, valid)
	}
	_, ok := ParseAdminRole("owner")
	assert.False(t, ok)
}
