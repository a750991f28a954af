package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tharaka1103/Hotel-Website-sub000/internal/domain"
)

type memAdminRepo struct {
	admins map[string]*domain.Admin
	nextID int
}

func newMemAdminRepo() *memAdminRepo {
	return &memAdminRepo{admins: make(map[string]*domain.Admin)}
}

func (r *memAdminRepo) Create(ctx context.Context, a *domain.Admin) error {
	r.nextID++
	a.ID = fmt.Sprintf("adm-%d", r.nextID)
	a.IsActive = true
	a.CreatedAt = time.Now()
	stored := *a
	r.admins[a.ID] = &stored
	return nil
}

func (r *memAdminRepo) GetByID(ctx context.Context, id string) (*domain.Admin, error) {
	a, ok := r.admins[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *memAdminRepo) FindByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	for _, a := range r.admins {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memAdminRepo) List(ctx context.Context, limit, offset int) ([]domain.Admin, error) {
	var out []domain.Admin
	for _, a := range r.admins {
		out = append(out, *a)
	}
	return out, nil
}

func (r *memAdminRepo) Update(ctx context.Context, id string, changes domain.AdminChanges) (*domain.Admin, error) {
	a, ok := r.admins[id]
	if !ok {
		return nil, nil
	}
	if changes.Name != nil {
		a.Name = *changes.Name
	}
	if changes.Role != nil {
		a.Role = *changes.Role
	}
	if changes.IsActive != nil {
		a.IsActive = *changes.IsActive
	}
	cp := *a
	return &cp, nil
}

func (r *memAdminRepo) Deactivate(ctx context.Context, id string) (bool, error) {
	a, ok := r.admins[id]
	if !ok {
		return false, nil
	}
	a.IsActive = false
	return true, nil
}

func adminFixture(t *testing.T) (AdminService, *memAdminRepo, domain.AdminIdentity) {
	t.Helper()
	repo := newMemAdminRepo()
	svc := NewAdminService(repo)

	// Seed the super admin the way main does at startup.
	bootstrap := domain.AdminIdentity{Role: domain.RoleSuperAdmin}
	root, err := svc.Create(context.Background(), bootstrap, &domain.CreateAdminRequest{
		Email:    "root@surfcamp.lk",
		Password: "correct horse",
		Name:     "Root",
		Role:     string(domain.RoleSuperAdmin),
	})
	require.NoError(t, err)

	return svc, repo, domain.AdminIdentity{ID: root.ID, Email: root.Email, Role: root.Role}
}

func TestAdminLogin(t *testing.T) {
	svc, repo, super := adminFixture(t)
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		admin, err := svc.Login(ctx, &domain.LoginRequest{Email: "Root@Surfcamp.lk ", Password: "correct horse"})
		require.NoError(t, err)
		assert.Equal(t, super.ID, admin.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, &domain.LoginRequest{Email: "root@surfcamp.lk", Password: "wrong"})
		var authErr *domain.AuthorizationError
		assert.True(t, errors.As(err, &authErr))
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, &domain.LoginRequest{Email: "nobody@surfcamp.lk", Password: "correct horse"})
		var authErr *domain.AuthorizationError
		assert.True(t, errors.As(err, &authErr))
	})

	t.Run("deactivated account", func(t *testing.T) {
		staff, err := svc.Create(ctx, super, &domain.CreateAdminRequest{
			Email: "staff@surfcamp.lk", Password: "secret123", Name: "Staff",
		})
		require.NoError(t, err)
		_, err = repo.Deactivate(ctx, staff.ID)
		require.NoError(t, err)

		_, err = svc.Login(ctx, &domain.LoginRequest{Email: "staff@surfcamp.lk", Password: "secret123"})
		var authErr *domain.AuthorizationError
		assert.True(t, errors.As(err, &authErr))
	})
}

func TestAdminResolveRejectsDeactivated(t *testing.T) {
	svc, repo, super := adminFixture(t)
	ctx := context.Background()

	resolved, err := svc.Resolve(ctx, super.ID)
	require.NoError(t, err)
	assert.Equal(t, super.Email, resolved.Email)

	_, err = repo.Deactivate(ctx, super.ID)
	require.NoError(t, err)

	_, err = svc.Resolve(ctx, super.ID)
	var authErr *domain.AuthorizationError
	assert.True(t, errors.As(err, &authErr), "deactivation must invalidate live sessions")
}

func TestAdminCreate(t *testing.T) {
	svc, _, super := adminFixture(t)
	ctx := context.Background()

	t.Run("defaults to admin role", func(t *testing.T) {
		created, err := svc.Create(ctx, super, &domain.CreateAdminRequest{
			Email: "New@Surfcamp.lk", Password: "secret123", Name: "New Staff",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.RoleAdmin, created.Role)
		assert.Equal(t, "new@surfcamp.lk", created.Email)
		assert.True(t, created.IsActive)
		assert.NotEqual(t, "secret123", created.PasswordHash)
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := svc.Create(ctx, super, &domain.CreateAdminRequest{
			Email: "new@surfcamp.lk", Password: "secret123", Name: "Dup",
		})
		var valErr *domain.ValidationError
		require.True(t, errors.As(err, &valErr))
	})

	t.Run("regular admin denied", func(t *testing.T) {
		regular := domain.AdminIdentity{ID: "adm-x", Role: domain.RoleAdmin}
		_, err := svc.Create(ctx, regular, &domain.CreateAdminRequest{
			Email: "another@surfcamp.lk", Password: "secret123", Name: "Another",
		})
		var authErr *domain.AuthorizationError
		require.True(t, errors.As(err, &authErr))
	})
}

func TestAdminUpdateGuards(t *testing.T) {
	svc, _, super := adminFixture(t)
	ctx := context.Background()

	staff, err := svc.Create(ctx, super, &domain.CreateAdminRequest{
		Email: "staff@surfcamp.lk", Password: "secret123", Name: "Staff",
	})
	require.NoError(t, err)

	t.Run("super admin promotes another", func(t *testing.T) {
		role := domain.RoleSuperAdmin
		updated, err := svc.Update(ctx, super, staff.ID, domain.AdminChanges{Role: &role})
		require.NoError(t, err)
		assert.Equal(t, domain.RoleSuperAdmin, updated.Role)
	})

	t.Run("self demotion rejected", func(t *testing.T) {
		role := domain.RoleAdmin
		_, err := svc.Update(ctx, super, super.ID, domain.AdminChanges{Role: &role})
		var authErr *domain.AuthorizationError
		require.True(t, errors.As(err, &authErr))
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		bogus := domain.AdminRole("emperor")
		_, err := svc.Update(ctx, super, staff.ID, domain.AdminChanges{Role: &bogus})
		var valErr *domain.ValidationError
		require.True(t, errors.As(err, &valErr))

		stored, err := svc.Resolve(ctx, staff.ID)
		require.NoError(t, err)
		assert.NotEqual(t, bogus, stored.Role, "bogus role must not persist")
	})

	t.Run("unknown target", func(t *testing.T) {
		name := "Ghost"
		_, err := svc.Update(ctx, super, "adm-999", domain.AdminChanges{Name: &name})
		var notFound *domain.NotFoundError
		require.True(t, errors.As(err, &notFound))
	})
}

func TestAdminDelete(t *testing.T) {
	svc, repo, super := adminFixture(t)
	ctx := context.Background()

	staff, err := svc.Create(ctx, super, &domain.CreateAdminRequest{
		Email: "staff@surfcamp.lk", Password: "secret123", Name: "Staff",
	})
	require.NoError(t, err)

	t.Run("self delete rejected", func(t *testing.T) {
		err := svc.Delete(ctx, super, super.ID)
		var authErr *domain.AuthorizationError
		require.True(t, errors.As(err, &authErr))
	})

	t.Run("deactivates instead of purging", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, super, staff.ID))

		stored, err := repo.GetByID(ctx, staff.ID)
		require.NoError(t, err)
		require.NotNil(t, stored, "account record must survive deletion")
		assert.False(t, stored.IsActive)
	})
}

func TestAdminListRequiresSuperAdmin(t *testing.T) {
	svc, _, super := adminFixture(t)
	ctx := context.Background()

	admins, err := svc.List(ctx, super, 50, 0)
	require.NoError(t, err)
	assert.Len(t, admins, 1)

	regular := domain.AdminIdentity{ID: "adm-x", Role: domain.RoleAdmin}
	_, err = svc.List(ctx, regular, 50, 0)
	var authErr *domain.AuthorizationError
	assert.True(t, errors.As(err, &authErr))
}
