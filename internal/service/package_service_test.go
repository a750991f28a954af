package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tharaka1103/Hotel-Website-sub000/internal/domain"
)

func packageRequest() *domain.PackageRequest {
	return &domain.PackageRequest{
		Title:           "Surf & Safari Retreat",
		Description:     "Seven nights of surf, safari, and good food.",
		Features:        []string{"Daily surf lessons", "Safari day trip"},
		Price:           300,
		DoubleRoomPrice: floatPtr(300),
		DomeRoomPrice:   floatPtr(200),
	}
}

func TestPackageCreate(t *testing.T) {
	repo := &memPackageRepo{packages: make(map[string]*domain.Package)}
	svc := NewPackageService(repo)
	ctx := context.Background()
	actor := domain.AdminIdentity{ID: "a1", Role: domain.RoleAdmin}

	t.Run("valid package", func(t *testing.T) {
		pkg, err := svc.Create(ctx, actor, packageRequest())
		require.NoError(t, err)
		rate, ok := pkg.RateFor(domain.RoomDome)
		require.True(t, ok)
		assert.Equal(t, 200.0, rate)
	})

	t.Run("features required", func(t *testing.T) {
		req := packageRequest()
		req.Features = nil
		_, err := svc.Create(ctx, actor, req)
		var valErr *domain.ValidationError
		require.True(t, errors.As(err, &valErr))
	})

	t.Run("negative room rate", func(t *testing.T) {
		req := packageRequest()
		req.SingleRoomPrice = floatPtr(-10)
		_, err := svc.Create(ctx, actor, req)
		var valErr *domain.ValidationError
		require.True(t, errors.As(err, &valErr))
	})
}

func TestPackageUpdateMissing(t *testing.T) {
	svc := NewPackageService(&memPackageRepo{packages: make(map[string]*domain.Package)})
	actor := domain.AdminIdentity{ID: "a1", Role: domain.RoleAdmin}

	_, err := svc.Update(context.Background(), actor, "pkg-missing", packageRequest())
	var notFound *domain.NotFoundError
	require.True(t, errors.As(err, &notFound))

	err = svc.Delete(context.Background(), actor, "pkg-missing")
	require.True(t, errors.As(err, &notFound))
}
