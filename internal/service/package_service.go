package service

import (
	"context"
	"fmt"

	"github.com/Tharaka1103/Hotel-Website-sub000/internal/domain"
	"github.com/Tharaka1103/Hotel-Website-sub000/internal/repository"
)

type PackageService interface {
	Create(ctx context.Context, actor domain.AdminIdentity, req *domain.PackageRequest) (*domain.Package, error)
	Get(ctx context.Context, id string) (*domain.Package, error)
	List(ctx context.Context, limit, offset int) ([]domain.Package, error)
	Update(ctx context.Context, actor domain.AdminIdentity, id string, req *domain.PackageRequest) (*domain.Package, error)
	Delete(ctx context.Context, actor domain.AdminIdentity, id string) error
}

type packageService struct {
	packageRepo repository.PackageRepository
}

func NewPackageService(packageRepo repository.PackageRepository) PackageService {
	return &packageService{packageRepo: packageRepo}
}

func packageFromRequest(req *domain.PackageRequest) *domain.Package {
	return &domain.Package{
		Title:           req.Title,
		Description:     req.Description,
		Features:        req.Features,
		Price:           req.Price,
		DoubleRoomPrice: req.DoubleRoomPrice,
		DomeRoomPrice:   req.DomeRoomPrice,
		SingleRoomPrice: req.SingleRoomPrice,
		FamilyRoomPrice: req.FamilyRoomPrice,
	}
}

func (s *packageService) Create(ctx context.Context, actor domain.AdminIdentity, req *domain.PackageRequest) (*domain.Package, error) {
	pkg := packageFromRequest(req)
	if err := pkg.Validate(); err != nil {
		return nil, err
	}
	if err := s.packageRepo.Create(ctx, pkg); err != nil {
		return nil, fmt.Errorf("failed to create package: %w", err)
	}
	return pkg, nil
}

func (s *packageService) Get(ctx context.Context, id string) (*domain.Package, error) {
	pkg, err := s.packageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get package: %w", err)
	}
	if pkg == nil {
		return nil, &domain.NotFoundError{Entity: "package", ID: id}
	}
	return pkg, nil
}

func (s *packageService) List(ctx context.Context, limit, offset int) ([]domain.Package, error) {
	return s.packageRepo.List(ctx, limit, offset)
}

func (s *packageService) Update(ctx context.Context, actor domain.AdminIdentity, id string, req *domain.PackageRequest) (*domain.Package, error) {
	pkg := packageFromRequest(req)
	pkg.ID = id
	if err := pkg.Validate(); err != nil {
		return nil, err
	}

	// Existing bookings carry their own snapshot of the old terms, so an
	// edit here never rewrites history.
	updated, err := s.packageRepo.Update(ctx, pkg)
	if err != nil {
		return nil, fmt.Errorf("failed to update package: %w", err)
	}
	if updated == nil {
		return nil, &domain.NotFoundError{Entity: "package", ID: id}
	}
	return updated, nil
}

func (s *packageService) Delete(ctx context.Context, actor domain.AdminIdentity, id string) error {
	deleted, err := s.packageRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete package: %w", err)
	}
	if !deleted {
		return &domain.NotFoundError{Entity: "package", ID: id}
	}
	return nil
}
