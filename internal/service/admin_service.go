package service

import (
	"context"
	"fmt"

	"github.com/Tharaka1103/Hotel-Website-sub000/internal/domain"
	"github.com/Tharaka1103/Hotel-Website-sub000/internal/repository"
	"github.com/alexedwards/argon2id"
)

type AdminService interface {
	// Login verifies credentials against an active account.
	Login(ctx context.Context, req *domain.LoginRequest) (*domain.Admin, error)
	// Resolve loads the acting admin behind a session, rejecting
	// deactivated accounts.
	Resolve(ctx context.Context, adminID string) (*domain.Admin, error)
	Create(ctx context.Context, actor domain.AdminIdentity, req *domain.CreateAdminRequest) (*domain.Admin, error)
	List(ctx context.Context, actor domain.AdminIdentity, limit, offset int) ([]domain.Admin, error)
	Update(ctx context.Context, actor domain.AdminIdentity, targetID string, changes domain.AdminChanges) (*domain.Admin, error)
	Delete(ctx context.Context, actor domain.AdminIdentity, targetID string) error
}

type adminService struct {
	adminRepo repository.AdminRepository
}

func NewAdminService(adminRepo repository.AdminRepository) AdminService {
	return &adminService{adminRepo: adminRepo}
}

func (s *adminService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.Admin, error) {
	req.Normalize()

	admin, err := s.adminRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to find admin: %w", err)
	}
	if admin == nil || !admin.IsActive {
		return nil, &domain.AuthorizationError{Message: "invalid email or password"}
	}

	valid, err := argon2id.ComparePasswordAndHash(req.Password, admin.PasswordHash)
	if err != nil || !valid {
		return nil, &domain.AuthorizationError{Message: "invalid email or password"}
	}

	return admin, nil
}

func (s *adminService) Resolve(ctx context.Context, adminID string) (*domain.Admin, error) {
	admin, err := s.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("failed to load admin: %w", err)
	}
	if admin == nil || !admin.IsActive {
		return nil, &domain.AuthorizationError{Message: "session no longer valid"}
	}
	return admin, nil
}

func (s *adminService) Create(ctx context.Context, actor domain.AdminIdentity, req *domain.CreateAdminRequest) (*domain.Admin, error) {
	if err := domain.AuthorizeAdminCreate(actor); err != nil {
		return nil, err
	}

	req.Normalize()
	role, ok := domain.ParseAdminRole(req.Role)
	if !ok {
		return nil, domain.NewValidationError("role", "unknown admin role")
	}

	existing, err := s.adminRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing admin: %w", err)
	}
	if existing != nil {
		return nil, domain.NewValidationError("email", "already registered")
	}

	passwordHash, err := argon2id.CreateHash(req.Password, argon2id.DefaultParams)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &domain.Admin{
		Email:        req.Email,
		PasswordHash: passwordHash,
		Name:         req.Name,
		Role:         role,
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	return admin, nil
}

func (s *adminService) List(ctx context.Context, actor domain.AdminIdentity, limit, offset int) ([]domain.Admin, error) {
	if actor.Role != domain.RoleSuperAdmin {
		return nil, &domain.AuthorizationError{Message: "super admin role required to list admin accounts"}
	}
	return s.adminRepo.List(ctx, limit, offset)
}

func (s *adminService) Update(ctx context.Context, actor domain.AdminIdentity, targetID string, changes domain.AdminChanges) (*domain.Admin, error) {
	if err := domain.AuthorizeAdminUpdate(actor, targetID, changes); err != nil {
		return nil, err
	}
	if changes.Role != nil {
		if _, ok := domain.ParseAdminRole(string(*changes.Role)); !ok {
			return nil, domain.NewValidationError("role", "unknown admin role")
		}
	}

	updated, err := s.adminRepo.Update(ctx, targetID, changes)
	if err != nil {
		return nil, fmt.Errorf("failed to update admin: %w", err)
	}
	if updated == nil {
		return nil, &domain.NotFoundError{Entity: "admin", ID: targetID}
	}
	return updated, nil
}

func (s *adminService) Delete(ctx context.Context, actor domain.AdminIdentity, targetID string) error {
	if err := domain.AuthorizeAdminDelete(actor, targetID); err != nil {
		return err
	}

	deactivated, err := s.adminRepo.Deactivate(ctx, targetID)
	if err != nil {
		return fmt.Errorf("failed to deactivate admin: %w", err)
	}
	if !deactivated {
		return &domain.NotFoundError{Entity: "admin", ID: targetID}
	}
	return nil
}
