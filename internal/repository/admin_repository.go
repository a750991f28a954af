package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Tharaka1103/Hotel-Website-sub000/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AdminRepository interface {
	Create(ctx context.Context, a *domain.Admin) error
	GetByID(ctx context.Context, id string) (*domain.Admin, error)
	FindByEmail(ctx context.Context, email string) (*domain.Admin, error)
	List(ctx context.Context, limit, offset int) ([]domain.Admin, error)
	Update(ctx context.Context, id string, changes domain.AdminChanges) (*domain.Admin, error)
	// Deactivate is the delete operation: accounts are flagged inactive,
	// never purged.
	Deactivate(ctx context.Context, id string) (bool, error)
}

type adminRepository struct {
	pool *pgxpool.Pool
}

func NewAdminRepository(pool *pgxpool.Pool) AdminRepository {
	return &adminRepository{pool: pool}
}

const adminCols = `id, email, password_hash, name, role, is_active, created_at`

func scanAdmin(row pgx.Row) (*domain.Admin, error) {
	var a domain.Admin
	err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Name, &a.Role, &a.IsActive, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *adminRepository) Create(ctx context.Context, a *domain.Admin) error {
	const q = `INSERT INTO admins (email, password_hash, name, role)
		VALUES (lower($1),$2,$3,$4)
		RETURNING id, is_active, created_at`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	return r.pool.QueryRow(ctx, q, a.Email, a.PasswordHash, a.Name, a.Role).
		Scan(&a.ID, &a.IsActive, &a.CreatedAt)
}

func (r *adminRepository) GetByID(ctx context.Context, id string) (*domain.Admin, error) {
	const q = `SELECT ` + adminCols + ` FROM admins WHERE id=$1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	a, err := scanAdmin(r.pool.QueryRow(ctx, q, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return a, err
}

func (r *adminRepository) FindByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	const q = `SELECT ` + adminCols + ` FROM admins WHERE email=lower($1)`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	a, err := scanAdmin(r.pool.QueryRow(ctx, q, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return a, err
}

func (r *adminRepository) List(ctx context.Context, limit, offset int) ([]domain.Admin, error) {
	limit, offset = clampPagination(limit, offset)

	const q = `SELECT ` + adminCols + ` FROM admins ORDER BY created_at LIMIT $1 OFFSET $2`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var admins []domain.Admin
	for rows.Next() {
		a, err := scanAdmin(rows)
		if err != nil {
			return nil, err
		}
		admins = append(admins, *a)
	}
	return admins, rows.Err()
}

func (r *adminRepository) Update(ctx context.Context, id string, changes domain.AdminChanges) (*domain.Admin, error) {
	const q = `UPDATE admins
		SET name=COALESCE($2, name),
			role=COALESCE($3, role),
			is_active=COALESCE($4, is_active)
		WHERE id=$1
		RETURNING ` + adminCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	a, err := scanAdmin(r.pool.QueryRow(ctx, q, id, changes.Name, changes.Role, changes.IsActive))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return a, err
}

func (r *adminRepository) Deactivate(ctx context.Context, id string) (bool, error) {
	const q = `UPDATE admins SET is_active=false WHERE id=$1 AND is_active`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	result, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}
