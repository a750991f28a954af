package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Tharaka1103/Hotel-Website-sub000/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PackageRepository interface {
	Create(ctx context.Context, p *domain.Package) error
	GetByID(ctx context.Context, id string) (*domain.Package, error)
	List(ctx context.Context, limit, offset int) ([]domain.Package, error)
	Update(ctx context.Context, p *domain.Package) (*domain.Package, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type packageRepository struct {
	pool *pgxpool.Pool
}

func NewPackageRepository(pool *pgxpool.Pool) PackageRepository {
	return &packageRepository{pool: pool}
}

const packageCols = `id, title, description, features, price,
double_room_price, dome_room_price, single_room_price, family_room_price,
created_at, updated_at`

func scanPackage(row pgx.Row) (*domain.Package, error) {
	var p domain.Package
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.Features, &p.Price,
		&p.DoubleRoomPrice, &p.DomeRoomPrice, &p.SingleRoomPrice, &p.FamilyRoomPrice,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *packageRepository) Create(ctx context.Context, p *domain.Package) error {
	const q = `INSERT INTO packages (
		title, description, features, price,
		double_room_price, dome_room_price, single_room_price, family_room_price
	) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	RETURNING id, created_at, updated_at`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	return r.pool.QueryRow(ctx, q,
		p.Title, p.Description, p.Features, p.Price,
		p.DoubleRoomPrice, p.DomeRoomPrice, p.SingleRoomPrice, p.FamilyRoomPrice,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *packageRepository) GetByID(ctx context.Context, id string) (*domain.Package, error) {
	const q = `SELECT ` + packageCols + ` FROM packages WHERE id=$1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	p, err := scanPackage(r.pool.QueryRow(ctx, q, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return p, err
}

func (r *packageRepository) List(ctx context.Context, limit, offset int) ([]domain.Package, error) {
	limit, offset = clampPagination(limit, offset)

	const q = `SELECT ` + packageCols + ` FROM packages ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var packages []domain.Package
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			return nil, err
		}
		packages = append(packages, *p)
	}
	return packages, rows.Err()
}

func (r *packageRepository) Update(ctx context.Context, p *domain.Package) (*domain.Package, error) {
	const q = `UPDATE packages
		SET title=$2, description=$3, features=$4, price=$5,
			double_room_price=$6, dome_room_price=$7, single_room_price=$8, family_room_price=$9,
			updated_at=now()
		WHERE id=$1
		RETURNING ` + packageCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	updated, err := scanPackage(r.pool.QueryRow(ctx, q,
		p.ID, p.Title, p.Description, p.Features, p.Price,
		p.DoubleRoomPrice, p.DomeRoomPrice, p.SingleRoomPrice, p.FamilyRoomPrice,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return updated, err
}

func (r *packageRepository) Delete(ctx context.Context, id string) (bool, error) {
	const q = `DELETE FROM packages WHERE id=$1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	result, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}
