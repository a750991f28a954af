package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Tharaka1103/Hotel-Website-sub000/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	List(ctx context.Context, limit, offset int) ([]domain.Notification, error)
	UnreadCount(ctx context.Context) (int64, error)
	MarkRead(ctx context.Context, id string) (bool, error)
	MarkAllRead(ctx context.Context) (int64, error)
}

type notificationRepository struct {
	pool *pgxpool.Pool
}

func NewNotificationRepository(pool *pgxpool.Pool) NotificationRepository {
	return &notificationRepository{pool: pool}
}

const notificationCols = `id, type, title, message, is_read, priority, booking_id, created_at`

func scanNotification(row pgx.Row) (*domain.Notification, error) {
	var n domain.Notification
	var bookingID *string
	err := row.Scan(&n.ID, &n.Type, &n.Title, &n.Message, &n.IsRead, &n.Priority, &bookingID, &n.CreatedAt)
	if err != nil {
		return nil, err
	}
	if bookingID != nil {
		n.BookingID = *bookingID
	}
	return &n, nil
}

func (r *notificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	const q = `INSERT INTO notifications (type, title, message, priority, booking_id)
		VALUES ($1,$2,$3,$4,NULLIF($5,''))
		RETURNING id, is_read, created_at`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	return r.pool.QueryRow(ctx, q, n.Type, n.Title, n.Message, n.Priority, n.BookingID).
		Scan(&n.ID, &n.IsRead, &n.CreatedAt)
}

func (r *notificationRepository) List(ctx context.Context, limit, offset int) ([]domain.Notification, error) {
	limit, offset = clampPagination(limit, offset)

	const q = `SELECT ` + notificationCols + ` FROM notifications ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, *n)
	}
	return notifications, rows.Err()
}

func (r *notificationRepository) UnreadCount(ctx context.Context) (int64, error) {
	const q = `SELECT count(*) FROM notifications WHERE NOT is_read`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var count int64
	err := r.pool.QueryRow(ctx, q).Scan(&count)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	return count, err
}

func (r *notificationRepository) MarkRead(ctx context.Context, id string) (bool, error) {
	const q = `UPDATE notifications SET is_read=true WHERE id=$1 AND NOT is_read`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	result, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context) (int64, error) {
	const q = `UPDATE notifications SET is_read=true WHERE NOT is_read`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	result, err := r.pool.Exec(ctx, q)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
