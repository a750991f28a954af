package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Tharaka1103/Hotel-Website-sub000/internal/domain"
	"github.com/Tharaka1103/Hotel-Website-sub000/internal/repository"
	"github.com/Tharaka1103/Hotel-Website-sub000/pkg/logger"
	"github.com/redis/go-redis/v9"
)

const (
	unreadCountKey = "notifications:unread_count"
	unreadCountTTL = 15 * time.Second
)

type NotificationService interface {
	Create(ctx context.Context, n *domain.Notification) error
	List(ctx context.Context, limit, offset int) ([]domain.Notification, error)
	// UnreadCount is cached briefly in Redis; the dashboard polls it, and
	// eventual consistency within the poll interval is acceptable.
	UnreadCount(ctx context.Context) (int64, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) (int64, error)
}

type notificationService struct {
	notificationRepo repository.NotificationRepository
	cache            *redis.Client
}

func NewNotificationService(notificationRepo repository.NotificationRepository, cache *redis.Client) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		cache:            cache,
	}
}

func (s *notificationService) Create(ctx context.Context, n *domain.Notification) error {
	if err := s.notificationRepo.Create(ctx, n); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	s.invalidateCount(ctx)
	return nil
}

func (s *notificationService) List(ctx context.Context, limit, offset int) ([]domain.Notification, error) {
	return s.notificationRepo.List(ctx, limit, offset)
}

func (s *notificationService) UnreadCount(ctx context.Context) (int64, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, unreadCountKey).Result(); err == nil {
			if count, err := strconv.ParseInt(cached, 10, 64); err == nil {
				return count, nil
			}
		}
	}

	count, err := s.notificationRepo.UnreadCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, unreadCountKey, count, unreadCountTTL).Err(); err != nil {
			logger.WarnContext(ctx, "Failed to cache unread count", "error", err)
		}
	}

	return count, nil
}

func (s *notificationService) MarkRead(ctx context.Context, id string) error {
	marked, err := s.notificationRepo.MarkRead(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if !marked {
		return &domain.NotFoundError{Entity: "notification", ID: id}
	}
	s.invalidateCount(ctx)
	return nil
}

func (s *notificationService) MarkAllRead(ctx context.Context) (int64, error) {
	count, err := s.notificationRepo.MarkAllRead(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}
	s.invalidateCount(ctx)
	return count, nil
}

func (s *notificationService) invalidateCount(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, unreadCountKey).Err(); err != nil {
		logger.WarnContext(ctx, "Failed to invalidate unread count cache", "error", err)
	}
}
