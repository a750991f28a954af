package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Tharaka1103/Hotel-Website-sub000/internal/domain"
	"github.com/Tharaka1103/Hotel-Website-sub000/internal/mailer"
	"github.com/Tharaka1103/Hotel-Website-sub000/internal/pricing"
	"github.com/Tharaka1103/Hotel-Website-sub000/internal/repository"
	"github.com/Tharaka1103/Hotel-Website-sub000/pkg/events"
	"github.com/Tharaka1103/Hotel-Website-sub000/pkg/logger"
)

type BookingService interface {
	Create(ctx context.Context, req *domain.CreateBookingRequest) (*domain.Booking, error)
	Get(ctx context.Context, bookingID string) (*domain.Booking, error)
	List(ctx context.Context, limit, offset int, status *domain.BookingStatus) ([]domain.Booking, error)
	// Update applies a status transition and/or a note edit on behalf of
	// the acting admin. Both land in a single atomic write.
	Update(ctx context.Context, actor domain.AdminIdentity, bookingID string, req *domain.UpdateBookingRequest) (*domain.Booking, error)
	Delete(ctx context.Context, actor domain.AdminIdentity, bookingID string) error
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	packageRepo repository.PackageRepository
	eventBus    events.Publisher
	mailer      mailer.Service
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	packageRepo repository.PackageRepository,
	eventBus events.Publisher,
	mailer mailer.Service,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		packageRepo: packageRepo,
		eventBus:    eventBus,
		mailer:      mailer,
	}
}

func (s *bookingService) Create(ctx context.Context, req *domain.CreateBookingRequest) (*domain.Booking, error) {
	req.Normalize()

	roomType, ok := domain.ParseRoomType(req.RoomType)
	if !ok {
		return nil, domain.NewValidationError("room_type", "unknown room type")
	}

	checkIn, err := time.Parse("2006-01-02", req.CheckInDate)
	if err != nil {
		return nil, domain.NewValidationError("check_in_date", "must be a date in YYYY-MM-DD format")
	}

	pkg, err := s.packageRepo.GetByID(ctx, req.PackageID)
	if err != nil {
		return nil, fmt.Errorf("failed to load package: %w", err)
	}
	if pkg == nil {
		return nil, &domain.NotFoundError{Entity: "package", ID: req.PackageID}
	}
	if len(pkg.Features) == 0 {
		return nil, domain.NewValidationError("package", "is not currently offered for booking")
	}

	quote, err := pricing.ForBooking(pkg, roomType, req.PersonCount)
	if err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		BookingID:       domain.NewBookingID(),
		PackageSnapshot: pkg.Snapshot(),
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		PersonCount:     req.PersonCount,
		RoomType:        roomType,
		RoomNumbers:     req.RoomNumbers,
		BedNumbers:      req.BedNumbers,
		CheckInDate:     checkIn,
		CheckOutDate:    checkIn.AddDate(0, 0, domain.StayNights),
		PricePerPerson:  quote.PricePerPerson,
		TotalPrice:      quote.TotalPrice,
		Status:          domain.BookingPending,
	}

	if err := booking.Validate(); err != nil {
		return nil, err
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	event := events.BookingCreatedEvent{
		BookingID:     booking.BookingID,
		PackageTitle:  booking.PackageTitle,
		CustomerName:  booking.CustomerName,
		CustomerEmail: booking.CustomerEmail,
		RoomType:      string(booking.RoomType),
		PersonCount:   booking.PersonCount,
		TotalPrice:    booking.TotalPrice,
		CheckInDate:   booking.CheckInDate,
		CheckOutDate:  booking.CheckOutDate,
		CreatedAt:     booking.BookingDate,
	}
	if err := s.eventBus.Publish(ctx, events.BookingCreated, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish booking created event", "error", err, "booking_id", booking.BookingID)
	}

	if err := s.mailer.SendBookingReceived(booking.CustomerEmail, booking.CustomerName, booking.BookingID, booking.PackageTitle, booking.TotalPrice); err != nil {
		logger.ErrorContext(ctx, "Failed to send booking received email", "error", err, "booking_id", booking.BookingID)
	}

	return booking, nil
}

func (s *bookingService) Get(ctx context.Context, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	if booking == nil {
		return nil, &domain.NotFoundError{Entity: "booking", ID: bookingID}
	}
	return booking, nil
}

func (s *bookingService) List(ctx context.Context, limit, offset int, status *domain.BookingStatus) ([]domain.Booking, error) {
	if status != nil {
		return s.bookingRepo.ListByStatus(ctx, *status, limit, offset)
	}
	return s.bookingRepo.List(ctx, limit, offset)
}

func (s *bookingService) Update(ctx context.Context, actor domain.AdminIdentity, bookingID string, req *domain.UpdateBookingRequest) (*domain.Booking, error) {
	if req.Status == nil && req.AdminNotes == nil {
		return nil, domain.NewValidationError("", "nothing to update")
	}

	existing, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	if existing == nil {
		return nil, &domain.NotFoundError{Entity: "booking", ID: bookingID}
	}

	// Notes-only edit: no transition involved.
	if req.Status == nil {
		updated, err := s.bookingRepo.UpdateNotes(ctx, bookingID, *req.AdminNotes)
		if err != nil {
			return nil, fmt.Errorf("failed to update notes: %w", err)
		}
		if updated == nil {
			return nil, &domain.NotFoundError{Entity: "booking", ID: bookingID}
		}
		return updated, nil
	}

	target, ok := domain.ParseBookingStatus(*req.Status)
	if !ok {
		return nil, domain.NewValidationError("status", "unknown booking status")
	}

	// The transition table is the single source of truth; the stored
	// record is untouched when it rejects the change.
	if err := domain.Transition(existing.Status, target); err != nil {
		return nil, err
	}

	// Reactivation puts the booking's rooms back in play; anything booked
	// while it was cancelled may have taken them.
	if existing.Status == domain.BookingCancelled && target == domain.BookingConfirmed {
		if err := s.bookingRepo.CheckAvailability(ctx, existing); err != nil {
			return nil, err
		}
	}

	updated, err := s.bookingRepo.UpdateStatus(ctx, bookingID, existing.Status, target, req.AdminNotes)
	if err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}
	if updated == nil {
		// Another admin changed the status between our read and write.
		// Re-read so the error names the actual current state.
		current, rerr := s.bookingRepo.GetByID(ctx, bookingID)
		if rerr != nil || current == nil {
			return nil, &domain.NotFoundError{Entity: "booking", ID: bookingID}
		}
		return nil, &domain.InvalidTransitionError{From: current.Status, To: target}
	}

	subject := events.SubjectForTransition(string(existing.Status), string(updated.Status))
	if subject != "" {
		event := events.BookingStatusChangedEvent{
			BookingID:     updated.BookingID,
			PackageTitle:  updated.PackageTitle,
			CustomerName:  updated.CustomerName,
			CustomerEmail: updated.CustomerEmail,
			FromStatus:    string(existing.Status),
			ToStatus:      string(updated.Status),
			ChangedBy:     actor.Email,
			ChangedAt:     updated.UpdatedAt,
		}
		if err := s.eventBus.Publish(ctx, subject, event); err != nil {
			logger.ErrorContext(ctx, "Failed to publish booking status event", "error", err, "booking_id", updated.BookingID)
		}
	}

	if err := s.mailer.SendStatusChanged(updated.CustomerEmail, updated.CustomerName, updated.BookingID, updated.PackageTitle, string(updated.Status)); err != nil {
		logger.ErrorContext(ctx, "Failed to send status change email", "error", err, "booking_id", updated.BookingID)
	}

	return updated, nil
}

func (s *bookingService) Delete(ctx context.Context, actor domain.AdminIdentity, bookingID string) error {
	existing, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("failed to get booking: %w", err)
	}
	if existing == nil {
		return &domain.NotFoundError{Entity: "booking", ID: bookingID}
	}
	if !existing.Deletable() {
		return &domain.InvalidOperationError{
			Message: fmt.Sprintf("cannot delete a %s booking; resolve it to cancelled or completed first", existing.Status),
		}
	}

	deleted, err := s.bookingRepo.Delete(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	if !deleted {
		return &domain.NotFoundError{Entity: "booking", ID: bookingID}
	}

	event := events.BookingDeletedEvent{
		BookingID: existing.BookingID,
		Status:    string(existing.Status),
		DeletedBy: actor.Email,
		DeletedAt: time.Now(),
	}
	if err := s.eventBus.Publish(ctx, events.BookingDeleted, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish booking deleted event", "error", err, "booking_id", existing.BookingID)
	}

	return nil
}
