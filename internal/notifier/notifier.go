// Package notifier turns booking lifecycle events into admin
// notification records.
package notifier

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Tharaka1103/Hotel-Website-sub000/internal/domain"
	"github.com/Tharaka1103/Hotel-Website-sub000/internal/mailer"
	"github.com/Tharaka1103/Hotel-Website-sub000/internal/service"
	"github.com/Tharaka1103/Hotel-Website-sub000/pkg/events"
	"github.com/Tharaka1103/Hotel-Website-sub000/pkg/logger"
)

const queueGroup = "notifier"

type Notifier struct {
	notifications service.NotificationService
	mailer        mailer.Service
	// adminEmail receives a copy of every new-booking alert; empty
	// disables the staff mail.
	adminEmail string
}

func New(notifications service.NotificationService, mail mailer.Service, adminEmail string) *Notifier {
	return &Notifier{
		notifications: notifications,
		mailer:        mail,
		adminEmail:    adminEmail,
	}
}

// Subscribe attaches the notifier to every booking subject. Queue
// subscription keeps the writes single-delivery if more than one API
// instance runs.
func (n *Notifier) Subscribe(bus events.Subscriber) error {
	subjects := []string{
		events.BookingCreated,
		events.BookingConfirmed,
		events.BookingCancelled,
		events.BookingCompleted,
		events.BookingReactivated,
		events.BookingReopened,
		events.BookingDeleted,
	}
	for _, subject := range subjects {
		if err := bus.QueueSubscribe(subject, queueGroup, n.handle); err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", subject, err)
		}
	}
	return nil
}

func (n *Notifier) handle(msg *events.Message) {
	ctx := context.Background()

	notification, err := notificationFor(msg)
	if err != nil {
		logger.Error("Failed to decode booking event", "error", err, "subject", msg.Subject)
		return
	}

	if err := n.notifications.Create(ctx, notification); err != nil {
		logger.Error("Failed to record notification", "error", err, "subject", msg.Subject)
	}

	if msg.Subject == events.BookingCreated && n.adminEmail != "" {
		var event events.BookingCreatedEvent
		if err := json.Unmarshal(msg.Data, &event); err == nil {
			if err := n.mailer.SendBookingAlert(n.adminEmail, event.BookingID, event.PackageTitle, event.CustomerName, event.TotalPrice); err != nil {
				logger.Error("Failed to send booking alert email", "error", err, "booking_id", event.BookingID)
			}
		}
	}
}

func notificationFor(msg *events.Message) (*domain.Notification, error) {
	switch msg.Subject {
	case events.BookingCreated:
		var event events.BookingCreatedEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			return nil, err
		}
		return &domain.Notification{
			Type:      "booking_created",
			Title:     "New booking received",
			Message:   fmt.Sprintf("%s booked %s for %d guest(s), total $%.2f", event.CustomerName, event.PackageTitle, event.PersonCount, event.TotalPrice),
			Priority:  domain.PriorityHigh,
			BookingID: event.BookingID,
		}, nil

	case events.BookingDeleted:
		var event events.BookingDeletedEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			return nil, err
		}
		return &domain.Notification{
			Type:      "booking_deleted",
			Title:     "Booking deleted",
			Message:   fmt.Sprintf("Booking %s (%s) was deleted by %s", event.BookingID, event.Status, event.DeletedBy),
			Priority:  domain.PriorityLow,
			BookingID: event.BookingID,
		}, nil

	default:
		var event events.BookingStatusChangedEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			return nil, err
		}
		return &domain.Notification{
			Type:      "booking_status",
			Title:     fmt.Sprintf("Booking %s", event.ToStatus),
			Message:   fmt.Sprintf("Booking %s for %s moved from %s to %s by %s", event.BookingID, event.CustomerName, event.FromStatus, event.ToStatus, event.ChangedBy),
			Priority:  domain.PriorityMedium,
			BookingID: event.BookingID,
		}, nil
	}
}
