package notifier

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tharaka1103/Hotel-Website-sub000/internal/domain"
	"github.com/Tharaka1103/Hotel-Website-sub000/pkg/events"
)

type memNotificationService struct {
	mu      sync.Mutex
	created []domain.Notification
}

func (s *memNotificationService) Create(ctx context.Context, n *domain.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.created = append(s.created, *n)
	return nil
}

func (s *memNotificationService) List(ctx context.Context, limit, offset int) ([]domain.Notification, error) {
	return nil, nil
}

func (s *memNotificationService) UnreadCount(ctx context.Context) (int64, error) { return 0, nil }
func (s *memNotificationService) MarkRead(ctx context.Context, id string) error  { return nil }
func (s *memNotificationService) MarkAllRead(ctx context.Context) (int64, error) { return 0, nil }

type alertMailer struct {
	alerts []string
}

func (m *alertMailer) SendBookingReceived(toEmail, toName, bookingID, packageTitle string, totalPrice float64) error {
	return nil
}

func (m *alertMailer) SendStatusChanged(toEmail, toName, bookingID, packageTitle, newStatus string) error {
	return nil
}

func (m *alertMailer) SendBookingAlert(toEmail, bookingID, packageTitle, customerName string, totalPrice float64) error {
	m.alerts = append(m.alerts, toEmail+"/"+bookingID)
	return nil
}

type localBus struct {
	handlers map[string][]func(msg *events.Message)
}

func newLocalBus() *localBus {
	return &localBus{handlers: make(map[string][]func(msg *events.Message))}
}

func (b *localBus) Subscribe(subject string, handler func(msg *events.Message)) error {
	b.handlers[subject] = append(b.handlers[subject], handler)
	return nil
}

func (b *localBus) QueueSubscribe(subject, queue string, handler func(msg *events.Message)) error {
	return b.Subscribe(subject, handler)
}

func (b *localBus) Close() error { return nil }

func (b *localBus) publish(t *testing.T, subject string, event interface{}) {
	t.Helper()
	data, err := json.Marshal(event)
	require.NoError(t, err)
	for _, h := range b.handlers[subject] {
		h(&events.Message{Subject: subject, Data: data})
	}
}

func TestNotifierRecordsLifecycleEvents(t *testing.T) {
	svc := &memNotificationService{}
	mail := &alertMailer{}
	bus := newLocalBus()
	require.NoError(t, New(svc, mail, "office@surfcamp.lk").Subscribe(bus))

	bus.publish(t, events.BookingCreated, events.BookingCreatedEvent{
		BookingID:    "RSB-1A2B3C4D",
		PackageTitle: "Surf & Safari Retreat",
		CustomerName: "Nadia Perera",
		PersonCount:  2,
		TotalPrice:   600,
	})
	bus.publish(t, events.BookingConfirmed, events.BookingStatusChangedEvent{
		BookingID:  "RSB-1A2B3C4D",
		FromStatus: "pending",
		ToStatus:   "confirmed",
		ChangedBy:  "staff@surfcamp.lk",
	})
	bus.publish(t, events.BookingDeleted, events.BookingDeletedEvent{
		BookingID: "RSB-1A2B3C4D",
		Status:    "cancelled",
		DeletedBy: "staff@surfcamp.lk",
	})

	require.Len(t, svc.created, 3)

	created := svc.created[0]
	assert.Equal(t, "booking_created", created.Type)
	assert.Equal(t, domain.PriorityHigh, created.Priority)
	assert.Equal(t, "RSB-1A2B3C4D", created.BookingID)
	assert.Contains(t, created.Message, "Nadia Perera")
	assert.Contains(t, created.Message, "$600.00")

	status := svc.created[1]
	assert.Equal(t, "booking_status", status.Type)
	assert.Equal(t, domain.PriorityMedium, status.Priority)
	assert.Contains(t, status.Message, "pending")
	assert.Contains(t, status.Message, "confirmed")

	deleted := svc.created[2]
	assert.Equal(t, "booking_deleted", deleted.Type)
	assert.Equal(t, domain.PriorityLow, deleted.Priority)

	// Only the new booking alerts the staff inbox.
	assert.Equal(t, []string{"office@surfcamp.lk/RSB-1A2B3C4D"}, mail.alerts)
}

func TestNotifierSkipsAlertWithoutAdminEmail(t *testing.T) {
	svc := &memNotificationService{}
	mail := &alertMailer{}
	bus := newLocalBus()
	require.NoError(t, New(svc, mail, "").Subscribe(bus))

	bus.publish(t, events.BookingCreated, events.BookingCreatedEvent{BookingID: "RSB-1A2B3C4D"})

	require.Len(t, svc.created, 1)
	assert.Empty(t, mail.alerts)
}

func TestNotifierIgnoresMalformedPayload(t *testing.T) {
	svc := &memNotificationService{}
	bus := newLocalBus()
	require.NoError(t, New(svc, &alertMailer{}, "office@surfcamp.lk").Subscribe(bus))

	for _, h := range bus.handlers[events.BookingCreated] {
		h(&events.Message{Subject: events.BookingCreated, Data: []byte("{not json")})
	}

	assert.Empty(t, svc.created)
}
