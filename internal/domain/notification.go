package domain

import "time"

type NotificationPriority string

const (
	PriorityLow    NotificationPriority = "low"
	PriorityMedium NotificationPriority = "medium"
	PriorityHigh   NotificationPriority = "high"
)

// Notification is an informational record created as a side effect of a
// booking lifecycle event. The admin dashboard polls the unread count.
type Notification struct {
	ID        string               `json:"id"`
	Type      string               `json:"type"`
	Title     string               `json:"title"`
	Message   string               `json:"message"`
	IsRead    bool                 `json:"is_read"`
	Priority  NotificationPriority `json:"priority"`
	BookingID string               `json:"booking_id,omitempty"`
	CreatedAt time.Time            `json:"created_at"`
}
