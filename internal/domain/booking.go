package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return BookingStatus(s), true
	default:
		return "", false
	}
}

type RoomType string

const (
	RoomDouble RoomType = "room"
	RoomDome   RoomType = "dome"
	RoomSingle RoomType = "single"
	RoomFamily RoomType = "family"
)

func ParseRoomType(s string) (RoomType, bool) {
	switch RoomType(s) {
	case RoomDouble, RoomDome, RoomSingle, RoomFamily:
		return RoomType(s), true
	default:
		return "", false
	}
}

// UsesBeds reports whether the room type books individual beds in the
// shared dome rather than private rooms.
func (rt RoomType) UsesBeds() bool {
	return rt == RoomDome
}

// StayNights is the fixed length of every stay. The resort sells a single
// 7-day surf program, so check-out is always check-in plus seven nights.
const StayNights = 7

// PackageSnapshot holds the package terms copied onto a booking at
// creation time. A later package edit never alters an existing booking's
// recorded terms, so these fields are written once and never re-joined
// against the packages table.
type PackageSnapshot struct {
	PackageID          string   `json:"package_id"`
	PackageTitle       string   `json:"package_title"`
	PackageDescription string   `json:"package_description"`
	PackagePrice       float64  `json:"package_price"`
	PackageFeatures    []string `json:"package_features"`
}

type Booking struct {
	BookingID string `json:"booking_id"`
	PackageSnapshot

	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`

	PersonCount int      `json:"person_count"`
	RoomType    RoomType `json:"room_type"`
	RoomNumbers []int    `json:"room_numbers,omitempty"`
	BedNumbers  []int    `json:"bed_numbers,omitempty"`

	CheckInDate  time.Time `json:"check_in_date"`
	CheckOutDate time.Time `json:"check_out_date"`
	BookingDate  time.Time `json:"booking_date"`

	PricePerPerson float64 `json:"price_per_person"`
	TotalPrice     float64 `json:"total_price"`

	Status     BookingStatus `json:"status"`
	AdminNotes string        `json:"admin_notes,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}

// NewBookingID returns a short human-readable booking code like "RSB-3F2A9C1D".
func NewBookingID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "RSB-" + strings.ToUpper(raw[:8])
}

// transitions is the single authoritative table of allowed status
// changes. Both the API layer and the admin UI consult it; there is no
// other branching on status anywhere.
//
// cancelled -> confirmed ("reactivate") and completed -> confirmed
// ("reopen") are deliberate escape hatches observed in operation; neither
// cancelled nor completed is strictly terminal. A booking never re-enters
// pending once it has left it, and pending can never jump straight to
// completed.
var transitions = map[BookingStatus][]BookingStatus{
	BookingPending:   {BookingConfirmed, BookingCancelled},
	BookingConfirmed: {BookingCompleted, BookingCancelled},
	BookingCancelled: {BookingConfirmed},
	BookingCompleted: {BookingConfirmed},
}

// Transition validates a status change against the transition table.
// It returns an InvalidTransitionError for any pair not in the table and
// never mutates anything.
func Transition(from, to BookingStatus) error {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return nil
		}
	}
	return &InvalidTransitionError{From: from, To: to}
}

// AllowedTransitions returns the statuses reachable from the given one,
// in table order. The admin UI uses this to decide which actions to offer.
func AllowedTransitions(from BookingStatus) []BookingStatus {
	allowed := transitions[from]
	out := make([]BookingStatus, len(allowed))
	copy(out, allowed)
	return out
}

// Deletable reports whether a booking may be hard-deleted. Active
// bookings must be resolved, not silently removed.
func (b *Booking) Deletable() bool {
	return b.Status == BookingCancelled || b.Status == BookingCompleted
}

// Validate checks the booking's structural invariants: a positive
// headcount, the price identity, ordered dates, and the room/bed
// exclusivity rule for its room type.
func (b *Booking) Validate() error {
	if b.PersonCount < 1 {
		return NewValidationError("person_count", "must be at least 1")
	}
	if !b.CheckOutDate.After(b.CheckInDate) {
		return NewValidationError("check_out_date", "must be after check-in date")
	}
	if b.TotalPrice != b.PricePerPerson*float64(b.PersonCount) {
		return NewValidationError("total_price", "must equal price per person times person count")
	}
	if b.RoomType.UsesBeds() {
		if len(b.BedNumbers) == 0 {
			return NewValidationError("bed_numbers", "dome bookings must list bed numbers")
		}
		if len(b.RoomNumbers) > 0 {
			return NewValidationError("room_numbers", "dome bookings must not list room numbers")
		}
	} else {
		if len(b.RoomNumbers) == 0 {
			return NewValidationError("room_numbers", "room bookings must list room numbers")
		}
		if len(b.BedNumbers) > 0 {
			return NewValidationError("bed_numbers", "room bookings must not list bed numbers")
		}
	}
	return nil
}

// DatesOverlap reports whether [a1, b1) and [a2, b2) intersect.
// Check-out day equals the next guest's check-in day without conflict.
func DatesOverlap(a1, b1, a2, b2 time.Time) bool {
	return a1.Before(b2) && a2.Before(b1)
}
