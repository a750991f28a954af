// Package pricing derives booking prices from a package's room-type
// rates. USD only; no currency conversion.
package pricing

import (
	"github.com/Tharaka1103/Hotel-Website-sub000/internal/domain"
)

// Quote is the priced result of a room-type selection.
type Quote struct {
	PricePerPerson float64
	TotalPrice     float64
}

// ForBooking computes the quote for a package, room type, and headcount.
// The per-person price is exactly the package's rate for the room type;
// the total is that rate times the headcount. It is pure: no side
// effects, deterministic for its inputs.
func ForBooking(pkg *domain.Package, roomType domain.RoomType, personCount int) (Quote, error) {
	if personCount < 1 {
		return Quote{}, domain.NewValidationError("person_count", "must be a positive integer")
	}
	if _, ok := domain.ParseRoomType(string(roomType)); !ok {
		return Quote{}, domain.NewValidationError("room_type", "unknown room type")
	}
	rate, ok := pkg.RateFor(roomType)
	if !ok {
		return Quote{}, &domain.ConfigurationError{PackageTitle: pkg.Title, RoomType: roomType}
	}
	return Quote{
		PricePerPerson: rate,
		TotalPrice:     rate * float64(personCount),
	}, nil
}
