package domain

import "time"

// Package is a bookable surf program offered on the marketing site.
// Room rates are per person per stay; a nil rate means the package does
// not offer that room type.
type Package struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Price       float64  `json:"price"`

	DoubleRoomPrice *float64 `json:"double_room_price,omitempty"`
	DomeRoomPrice   *float64 `json:"dome_room_price,omitempty"`
	SingleRoomPrice *float64 `json:"single_room_price,omitempty"`
	FamilyRoomPrice *float64 `json:"family_room_price,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RateFor returns the per-person rate for the given room type, or false
// when the package has no rate configured for it.
func (p *Package) RateFor(rt RoomType) (float64, bool) {
	var rate *float64
	switch rt {
	case RoomDouble:
		rate = p.DoubleRoomPrice
	case RoomDome:
		rate = p.DomeRoomPrice
	case RoomSingle:
		rate = p.SingleRoomPrice
	case RoomFamily:
		rate = p.FamilyRoomPrice
	}
	if rate == nil {
		return 0, false
	}
	return *rate, true
}

// Validate checks the package's invariants before it is offered for
// booking.
func (p *Package) Validate() error {
	if p.Title == "" {
		return NewValidationError("title", "is required")
	}
	if p.Price < 0 {
		return NewValidationError("price", "must not be negative")
	}
	if len(p.Features) == 0 {
		return NewValidationError("features", "must not be empty")
	}
	for _, rate := range []*float64{p.DoubleRoomPrice, p.DomeRoomPrice, p.SingleRoomPrice, p.FamilyRoomPrice} {
		if rate != nil && *rate < 0 {
			return NewValidationError("room rates", "must not be negative")
		}
	}
	return nil
}

// Snapshot copies the package terms for embedding into a new booking.
func (p *Package) Snapshot() PackageSnapshot {
	features := make([]string, len(p.Features))
	copy(features, p.Features)
	return PackageSnapshot{
		PackageID:          p.ID,
		PackageTitle:       p.Title,
		PackageDescription: p.Description,
		PackagePrice:       p.Price,
		PackageFeatures:    features,
	}
}
