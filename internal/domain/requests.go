package domain

import "strings"

// Request bodies for the public and admin APIs. Tags drive
// go-playground/validator at the handler boundary; anything the tags
// cannot express (room/bed exclusivity, transition legality) is checked
// in the service layer.

type CreateBookingRequest struct {
	PackageID     string `json:"package_id" validate:"required,uuid"`
	CustomerName  string `json:"customer_name" validate:"required,max=200"`
	CustomerEmail string `json:"customer_email" validate:"required,email"`
	CustomerPhone string `json:"customer_phone" validate:"required,max=40"`
	PersonCount   int    `json:"person_count" validate:"required,min=1"`
	RoomType      string `json:"room_type" validate:"required,oneof=room dome single family"`
	RoomNumbers   []int  `json:"room_numbers,omitempty" validate:"dive,min=1"`
	BedNumbers    []int  `json:"bed_numbers,omitempty" validate:"dive,min=1"`
	// CheckInDate is a calendar date; check-out is derived from the fixed
	// stay length.
	CheckInDate string `json:"check_in_date" validate:"required,datetime=2006-01-02"`
}

func (r *CreateBookingRequest) Normalize() {
	r.CustomerName = strings.TrimSpace(r.CustomerName)
	r.CustomerEmail = strings.ToLower(strings.TrimSpace(r.CustomerEmail))
	r.CustomerPhone = strings.TrimSpace(r.CustomerPhone)
}

// UpdateBookingRequest carries an admin's status change and/or note
// edit. Both are applied in one atomic update when both are present.
type UpdateBookingRequest struct {
	Status     *string `json:"status,omitempty" validate:"omitempty,oneof=pending confirmed cancelled completed"`
	AdminNotes *string `json:"adminNotes,omitempty" validate:"omitempty,max=2000"`
}

type PackageRequest struct {
	Title           string   `json:"title" validate:"required,max=200"`
	Description     string   `json:"description" validate:"max=5000"`
	Features        []string `json:"features" validate:"required,min=1,dive,required"`
	Price           float64  `json:"price" validate:"gte=0"`
	DoubleRoomPrice *float64 `json:"double_room_price,omitempty" validate:"omitempty,gte=0"`
	DomeRoomPrice   *float64 `json:"dome_room_price,omitempty" validate:"omitempty,gte=0"`
	SingleRoomPrice *float64 `json:"single_room_price,omitempty" validate:"omitempty,gte=0"`
	FamilyRoomPrice *float64 `json:"family_room_price,omitempty" validate:"omitempty,gte=0"`
}

type CreateAdminRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required,max=200"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=admin super_admin"`
}

func (r *CreateAdminRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Name = strings.TrimSpace(r.Name)
	if r.Role == "" {
		r.Role = string(RoleAdmin)
	}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}
