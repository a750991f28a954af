package domain

import "fmt"

// ValidationError reports malformed input: a missing field, a bad type,
// or a value outside its allowed range.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ConfigurationError reports a package that is missing the rate for a
// requested room type.
type ConfigurationError struct {
	PackageTitle string
	RoomType     RoomType
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("package %q has no rate configured for room type %q", e.PackageTitle, e.RoomType)
}

// InvalidTransitionError reports a booking status change not allowed by
// the transition table.
type InvalidTransitionError struct {
	From BookingStatus
	To   BookingStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot transition booking from %q to %q", e.From, e.To)
}

// CapacityConflictError reports a room or bed already reserved by another
// booking on an overlapping date range.
type CapacityConflictError struct {
	ConflictingBookingID string
	RoomNumbers          []int
	BedNumbers           []int
}

func (e *CapacityConflictError) Error() string {
	if len(e.BedNumbers) > 0 {
		return fmt.Sprintf("beds %v already reserved by booking %s for an overlapping date range", e.BedNumbers, e.ConflictingBookingID)
	}
	return fmt.Sprintf("rooms %v already reserved by booking %s for an overlapping date range", e.RoomNumbers, e.ConflictingBookingID)
}

// InvalidOperationError reports an operation rejected by a business rule,
// such as deleting a booking that is still active.
type InvalidOperationError struct {
	Message string
}

func (e *InvalidOperationError) Error() string { return e.Message }

// AuthorizationError reports a role or session check failure.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string { return e.Message }

// NotFoundError reports an unknown booking, package, or admin id.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}
