package handlers

import (
	"net/http"

	"github.com/Tharaka1103/Hotel-Website-sub000/internal/domain"
	"github.com/go-chi/chi/v5"
)

// CreateBooking handles customer checkout on the public site.
func (h *Handlers) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateBookingRequest
	if err := h.decodeValid(r, &req); err != nil {
		writeDomainError(w, r, err)
		return
	}

	booking, err := h.bookingService.Create(r.Context(), &req)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, booking)
}

// ListBookings handles the admin booking list, optionally filtered by
// status.
func (h *Handlers) ListBookings(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r)

	var status *domain.BookingStatus
	if statusParam := r.URL.Query().Get("status"); statusParam != "" {
		st, ok := domain.ParseBookingStatus(statusParam)
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid status parameter")
			return
		}
		status = &st
	}

	bookings, err := h.bookingService.List(r.Context(), limit, offset, status)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}

	writeJSON(w, http.StatusOK, bookings)
}

// GetBooking handles fetching one booking by its booking code.
func (h *Handlers) GetBooking(w http.ResponseWriter, r *http.Request) {
	booking, err := h.bookingService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	// The allowed next statuses travel with the booking so the admin UI
	// offers exactly the actions the transition table permits.
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"booking":             booking,
		"allowed_transitions": domain.AllowedTransitions(booking.Status),
	})
}

// UpdateBooking handles PUT /api/bookings/{id} with {status?, adminNotes?}.
func (h *Handlers) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	h.updateBooking(w, r, chi.URLParam(r, "id"))
}

// UpdateBookingByQuery handles the list view's PUT /api/bookings?id=.
func (h *Handlers) UpdateBookingByQuery(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "Missing id parameter")
		return
	}
	h.updateBooking(w, r, id)
}

func (h *Handlers) updateBooking(w http.ResponseWriter, r *http.Request, id string) {
	actor, ok := getActor(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Admin session required")
		return
	}

	var req domain.UpdateBookingRequest
	if err := h.decodeValid(r, &req); err != nil {
		writeDomainError(w, r, err)
		return
	}

	updated, err := h.bookingService.Update(r.Context(), actor, id, &req)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeleteBooking handles DELETE /api/bookings?id=. Only cancelled or
// completed bookings may be removed.
func (h *Handlers) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	actor, ok := getActor(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Admin session required")
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "Missing id parameter")
		return
	}

	if err := h.bookingService.Delete(r.Context(), actor, id); err != nil {
		writeDomainError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
