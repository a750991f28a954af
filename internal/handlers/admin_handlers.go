package handlers

import (
	"net/http"
	"time"

	"github.com/Tharaka1103/Hotel-Website-sub000/internal/domain"
	"github.com/Tharaka1103/Hotel-Website-sub000/pkg/auth"
	"github.com/go-chi/chi/v5"
)

// Login verifies credentials and sets the admin session cookie.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := h.decodeValid(r, &req); err != nil {
		writeDomainError(w, r, err)
		return
	}

	admin, err := h.adminService.Login(r.Context(), &req)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	token, err := auth.NewSessionToken(admin.ID, admin.Email, string(admin.Role), h.config.Session.JWTSecret, h.config.Session.TTL)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.config.Session.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.config.Session.TTL),
		HttpOnly: true,
		Secure:   h.config.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, admin)
}

// Logout clears the session cookie.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.config.Session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.config.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusNoContent)
}

// CreateAdmin handles POST /api/admin/create, super_admin only.
func (h *Handlers) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	actor, ok := getActor(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Admin session required")
		return
	}

	var req domain.CreateAdminRequest
	if err := h.decodeValid(r, &req); err != nil {
		writeDomainError(w, r, err)
		return
	}

	admin, err := h.adminService.Create(r.Context(), actor, &req)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, admin)
}

func (h *Handlers) ListAdmins(w http.ResponseWriter, r *http.Request) {
	actor, ok := getActor(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Admin session required")
		return
	}

	limit, offset := parsePagination(r)
	admins, err := h.adminService.List(r.Context(), actor, limit, offset)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	if admins == nil {
		admins = []domain.Admin{}
	}

	writeJSON(w, http.StatusOK, admins)
}

func (h *Handlers) UpdateAdmin(w http.ResponseWriter, r *http.Request) {
	actor, ok := getActor(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Admin session required")
		return
	}

	var changes domain.AdminChanges
	if err := h.decodeValid(r, &changes); err != nil {
		writeDomainError(w, r, err)
		return
	}

	admin, err := h.adminService.Update(r.Context(), actor, chi.URLParam(r, "id"), changes)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, admin)
}

func (h *Handlers) DeleteAdmin(w http.ResponseWriter, r *http.Request) {
	actor, ok := getActor(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Admin session required")
		return
	}

	if err := h.adminService.Delete(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
