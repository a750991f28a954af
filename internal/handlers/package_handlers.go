package handlers

import (
	"net/http"

	"github.com/Tharaka1103/Hotel-Website-sub000/internal/domain"
	"github.com/go-chi/chi/v5"
)

// ListPackages is public: the marketing site renders these.
func (h *Handlers) ListPackages(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r)

	packages, err := h.packageService.List(r.Context(), limit, offset)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	if packages == nil {
		packages = []domain.Package{}
	}

	writeJSON(w, http.StatusOK, packages)
}

func (h *Handlers) GetPackage(w http.ResponseWriter, r *http.Request) {
	pkg, err := h.packageService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, pkg)
}

func (h *Handlers) CreatePackage(w http.ResponseWriter, r *http.Request) {
	actor, ok := getActor(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Admin session required")
		return
	}

	var req domain.PackageRequest
	if err := h.decodeValid(r, &req); err != nil {
		writeDomainError(w, r, err)
		return
	}

	pkg, err := h.packageService.Create(r.Context(), actor, &req)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, pkg)
}

func (h *Handlers) UpdatePackage(w http.ResponseWriter, r *http.Request) {
	actor, ok := getActor(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Admin session required")
		return
	}

	var req domain.PackageRequest
	if err := h.decodeValid(r, &req); err != nil {
		writeDomainError(w, r, err)
		return
	}

	pkg, err := h.packageService.Update(r.Context(), actor, chi.URLParam(r, "id"), &req)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, pkg)
}

func (h *Handlers) DeletePackage(w http.ResponseWriter, r *http.Request) {
	actor, ok := getActor(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Admin session required")
		return
	}

	if err := h.packageService.Delete(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
