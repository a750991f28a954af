package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Tharaka1103/Hotel-Website-sub000/internal/domain"
	"github.com/Tharaka1103/Hotel-Website-sub000/internal/service"
	"github.com/Tharaka1103/Hotel-Website-sub000/pkg/auth"
	"github.com/Tharaka1103/Hotel-Website-sub000/pkg/config"
	"github.com/Tharaka1103/Hotel-Website-sub000/pkg/logger"
	"github.com/go-playground/validator/v10"
)

type Handlers struct {
	bookingService      service.BookingService
	packageService      service.PackageService
	adminService        service.AdminService
	notificationService service.NotificationService
	config              *config.Config
	validate            *validator.Validate
}

func New(
	bookingService service.BookingService,
	packageService service.PackageService,
	adminService service.AdminService,
	notificationService service.NotificationService,
	cfg *config.Config,
) *Handlers {
	return &Handlers{
		bookingService:      bookingService,
		packageService:      packageService,
		adminService:        adminService,
		notificationService: notificationService,
		config:              cfg,
		validate:            validator.New(validator.WithRequiredStructEnabled()),
	}
}

type contextKey string

const actorKey contextKey = "actor"

// RequireAdmin resolves the admin session cookie and stores the acting
// admin's identity in the request context. Handlers pull it out with
// getActor and pass it into services explicitly.
func (h *Handlers) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(h.config.Session.CookieName)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Admin session required")
			return
		}

		claims, err := auth.Parse(cookie.Value, h.config.Session.JWTSecret)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Invalid admin session")
			return
		}

		// The session outlives account edits, so confirm the account is
		// still active on every request.
		admin, err := h.adminService.Resolve(r.Context(), claims.AdminID)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Invalid admin session")
			return
		}

		actor := domain.AdminIdentity{ID: admin.ID, Email: admin.Email, Role: admin.Role}
		ctx := context.WithValue(r.Context(), actorKey, actor)
		ctx = context.WithValue(ctx, logger.AdminIDKey, admin.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func getActor(r *http.Request) (domain.AdminIdentity, bool) {
	actor, ok := r.Context().Value(actorKey).(domain.AdminIdentity)
	return actor, ok
}

// decodeValid decodes the JSON body into dst and runs struct validation.
func (h *Handlers) decodeValid(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.NewValidationError("", "invalid JSON body")
	}
	if err := h.validate.Struct(dst); err != nil {
		var invalid validator.ValidationErrors
		if errors.As(err, &invalid) && len(invalid) > 0 {
			first := invalid[0]
			return domain.NewValidationError(first.Field(), "failed "+first.Tag()+" validation")
		}
		return domain.NewValidationError("", err.Error())
	}
	return nil
}

func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

// writeDomainError maps the error taxonomy onto HTTP statuses. Nothing
// escapes as an unhandled failure; unknown errors become a generic 500.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validationErr *domain.ValidationError
		configErr     *domain.ConfigurationError
		transitionErr *domain.InvalidTransitionError
		capacityErr   *domain.CapacityConflictError
		operationErr  *domain.InvalidOperationError
		authErr       *domain.AuthorizationError
		notFoundErr   *domain.NotFoundError
	)

	switch {
	case errors.As(err, &validationErr):
		writeError(w, http.StatusBadRequest, validationErr.Error())
	case errors.As(err, &configErr):
		writeError(w, http.StatusBadRequest, configErr.Error())
	case errors.As(err, &transitionErr):
		writeError(w, http.StatusConflict, transitionErr.Error())
	case errors.As(err, &capacityErr):
		writeError(w, http.StatusConflict, capacityErr.Error())
	case errors.As(err, &operationErr):
		writeError(w, http.StatusBadRequest, operationErr.Error())
	case errors.As(err, &authErr):
		writeError(w, http.StatusUnauthorized, authErr.Error())
	case errors.As(err, &notFoundErr):
		writeError(w, http.StatusNotFound, notFoundErr.Error())
	default:
		logger.ErrorContext(r.Context(), "Unhandled error", "error", err, "path", r.URL.Path)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func parsePagination(r *http.Request) (limit, offset int) {
	limit = 20
	offset = 0

	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}

	return limit, offset
}
