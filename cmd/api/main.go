package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/Tharaka1103/Hotel-Website-sub000/internal/domain"
	"github.com/Tharaka1103/Hotel-Website-sub000/internal/handlers"
	"github.com/Tharaka1103/Hotel-Website-sub000/internal/mailer"
	"github.com/Tharaka1103/Hotel-Website-sub000/internal/notifier"
	"github.com/Tharaka1103/Hotel-Website-sub000/internal/repository"
	"github.com/Tharaka1103/Hotel-Website-sub000/internal/service"
	"github.com/Tharaka1103/Hotel-Website-sub000/pkg/config"
	"github.com/Tharaka1103/Hotel-Website-sub000/pkg/database"
	"github.com/Tharaka1103/Hotel-Website-sub000/pkg/events"
	"github.com/Tharaka1103/Hotel-Website-sub000/pkg/logger"
	mw "github.com/Tharaka1103/Hotel-Website-sub000/pkg/middleware"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()
	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := repository.EnsureSchema(ctx, pool); err != nil {
		logger.Error("Failed to apply database schema", "error", err)
		os.Exit(1)
	}

	redisOpts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		logger.Error("Invalid Redis URL", "error", err)
		os.Exit(1)
	}
	if cfg.Redis.Password != "" {
		redisOpts.Password = cfg.Redis.Password
	}
	redisOpts.DB = cfg.Redis.DB
	redisClient := redis.NewClient(redisOpts)
	defer redisClient.Close()

	eventBus, err := events.NewNATSEventBus(cfg.NATS.URL)
	if err != nil {
		logger.Error("Failed to connect to NATS", "error", err)
		os.Exit(1)
	}
	defer eventBus.Close()

	bookingRepo := repository.NewBookingRepository(pool)
	packageRepo := repository.NewPackageRepository(pool)
	adminRepo := repository.NewAdminRepository(pool)
	notificationRepo := repository.NewNotificationRepository(pool)

	var mail mailer.Service
	if cfg.Email.DevMode {
		mail = mailer.NewDevMailer()
	} else {
		m, err := mailer.NewMailerSendMailer(cfg.Email.MailerSendKey, cfg.Email.FromName, cfg.Email.FromEmail)
		if err != nil {
			logger.Warn("Mailer disabled, falling back to dev mailer", "error", err)
			mail = mailer.NewDevMailer()
		} else {
			mail = m
		}
	}

	bookingService := service.NewBookingService(bookingRepo, packageRepo, eventBus, mail)
	packageService := service.NewPackageService(packageRepo)
	adminService := service.NewAdminService(adminRepo)
	notificationService := service.NewNotificationService(notificationRepo, redisClient)

	seedSuperAdmin(ctx, adminService)

	if err := notifier.New(notificationService, mail, cfg.Email.AdminEmail).Subscribe(eventBus); err != nil {
		logger.Error("Failed to subscribe notifier", "error", err)
		os.Exit(1)
	}

	h := handlers.New(bookingService, packageService, adminService, notificationService, cfg)

	checkoutLimiter := mw.NewRateLimiter(redisClient, mw.RateLimitConfig{
		Requests: cfg.Booking.PublicRateLimit,
		Window:   cfg.Booking.PublicRateWindow,
	})

	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(mw.ServiceName("api"))
	r.Use(mw.Logging)
	r.Use(mw.Health)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api", func(r chi.Router) {
		// Public marketing site endpoints
		r.Get("/packages", h.ListPackages)
		r.Get("/packages/{id}", h.GetPackage)
		r.With(checkoutLimiter.Middleware()).Post("/bookings", h.CreateBooking)

		r.Post("/admin/login", h.Login)
		r.Post("/admin/logout", h.Logout)

		// Admin panel endpoints
		r.Group(func(r chi.Router) {
			r.Use(h.RequireAdmin)

			r.Get("/bookings", h.ListBookings)
			r.Get("/bookings/{id}", h.GetBooking)
			r.Put("/bookings/{id}", h.UpdateBooking)
			r.Put("/bookings", h.UpdateBookingByQuery)
			r.Delete("/bookings", h.DeleteBooking)

			r.Post("/packages", h.CreatePackage)
			r.Put("/packages/{id}", h.UpdatePackage)
			r.Delete("/packages/{id}", h.DeletePackage)

			r.Post("/admin/create", h.CreateAdmin)
			r.Get("/admin/admins", h.ListAdmins)
			r.Put("/admin/admins/{id}", h.UpdateAdmin)
			r.Delete("/admin/admins/{id}", h.DeleteAdmin)

			r.Get("/notifications", h.ListNotifications)
			r.Get("/notifications/unread-count", h.UnreadCount)
			r.Put("/notifications/{id}/read", h.MarkNotificationRead)
			r.Put("/notifications/read-all", h.MarkAllNotificationsRead)
		})
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down API server...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
	}()

	logger.Info("Starting API server", "port", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
}

// seedSuperAdmin creates the first super admin from SEED_ADMIN_EMAIL /
// SEED_ADMIN_PASSWORD when the account does not exist yet. A fresh
// deployment has no admins, so this is the only way in.
func seedSuperAdmin(ctx context.Context, admins service.AdminService) {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	bootstrap := domain.AdminIdentity{Role: domain.RoleSuperAdmin}
	_, err := admins.Create(ctx, bootstrap, &domain.CreateAdminRequest{
		Email:    email,
		Password: password,
		Name:     "Super Admin",
		Role:     string(domain.RoleSuperAdmin),
	})
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			return // already seeded
		}
		logger.Warn("Failed to seed super admin", "error", err)
	}
}
