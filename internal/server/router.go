// Package server assembles the HTTP routes of the API.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"

	"inmogestor-backend/internal/app"
	"inmogestor-backend/internal/handlers"
	"inmogestor-backend/internal/logger"
	"inmogestor-backend/internal/middleware"
)

// NewRouter returns the API handler for a.
func NewRouter(a *app.App) http.Handler {
	cfg := a.Config

	// 1. Global middleware
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(logger.Middleware(a.Logger))
	r.Use(a.Metrics.Middleware)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", logger.RequestIDHeader},
		ExposedHeaders:   []string{logger.RequestIDHeader, "Retry-After"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.NotFound(handlers.NotFound)

	// 2. Handlers
	authHandler := handlers.NewAuthHandler(a.Catalog, cfg.JWTSecret, cfg.TokenTTL)
	dashboardHandler := handlers.NewDashboardHandler(a.Catalog)
	tenantHandler := handlers.NewTenantHandler(a.Catalog)
	ownerHandler := handlers.NewOwnerHandler(a.Catalog)
	propertyHandler := handlers.NewPropertyHandler(a.Catalog)
	contractHandler := handlers.NewContractHandler(a.Catalog)
	paymentHandler := handlers.NewPaymentHandler(a.Catalog, cfg.Forms.SubmitDelay, a.Metrics)
	userHandler := handlers.NewUserHandler(a.Catalog, cfg.Forms.SubmitDelay, a.Metrics)
	reportHandler := handlers.NewReportHandler(a.Catalog, a.Files, a.Metrics)
	notificationHandler := handlers.NewNotificationHandler(a.Catalog)
	backupHandler := handlers.NewBackupHandler(a.Catalog)
	settingsHandler := handlers.NewSettingsHandler(a.Settings)
	uploadHandler := handlers.NewUploadHandler(a.Files)
	formHandler := handlers.NewFormHandler(a.Catalog)
	navHandler := handlers.NewNavigationHandler()

	// 3. Public routes
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("InmoGestor API"))
	})
	r.Get("/api/health", healthHandler(a))
	r.Method(http.MethodGet, "/metrics", a.Metrics.Handler())

	loginLimit := rate.Limit(float64(cfg.Limits.LoginPerMinute) / 60)
	r.With(middleware.RateLimit(loginLimit, cfg.Limits.LoginBurst)).Post("/api/auth/login", authHandler.Login)

	// The frontend needs the page table before sign-in to render login
	// and 404 screens.
	r.Get("/api/routes", navHandler.Routes)
	r.Get("/api/routes/resolve", navHandler.Resolve)

	r.Get("/api/files/*", uploadHandler.ServeFile)

	// 4. Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWTSecret))

		r.Get("/api/auth/me", authHandler.Me)
		r.Get("/api/navigation", navHandler.Sidebar)

		r.Get("/api/dashboard", dashboardHandler.Get)
		r.Get("/api/tenants", tenantHandler.List)
		r.Get("/api/owners", ownerHandler.List)
		r.Get("/api/properties", propertyHandler.List)
		r.Get("/api/contracts", contractHandler.List)

		r.Get("/api/payments", paymentHandler.List)
		r.Get("/api/payments/export", paymentHandler.Export)
		r.Post("/api/payments", paymentHandler.Create)

		r.Get("/api/reports", reportHandler.Get)
		r.Post("/api/reports/export", reportHandler.Export)

		r.Get("/api/notifications", notificationHandler.List)
		r.Get("/api/notifications/export", notificationHandler.Export)
		r.Get("/api/backups", backupHandler.List)
		r.Get("/api/settings", settingsHandler.Get)
		r.Get("/api/users", userHandler.List)

		r.Get("/api/forms/payment", formHandler.PaymentForm)
		r.Get("/api/forms/payment/contracts/{id}", formHandler.ContractFill)
		r.Get("/api/forms/user", formHandler.UserForm)

		// Settings changes need at least a manager
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireMinRole("manager"))

			r.Put("/api/settings/{group}", settingsHandler.Update)
			r.Post("/api/settings/logo", uploadHandler.UploadLogo)
		})

		// Creating staff accounts is restricted to admins
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireMinRole("admin"))

			r.Post("/api/users", userHandler.Create)
		})
	})

	return r
}

func healthHandler(a *app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]interface{}{
			"status": "ok",
			"source": a.Catalog.Source(),
		}
		status := http.StatusOK
		if a.DB != nil {
			db := a.DB.Health()
			resp["database"] = db
			if db["status"] != "up" {
				resp["status"] = "degraded"
				status = http.StatusServiceUnavailable
			}
		}
		handlers.JSON(w, status, resp)
	}
}
