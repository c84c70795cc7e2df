package api

import (
	"net/http"

	"github.com/ao-tech/club-manager/internal/api/handlers"
	"github.com/ao-tech/club-manager/internal/api/middleware"
	"github.com/ao-tech/club-manager/internal/config"
	"github.com/ao-tech/club-manager/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(services *service.Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth, cfg)
	memberHandler := handlers.NewMemberHandler(services.Member)
	trainingHandler := handlers.NewTrainingHandler(services.Training)
	adminHandler := handlers.NewAdminHandler(services.Admin)

	// Public auth routes
	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)

	// Session-gated auth routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(services.Auth))
		r.Post("/logout", authHandler.Logout)
		r.Get("/check-session", authHandler.CheckSession)
	})

	// Member routes
	r.Route("/members", func(r chi.Router) {
		r.Post("/", memberHandler.Create)
		r.Get("/", memberHandler.List)
		r.Get("/{id}", memberHandler.Get)
		r.Put("/{id}", memberHandler.Update)
		r.Delete("/{id}", memberHandler.Delete)
		r.Get("/{id}/training-sessions", memberHandler.Attendance)
	})

	// Training session routes
	r.Route("/training-sessions", func(r chi.Router) {
		r.Post("/", trainingHandler.Create)
		r.Get("/", trainingHandler.List)
		r.Get("/count", trainingHandler.Count)
		r.Get("/{id}", trainingHandler.Get)
		r.Put("/{id}", trainingHandler.Update)
		r.Delete("/{id}", trainingHandler.Delete)
	})

	// Admin routes: session validation first, then the role gate, before any
	// privileged statement can run.
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.Auth(services.Auth))
		r.Use(middleware.RequireAdmin(services.Admin))

		r.Get("/users", adminHandler.ListUsers)
		r.Put("/users/{userId}/approve", adminHandler.ApproveUser)
		r.Put("/users/{userId}/make-admin", adminHandler.MakeAdmin)
		r.Delete("/users/{userId}", adminHandler.DeleteUser)
		r.Get("/actions", adminHandler.Actions)
	})

	return r
}
