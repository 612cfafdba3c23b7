package handlers

import (
	"windkey/internal/breach"
	"windkey/internal/config"
	"windkey/internal/middleware"
	"windkey/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	vaultService *service.VaultService,
	categoryService *service.CategoryService,
	auditService *service.AuditService,
	breachClient *breach.Client,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	userHandler := NewUserHandler(userService, auditService, logger, config)
	vaultHandler := NewVaultHandler(vaultService, logger)
	categoryHandler := NewCategoryHandler(categoryService, logger)
	toolsHandler := NewToolsHandler(breachClient, logger)

	// Auth routes
	r.Post("/register", userHandler.Register)
	r.Post("/login", userHandler.Login)
	r.Post("/logout", userHandler.Logout)
	r.Get("/history", userHandler.History)

	// Vault routes
	r.Route("/passwords", func(r chi.Router) {
		r.Get("/", vaultHandler.List)
		r.Post("/", vaultHandler.Create)
		r.Get("/{id}", vaultHandler.Get)
		r.Put("/{id}", vaultHandler.Update)
		r.Delete("/{id}", vaultHandler.Delete)
	})

	// Category routes
	r.Route("/categories", func(r chi.Router) {
		r.Get("/", categoryHandler.List)
		r.Post("/", categoryHandler.Create)
		r.Put("/{id}", categoryHandler.Update)
		r.Delete("/{id}", categoryHandler.Delete)
	})

	// Tools
	r.Get("/generate-password", toolsHandler.GeneratePassword)
	r.Post("/check-password-breach", toolsHandler.CheckBreach)

	return &Handler{Router: r}
}
