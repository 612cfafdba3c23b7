package main

import (
	"net/http"
	"windkey/internal/breach"
	"windkey/internal/config"
	"windkey/internal/crypto"
	"windkey/internal/handlers"
	"windkey/internal/middleware"
	"windkey/internal/repo"
	"windkey/internal/service"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	key, err := crypto.LoadOrCreateKey(cfg.EncryptionKeyFile)
	if err != nil {
		sugar.Fatalw("failed to load encryption key", "error", err, "path", cfg.EncryptionKeyFile)
	}

	userRepo := repo.NewUserRepository(gormDB)
	passwordRepo := repo.NewPasswordRepository(gormDB)
	categoryRepo := repo.NewCategoryRepository(gormDB)
	historyRepo := repo.NewHistoryRepository(gormDB)

	auditService := service.NewAuditService(historyRepo, sugar)
	userService := service.NewUserService(userRepo, auditService, cfg.TOTPIssuer)
	vaultService := service.NewVaultService(passwordRepo, key, auditService)
	categoryService := service.NewCategoryService(categoryRepo, auditService)
	breachClient := breach.NewClient(cfg.BreachAPIURL)

	h := handlers.NewHandler(userService, vaultService, categoryService, auditService, breachClient, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"DatabaseDSN", cfg.DatabaseDSN,
		"TOTPIssuer", cfg.TOTPIssuer,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
