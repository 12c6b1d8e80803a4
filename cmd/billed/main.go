package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"billed/internal/api"
	"billed/internal/api/handlers"
	"billed/internal/repository"
	"billed/internal/service"
	"billed/pkg/auth"
	"billed/pkg/config"
	"billed/pkg/logger"
	"billed/pkg/postgres"

	"go.uber.org/zap"
)

// @title Billed API
// @version 1.0
// @description Expense-report gateway: bill upload, finalization, listing and auth

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting Billed gateway")

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db, appLogger)
	billRepo := repository.NewBillRepository(db, appLogger)

	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration)

	authService := service.NewAuthService(userRepo, jwtManager, appLogger)
	billService := service.NewBillService(billRepo, cfg.Upload.Dir, appLogger)

	authHandler := handlers.NewAuthHandler(authService, appLogger)
	billHandler := handlers.NewBillHandler(billService, appLogger)

	app := api.SetupRouter(authHandler, billHandler, jwtManager, cfg.Upload.Dir, appLogger)

	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
