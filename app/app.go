// File: app/app.go
package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/george-593/microsoft-bank-website/config"
	"github.com/george-593/microsoft-bank-website/handler"
	"github.com/george-593/microsoft-bank-website/logger"
	"github.com/george-593/microsoft-bank-website/repository"
	"github.com/george-593/microsoft-bank-website/router"
	"github.com/george-593/microsoft-bank-website/service"
)

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.Log.Info("Logger initialized")
	logger.Log.Info("Configuration loaded successfully")

	// --- Wiring All Layers Together ---
	// The whole store is one in-memory repository; every service shares it.

	accountRepo := repository.NewAccountRepository()
	if config.AppConfig.Store.SeedFixtures {
		accountRepo.Seed()
		logger.Log.Info("Store seeded with demo fixture account")
	}

	accountService := service.NewAccountService(accountRepo)
	accountHandler := handler.NewAccountHandler(accountService)

	transactionService := service.NewTransactionService(accountRepo)
	transactionHandler := handler.NewTransactionHandler(transactionService)

	// Start the router with all handlers
	r := router.NewRouter(accountHandler, transactionHandler)

	// --- Start the Server with Graceful Shutdown ---
	port := config.AppConfig.Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}
