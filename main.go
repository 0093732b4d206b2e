// File: ecoscan/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ecoscan/config"
	"ecoscan/database"
	accountRepoPkg "ecoscan/database/repository/account"
	historyRepoPkg "ecoscan/database/repository/history"
	"ecoscan/handlers"
	"ecoscan/middleware"
	"ecoscan/routes"
	"ecoscan/services/account"
	"ecoscan/services/classifier"
	"ecoscan/services/ledger"
	"ecoscan/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	accountRepo := accountRepoPkg.NewMongoAccountRepo()
	historyRepo := historyRepoPkg.NewMongoHistoryRepo()

	// services.
	accountService := &account.DefaultAccountService{
		Repo: accountRepo,
	}
	ledgerService := &ledger.DefaultLedgerService{
		Repo: historyRepo,
	}

	resultCache := classifier.NewResultCache(utils.GetCacheClient(), time.Hour)
	classifierService, err := classifier.NewGeminiClassifier(
		config.AppConfig.GeminiAPIKey,
		config.AppConfig.GeminiModel,
		resultCache,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize classifier: %v", err)
	}
	defer classifierService.Close()

	// handlers.
	authHandler := handlers.NewAuthHandler(accountService)
	historyHandler := handlers.NewHistoryHandler(ledgerService)
	classifyHandler := handlers.NewClassifyHandler(classifierService)
	adminHandler := handlers.NewAdminHandler(ledgerService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		SignupHandler:         authHandler.SignupHandler,
		LoginHandler:          authHandler.LoginHandler,
		GetHistoryHandler:     historyHandler.GetHistoryHandler,
		CreateHistoryHandler:  historyHandler.CreateHistoryHandler,
		ClassifyWasteHandler:  classifyHandler.ClassifyWasteHandler,
		ListReportsHandler:    adminHandler.ListReportsHandler,
		ListCategoriesHandler: handlers.ListCategoriesHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
