package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"etsy-mock-api/internal/config"
	"etsy-mock-api/internal/handler"
	"etsy-mock-api/internal/middleware"
	"etsy-mock-api/internal/registry"
	"etsy-mock-api/internal/repository"
	"etsy-mock-api/internal/router"
	"etsy-mock-api/internal/service"

	"github.com/redis/go-redis/v9"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Starting Mock Etsy API v3...")

	// Load configuration
	cfg := config.MustLoad()
	log.Printf("Environment: %s", cfg.App.Environment)

	// Entity store: in-memory, seeded once, lives for the process lifetime
	store := repository.NewMemoryStore()
	store.Seed()
	log.Printf("Seeded sample data: shop_id=%d user_id=%d receipts=3 listings=5",
		repository.SeedShopID, repository.SeedUserID)

	// Token store based on config
	var tokenStore registry.TokenStore
	switch cfg.TokenStore.Type {
	case "redis":
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.TokenStore.RedisAddress(),
			Password: cfg.TokenStore.RedisPassword,
			DB:       cfg.TokenStore.RedisDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		redisStore, err := registry.NewRedisTokenStore(ctx, redisClient)
		cancel()
		if err != nil {
			log.Fatalf("Failed to initialize Redis token store: %v", err)
		}
		tokenStore = redisStore
		log.Println("Redis token store initialized")
	default: // memory
		tokenStore = registry.NewMemoryTokenStore()
		log.Println("In-memory token store initialized")
	}

	// Optional request audit log
	var requestLogs repository.RequestLogRepository
	if cfg.RequestLog.Enabled {
		sqliteLogs, err := repository.NewSQLiteRequestLogRepository(cfg.RequestLog.Path)
		if err != nil {
			log.Fatalf("Failed to initialize request log: %v", err)
		}
		defer sqliteLogs.Close()
		requestLogs = sqliteLogs
		log.Println("SQLite request log initialized")
	}

	// Initialize services
	tokenService := service.NewTokenService(tokenStore)
	shopService := service.NewShopService(store)
	receiptService := service.NewReceiptService(store, store)
	listingService := service.NewListingService(store, store)

	// Initialize handlers
	baseHandler := handler.New(cfg.App.Name, cfg.App.Version)
	oauthHandler := handler.NewOAuthHandler(tokenService)
	shopHandler := handler.NewShopHandler(shopService)
	receiptHandler := handler.NewReceiptHandler(receiptService)
	listingHandler := handler.NewListingHandler(listingService)
	adminHandler := handler.NewAdminHandler(store, requestLogs)
	logHandler := handler.NewRequestLogHandler(requestLogs)

	// Create the auth gate with injected dependencies
	authMiddleware := middleware.NewAuthMiddleware(middleware.AuthConfig{
		TokenService: tokenService,
	})

	// Create router
	r := router.New(router.Config{
		Handler:        baseHandler,
		OAuthHandler:   oauthHandler,
		ShopHandler:    shopHandler,
		ReceiptHandler: receiptHandler,
		ListingHandler: listingHandler,
		AdminHandler:   adminHandler,
		LogHandler:     logHandler,
		AuthMiddleware: authMiddleware,
		Logging:        middleware.NewLogging(requestLogs),
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server listening on %s", cfg.Server.Address())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
}
