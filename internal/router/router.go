package router

import (
	"net/http"

	"etsy-mock-api/internal/handler"
	"etsy-mock-api/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// Config holds the configuration for creating a router.
type Config struct {
	Handler        *handler.Handler
	OAuthHandler   *handler.OAuthHandler
	ShopHandler    *handler.ShopHandler
	ReceiptHandler *handler.ReceiptHandler
	ListingHandler *handler.ListingHandler
	AdminHandler   *handler.AdminHandler
	LogHandler     *handler.RequestLogHandler
	AuthMiddleware func(http.Handler) http.Handler
	Logging        func(http.Handler) http.Handler
}

// New creates and configures the HTTP router. The auth gate is composed
// only in front of the protected group; the oauth, ping, root and internal
// endpoints sit outside it.
func New(cfg Config) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware stack (applies to ALL routes)
	r.Use(middleware.Recovery)
	r.Use(middleware.RequestID)
	if cfg.Logging != nil {
		r.Use(cfg.Logging)
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID", "x-api-key"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// PUBLIC routes (no auth required)
	if cfg.Handler != nil {
		r.Get("/", cfg.Handler.Root)
		r.Get("/v3/application/openapi-ping", cfg.Handler.Ping)
	}
	if cfg.OAuthHandler != nil {
		r.Post("/v3/public/oauth/token", cfg.OAuthHandler.Token)
	}

	// Internal observability endpoints - public, not part of the mocked API
	if cfg.AdminHandler != nil {
		r.Get("/internal/stats", cfg.AdminHandler.GetStats)
	}
	if cfg.LogHandler != nil {
		r.Get("/internal/requests", cfg.LogHandler.List)
	}

	// AUTHENTICATED routes (use Group to apply the auth gate only to these)
	r.Group(func(r chi.Router) {
		if cfg.AuthMiddleware != nil {
			r.Use(cfg.AuthMiddleware)
		}

		if cfg.ShopHandler != nil {
			r.Get("/v3/application/shops/{shop_id}", cfg.ShopHandler.GetShop)
			r.Get("/v3/application/users/{user_id}/shops", cfg.ShopHandler.GetShopsByUser)
		}

		if cfg.ReceiptHandler != nil {
			r.Get("/v3/application/shops/{shop_id}/receipts", cfg.ReceiptHandler.ListShopReceipts)
			r.Get("/v3/application/shops/{shop_id}/receipts/{receipt_id}", cfg.ReceiptHandler.GetShopReceipt)
			r.Put("/v3/application/shops/{shop_id}/receipts/{receipt_id}", cfg.ReceiptHandler.UpdateShopReceipt)
		}

		if cfg.ListingHandler != nil {
			r.Get("/v3/application/listings/{listing_id}", cfg.ListingHandler.GetListing)
			r.Get("/v3/application/shops/{shop_id}/listings", cfg.ListingHandler.ListShopListings)
			r.Get("/v3/application/shops/{shop_id}/listings/active", cfg.ListingHandler.ListActiveShopListings)
			r.Post("/v3/application/shops/{shop_id}/listings", cfg.ListingHandler.CreateListing)
			r.Put("/v3/application/shops/{shop_id}/listings/{listing_id}", cfg.ListingHandler.UpdateListing)
			r.Patch("/v3/application/shops/{shop_id}/listings/{listing_id}", cfg.ListingHandler.UpdateListing)
		}
	})

	return r
}
