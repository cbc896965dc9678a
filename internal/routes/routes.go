package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/softcorner-studio/storefront-api/internal/config"
	"github.com/softcorner-studio/storefront-api/internal/handlers"
	"github.com/softcorner-studio/storefront-api/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	webhookHandler *handlers.WebhookHandler,
	categoryHandler *handlers.CategoryHandler,
	navigationHandler *handlers.NavigationHandler,
	productHandler *handlers.ProductHandler,
	detailsHandler *handlers.ProductDetailsHandler,
	orderHandler *handlers.OrderHandler,
	dashboardHandler *handlers.DashboardHandler,
	userHandler *handlers.UserHandler,
	checkoutHandler *handlers.CheckoutHandler,
	shopperAuth fiber.Handler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Dashboard auth — stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)
	auth.Post("/webhook", webhookHandler.HandleIdentity)

	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)

	// Storefront catalog — public reads, admin-only category creation
	api.Get("/categories", categoryHandler.List)
	api.Post("/categories", middleware.JWTProtected(cfg), categoryHandler.Create)
	api.Get("/sync-categories", middleware.JWTProtected(cfg), categoryHandler.SyncReport)
	api.Post("/sync-categories", middleware.JWTProtected(cfg), categoryHandler.SyncRepair)

	api.Get("/navigation", navigationHandler.List)
	api.Post("/navigation", navigationHandler.Create)
	api.Put("/navigation", navigationHandler.Update)
	api.Delete("/navigation", navigationHandler.Delete)

	api.Get("/products", productHandler.List)
	api.Post("/products", productHandler.Create)
	api.Get("/products/:id", productHandler.Get)
	api.Put("/products/:id", productHandler.Update)
	api.Delete("/products/:id", productHandler.Delete)

	api.Post("/product-details", detailsHandler.Create)
	api.Get("/product-details/:id", detailsHandler.Get)
	api.Put("/product-details/:id", detailsHandler.Update)
	api.Delete("/product-details/:id", detailsHandler.Delete)
	api.Post("/product-details/:id/reduce-stock", detailsHandler.ReduceStock)

	// Orders: shoppers create with a verified provider session, admins manage
	api.Get("/orders", middleware.JWTProtected(cfg), orderHandler.List)
	api.Post("/orders", shopperAuth, orderHandler.Create)
	api.Patch("/orders", middleware.JWTProtected(cfg), orderHandler.UpdateStatus)
	api.Delete("/orders", middleware.JWTProtected(cfg), orderHandler.Delete)

	api.Get("/dashboard-stats", middleware.JWTProtected(cfg), dashboardHandler.Stats)
	api.Get("/users", middleware.JWTProtected(cfg), userHandler.List)

	// Checkout — payment session creation for the storefront cart
	api.Post("/checkout", checkoutHandler.Create)
}
