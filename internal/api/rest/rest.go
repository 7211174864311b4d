package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/eventra/eventra/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Gateway webhook (authenticated by its HMAC signature, not a session)
		v1.POST("/webhooks/paystack", handler.PaystackWebhook)

		// Event endpoints (public read access)
		v1.GET("/events", handler.ListEvents)
		v1.GET("/events/:id", handler.GetEvent)
		v1.POST("/events", middleware.Auth(authCfg), handler.CreateEvent)

		// Purchase endpoints (requires authentication)
		v1.POST("/tickets/purchase", middleware.Auth(authCfg), handler.PurchaseTickets)
		v1.GET("/tickets", middleware.Auth(authCfg), handler.ListMyTickets)
		v1.POST("/payments/initialize", middleware.Auth(authCfg), handler.InitializePayment)

		// Resale marketplace
		v1.GET("/resale/listings", handler.ListResaleListings)
		v1.POST("/resale/listings", middleware.Auth(authCfg), handler.CreateResaleListing)
		v1.POST("/resale/listings/:id/buy", middleware.Auth(authCfg), handler.BuyResaleListing)

		// Certificate endpoints (organizer checks happen in the service)
		v1.POST("/events/:id/certificates/collection", middleware.Auth(authCfg), handler.CreateCertificateCollection)
		v1.POST("/events/:id/certificates", middleware.Auth(authCfg), handler.MintCertificate)
		v1.POST("/events/:id/certificates/batch", middleware.Auth(authCfg), handler.BatchMintCertificates)
		v1.GET("/certificates", middleware.Auth(authCfg), handler.ListMyCertificates)

		// Reward ledger (requires authentication)
		v1.GET("/points", middleware.Auth(authCfg), handler.GetPoints)

		// Mirror-node verification (public read access)
		v1.GET("/ledger/transactions/:id/verify", handler.VerifyLedgerTransaction)

		// Scheduled-job endpoints (requires the cron secret)
		v1.GET("/jobs/event-reminders", middleware.CronAuth(authCfg), handler.RunEventReminders)
	}
}
