package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/textileoem/platform/internal/config"
	"github.com/textileoem/platform/internal/logger"
	"github.com/textileoem/platform/internal/obs"
	"github.com/textileoem/platform/internal/server/http/dto"
	"github.com/textileoem/platform/internal/server/http/handlers"
	"github.com/textileoem/platform/internal/server/http/middleware"
)

// Facade is everything the HTTP layer needs from the application core.
type Facade interface {
	handlers.PlatformFacade
	middleware.IdentityResolver
}

// Limiters groups the per-class rate limiter instances.
type Limiters struct {
	General      *middleware.Limiter
	Auth         *middleware.Limiter
	Payment      *middleware.Limiter
	Notification *middleware.Limiter
}

// NewLimiters builds the four limiter classes. The general class is
// env-tunable, the rest carry fixed windows.
func NewLimiters(cfg *config.Config) *Limiters {
	return &Limiters{
		General:      middleware.NewLimiter(cfg.RateLimitMax, cfg.RateLimitWindow),
		Auth:         middleware.NewLimiter(5, 15*time.Minute),
		Payment:      middleware.NewLimiter(3, time.Minute),
		Notification: middleware.NewLimiter(10, time.Minute),
	}
}

// Stop terminates the janitor goroutines of every class.
func (l *Limiters) Stop() {
	l.General.Stop()
	l.Auth.Stop()
	l.Payment.Stop()
	l.Notification.Stop()
}

// Setup configures the gin engine: middleware chain, resource routes and the
// catch-all 404.
func Setup(facade Facade, cfg *config.Config, logs *logger.Set, metrics *obs.Metrics, limiters *Limiters) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	dto.RegisterValidators()
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.SecurityHeaders())
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Timing(metrics, logs.Performance))
	engine.Use(middleware.RequestAudit(logs.Audit))
	engine.Use(middleware.SecurityEvents(logs.Security))
	engine.Use(middleware.DataAccessAudit(logs.Audit))
	engine.Use(middleware.RateLimit(limiters.General, middleware.GeneralLimitMessage, logs.Security))
	engine.Use(middleware.ErrorHandler(logs.App, cfg.Production()))

	authHandler := handlers.NewAuthHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	complianceHandler := handlers.NewComplianceHandler(facade)
	paymentHandler := handlers.NewPaymentHandler(facade)
	notificationHandler := handlers.NewNotificationHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade, metrics)

	engine.GET("/", describeService(cfg))
	api := engine.Group("/api")
	api.GET("", describeAPI())

	authRoutes := api.Group("/auth")
	authRoutes.Use(middleware.RateLimit(limiters.Auth, middleware.AuthLimitMessage, logs.Security))
	authRoutes.POST("/token", middleware.SupabaseAuth(facade), authHandler.Token)

	orders := api.Group("/orders")
	orders.Use(middleware.AuthRequired(facade))
	orders.POST("", middleware.ValidateBody[dto.CreateOrderRequest](), orderHandler.Create)
	orders.GET("", orderHandler.List)
	orders.GET("/stats", orderHandler.Stats)
	orders.GET("/:id", orderHandler.Get)
	orders.PATCH("/:id", middleware.ValidateBody[dto.UpdateOrderRequest](), orderHandler.Update)
	orders.DELETE("/:id", orderHandler.Delete)

	compliance := api.Group("/compliance")
	compliance.Use(middleware.AuthRequired(facade))
	compliance.POST("", middleware.ValidateBody[dto.CreateComplianceRequest](), complianceHandler.Create)
	compliance.GET("", complianceHandler.List)
	compliance.GET("/stats", complianceHandler.Stats)
	compliance.GET("/upcoming", complianceHandler.Upcoming)
	compliance.GET("/:id", complianceHandler.Get)
	compliance.PATCH("/:id", middleware.ValidateBody[dto.UpdateComplianceRequest](), complianceHandler.Update)
	compliance.DELETE("/:id", complianceHandler.Delete)

	payments := api.Group("/payments")
	payments.POST("/create-order",
		middleware.AuthRequired(facade),
		middleware.ValidateBody[dto.CreatePaymentRequest](),
		paymentHandler.CreateOrder)
	payments.POST("/webhook",
		middleware.RateLimit(limiters.Payment, middleware.PaymentLimitMessage, logs.Security),
		middleware.OptionalAuth(facade),
		middleware.ValidateBody[dto.VerifyPaymentRequest](),
		paymentHandler.Webhook)
	payments.POST("/refund",
		middleware.RateLimit(limiters.Payment, middleware.PaymentLimitMessage, logs.Security),
		middleware.AuthRequired(facade),
		middleware.ValidateBody[dto.RefundRequest](),
		paymentHandler.Refund)
	payments.GET("", middleware.AuthRequired(facade), paymentHandler.List)
	payments.GET("/stats", middleware.AuthRequired(facade), paymentHandler.Stats)
	payments.GET("/:id", middleware.AuthRequired(facade), paymentHandler.Get)

	notify := api.Group("/notify")
	notify.Use(middleware.RateLimit(limiters.Notification, middleware.NotificationLimitMessage, logs.Security))
	notify.Use(middleware.AuthRequired(facade))
	notify.POST("/whatsapp", middleware.ValidateBody[dto.SendWhatsAppRequest](), notificationHandler.SendWhatsApp)
	notify.POST("/order-confirmation", middleware.ValidateBody[dto.OrderNotifyRequest](), notificationHandler.SendOrderConfirmation)
	notify.POST("/order-status-update", middleware.ValidateBody[dto.OrderNotifyRequest](), notificationHandler.SendOrderStatusUpdate)
	notify.POST("/compliance-alert", middleware.ValidateBody[dto.ComplianceNotifyRequest](), notificationHandler.SendComplianceAlert)
	notify.GET("", notificationHandler.List)
	notify.GET("/stats", notificationHandler.Stats)

	health := api.Group("/health")
	health.GET("", healthHandler.Check)
	health.GET("/detailed", middleware.AuthRequired(facade), healthHandler.Detailed)
	health.GET("/metrics", middleware.AuthRequired(facade), healthHandler.Metrics)
	health.GET("/prometheus", healthHandler.Prometheus)

	engine.NoRoute(middleware.NotFoundHandler())

	return engine
}

func describeService(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success":     true,
			"message":     "Textile OEM Platform API",
			"version":     cfg.Version,
			"environment": cfg.Env,
			"timestamp":   time.Now().UTC(),
		})
	}
}

func describeAPI() gin.HandlerFunc {
	endpoints := gin.H{
		"orders": gin.H{
			"base":        "/api/orders",
			"methods":     []string{"GET", "POST", "PATCH", "DELETE"},
			"description": "Order management endpoints",
		},
		"compliance": gin.H{
			"base":        "/api/compliance",
			"methods":     []string{"GET", "POST", "PATCH", "DELETE"},
			"description": "Compliance management endpoints",
		},
		"notifications": gin.H{
			"base":        "/api/notify",
			"methods":     []string{"GET", "POST"},
			"description": "Notification endpoints",
		},
		"payments": gin.H{
			"base":        "/api/payments",
			"methods":     []string{"GET", "POST"},
			"description": "Payment processing endpoints",
		},
		"health": gin.H{
			"base":        "/api/health",
			"methods":     []string{"GET"},
			"description": "Health check endpoints",
		},
	}
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"message":   "Textile OEM Platform API Documentation",
			"endpoints": endpoints,
			"authentication": gin.H{
				"type":        "Bearer Token",
				"header":      "Authorization: Bearer <token>",
				"description": "JWT token required for most endpoints",
			},
		})
	}
}
