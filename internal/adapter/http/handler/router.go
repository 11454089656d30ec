package handler

import (
	"net/http"

	"loyalty-rewards/internal/adapter/http/middleware"
	"loyalty-rewards/internal/core/ports"
	"loyalty-rewards/internal/metrics"
	"loyalty-rewards/pkg/apperror"
	"loyalty-rewards/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	TokenSvc       ports.TokenService
	SessionSvc     ports.SessionService
	QRSvc          ports.QRService
	ReleaseCache   ports.ReleaseCache   // nil = no drag-end replay
	RateLimitStore ports.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Metrics        *metrics.Recorder // nil = metrics disabled
	MetricsPath    string
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware())
		path := deps.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.GET(path, gin.WrapH(deps.Metrics.Handler()))
	}

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
		swagger.GET("/spec.json", SwaggerSpecJSON)
	}

	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	v1 := r.Group("/api/v1")

	// --- Public routes ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", rl("auth_register"), authHandler.Register)
		auth.POST("/login", rl("auth_login"), authHandler.Login)
	}

	// --- JWT-authenticated routes ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)

	accountHandler := NewAccountHandler(deps.AuthSvc, deps.TokenSvc, deps.QRSvc)
	me := v1.Group("/me", jwtAuth, rl("account"))
	{
		me.GET("", accountHandler.Me)
		me.PUT("", accountHandler.UpdateProfile)
		me.PUT("/phone", accountHandler.UpdatePhone)
		me.PUT("/preferences", accountHandler.UpdatePreferences)
		me.GET("/qr", accountHandler.QRCode)
	}

	restaurantHandler := NewRestaurantHandler(deps.SessionSvc)
	restaurants := v1.Group("/restaurants", jwtAuth, rl("account"))
	{
		restaurants.GET("", restaurantHandler.List)
		restaurants.PUT("/selected", restaurantHandler.Select)
	}

	paymentHandler := NewPaymentHandler(deps.SessionSvc, deps.ReleaseCache, deps.Logger)
	payment := v1.Group("/payment", jwtAuth)
	{
		payment.GET("", rl("account"), paymentHandler.View)
		payment.PUT("/bucket", rl("account"), paymentHandler.SelectBucket)
		payment.PUT("/amount", rl("account"), paymentHandler.SetAmount)
		payment.POST("/drag/start", rl("payment_drag"), paymentHandler.DragStart)
		payment.POST("/drag/update", rl("payment_drag"), paymentHandler.DragUpdate)
		payment.POST("/drag/end", rl("payment_drag"), paymentHandler.DragEnd)
		payment.POST("/tick", rl("payment_drag"), paymentHandler.Tick)
	}

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, apperror.New("REQ_404", "Route not found", http.StatusNotFound))
	})

	return r
}
