package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/config"
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/controllers/auth"
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/controllers/pages"
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/database"
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/logging"
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/middleware"
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/routes"
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/services"
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/session"
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/store"
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/utils"
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/views"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	repos, closeStore := openStore(cfg)
	defer closeStore()

	provider := session.NewProvider(repos.Users, cfg.JWTSecret, utils.ParseExpiresIn(cfg.JWTExpiresIn))

	integrations, closeIntegrations := initIntegrations(cfg)
	defer closeIntegrations()

	// Set Gin mode based on environment
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(logging.JSONLogger())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.ErrorMiddleware())

	router.Use(sessions.Sessions("session", cookie.NewStore(cfg.SessionKey())))
	setupCORS(router)

	// Product image uploads are capped well below this
	router.MaxMultipartMemory = 10 << 20

	router.NoRoute(middleware.NotFoundHandler())

	setupRoutes(router, cfg, provider, repos, integrations)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logging.Info("server starting", logging.Fields{
			"environment": cfg.Environment,
			"port":        cfg.Port,
			"store":       cfg.StoreBackend,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logging.Info("shutting down server", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	logging.Info("server exited", nil)
}

// openStore picks the record store named by STORE_BACKEND
func openStore(cfg *config.Config) (store.Repositories, func()) {
	if cfg.StoreBackend == config.StoreBackendMemory {
		logging.Warn("using in-memory store; records are lost on restart", nil)
		return store.NewMemoryRepositories(), func() {}
	}

	if err := database.InitDatabase(); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	if err := database.AutoMigrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}
	return store.NewGormRepositories(database.DB), database.CloseDatabase
}

// initIntegrations starts the optional services. A service that fails to start is
// left nil and only the feature depending on it is disabled.
func initIntegrations(cfg *config.Config) (views.Integrations, func()) {
	ctx := context.Background()
	var integrations views.Integrations
	closers := []func(){}

	if cfg.GCPBucketName != "" {
		images, err := services.NewImageStorage(ctx, cfg.GCPBucketName)
		if err != nil {
			logging.Error("GCP Storage initialization failed", err, nil)
		} else {
			integrations.Images = images
			closers = append(closers, func() { _ = images.Close() })
			logging.Info("GCP Storage initialized", logging.Fields{"bucket": cfg.GCPBucketName})
		}
	} else {
		logging.Warn("GCP_BUCKET_NAME not set; product image uploads disabled", nil)
	}

	payments, err := services.NewPaymentGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret, cfg.PaymentCurrency)
	if err != nil {
		logging.Warn("Razorpay initialization skipped; payments disabled", logging.Fields{"reason": err.Error()})
	} else {
		integrations.Payments = payments
		logging.Info("Razorpay initialized", logging.Fields{"currency": cfg.PaymentCurrency})
	}

	if cfg.GoogleApplicationCredentials != "" {
		push, err := services.NewTopicPublisher(ctx, cfg.GoogleApplicationCredentials, cfg.FCMTopic)
		if err != nil {
			logging.Error("FCM initialization failed", err, nil)
		} else {
			integrations.Push = push
			logging.Info("FCM initialized", logging.Fields{"topic": cfg.FCMTopic})
		}
	} else {
		logging.Warn("GOOGLE_APPLICATION_CREDENTIALS not set; push notifications disabled", nil)
	}

	return integrations, func() {
		for _, closeFn := range closers {
			closeFn()
		}
	}
}

// setupCORS allows the configured origins in production and any origin in development
func setupCORS(router *gin.Engine) {
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Range", "X-Content-Range"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	origins := parseOrigins(config.AppConfig.AllowedOrigins)
	if config.IsProduction() && len(origins) > 0 {
		corsConfig.AllowOrigins = origins
		logging.Info("CORS enabled", logging.Fields{"origins": origins})
	} else {
		corsConfig.AllowOriginFunc = func(origin string) bool {
			return true
		}
		logging.Info("CORS enabled for all origins", nil)
	}

	router.Use(cors.New(corsConfig))
}

// parseOrigins splits comma-separated origin string
func parseOrigins(origins string) []string {
	parts := strings.Split(origins, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// setupRoutes sets up all application routes
func setupRoutes(router *gin.Engine, cfg *config.Config, provider *session.Provider, repos store.Repositories, integrations views.Integrations) {
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Smart Inventory server is running...")
	})

	api := router.Group("/api")
	api.Use(middleware.AuthenticateToken(provider))
	{
		routes.RegisterAuthRoutes(api, auth.NewHandler(provider, cfg.CookieSecure == "true"))
		routes.RegisterMemberRoutes(api, pages.NewHandler(repos, integrations))

		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":      "ok",
				"environment": cfg.Environment,
				"store":       cfg.StoreBackend,
				"images":      integrations.Images != nil,
				"payments":    integrations.Payments != nil,
				"push":        integrations.Push != nil,
			})
		})
	}
}
