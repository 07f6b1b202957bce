package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitbyte-be/internal/cache"
	"fitbyte-be/internal/config"
	"fitbyte-be/internal/controllers"
	"fitbyte-be/internal/database"
	"fitbyte-be/internal/events"
	"fitbyte-be/internal/jwt"
	"fitbyte-be/internal/metrics"
	"fitbyte-be/internal/middleware"
	"fitbyte-be/internal/repository"
	"fitbyte-be/internal/service"
	"fitbyte-be/internal/storage"
	"fitbyte-be/internal/validation"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Connect to database
	db, err := database.NewConnection(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if cfg.AutoMigrate {
		if err := database.RunMigrations(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	}

	// Initialize Redis cache (optional - continue if Redis is unavailable)
	var cacheClient cache.Cache
	if cfg.RedisURL != "" {
		cacheClient, err = cache.NewRedisCache(ctx, cfg.RedisURL)
		if err != nil {
			log.Printf("Warning: Failed to connect to Redis (%v). Continuing without cache.", err)
			cacheClient = nil
		} else {
			log.Println("Connected to Redis cache")
			defer cacheClient.Close()
		}
	}

	objectStore, err := storage.NewS3Storage(ctx, storage.S3Config{
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
		Region:          cfg.AWSRegion,
		Bucket:          cfg.S3Bucket,
		Endpoint:        cfg.S3Endpoint,
	})
	if err != nil {
		log.Fatalf("Failed to configure S3 storage: %v", err)
	}

	// Activity events (optional)
	var publisher events.Publisher = events.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		publisher = events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaActivityTopic)
		log.Printf("Publishing activity events to %s", cfg.KafkaActivityTopic)
	}
	defer publisher.Close()

	if err := validation.Register(); err != nil {
		log.Fatalf("Failed to register validators: %v", err)
	}

	appMetrics := metrics.Default(cfg.MetricsAppLabel)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWTSecret,
		time.Duration(cfg.JWTTTL)*time.Hour,
		cfg.JWTIssuer,
	)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, cacheClient)
	userService := service.NewUserService(userRepo, cacheClient)
	activityService := service.NewActivityService(activityRepo, publisher, appMetrics)
	fileService := service.NewFileService(objectStore, cfg.MaxUploadBytes, appMetrics)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	userController := controllers.NewUserController(userService)
	activityController := controllers.NewActivityController(activityService)
	fileController := controllers.NewFileController(fileService, cfg.MaxUploadBytes)

	// Initialize rate limiters
	generalRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	defer generalRateLimiter.Stop()
	authRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitAuthRPS), cfg.RateLimitAuthBurst)
	defer authRateLimiter.Stop()

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), appMetrics.Middleware())

	// Health check and metrics (no rate limiting)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
	router.GET("/metrics", gin.WrapH(appMetrics.Handler()))

	v1 := router.Group("/v1")
	v1.Use(generalRateLimiter.LimitMiddleware())
	{
		// Auth routes with stricter rate limiting
		v1.POST("/register", authRateLimiter.LimitMiddleware(), authController.Register)
		v1.POST("/login", authRateLimiter.LimitMiddleware(), authController.Login)

		// Protected routes - require JWT authentication
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(jwtService))
		{
			protected.GET("/user", userController.GetProfile)
			protected.PATCH("/user", userController.UpdateProfile)

			protected.POST("/file", fileController.UploadFile)

			protected.POST("/activity", activityController.CreateActivity)
			protected.GET("/activity", activityController.ListActivities)
			protected.PATCH("/activity/:activityId", activityController.UpdateActivity)
			protected.DELETE("/activity/:activityId", activityController.DeleteActivity)
		}
	}

	server := &http.Server{
		Addr:              cfg.BindAddress,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on http://%s", cfg.BindAddress)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-shutdownCh
	log.Println("Shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Graceful shutdown failed: %v", err)
	}
}
