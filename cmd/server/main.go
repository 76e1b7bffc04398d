package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pixelperfect/backend/adapters/event"
	httpAdapter "github.com/pixelperfect/backend/adapters/http"
	"github.com/pixelperfect/backend/adapters/media_storage"
	"github.com/pixelperfect/backend/adapters/persistence"
	authUC "github.com/pixelperfect/backend/internal/application/usecase/auth"
	imageUC "github.com/pixelperfect/backend/internal/application/usecase/image"
	videoUC "github.com/pixelperfect/backend/internal/application/usecase/video"
	"github.com/pixelperfect/backend/internal/config"
	"github.com/pixelperfect/backend/pkg/auth"
	"github.com/pixelperfect/backend/pkg/logger"
	"github.com/pixelperfect/backend/pkg/tracing"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Start PixelPerfect API Server...")

	if cfg.Jaeger.OTLPEndpoint != "" {
		tp, err := tracing.NewTracerProvider(cfg, appLogger, "pixelperfect-api")
		if err != nil {
			appLogger.Fatal("cannot init tracer", err)
		}
		defer tp.Shutdown(context.Background())
	}

	// Initialize dependencies
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		appLogger.Fatal("cannot init Kafka", err)
	}
	defer kafkaClient.Close()

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool)
	videoRepo := persistence.NewPostgresVideoRepo(dbPool, appLogger)
	catalogCache := persistence.NewRedisCatalogCache(redisClient, cfg.Cache.CatalogTTL)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	uploader, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize uploader", err)
	}
	links := media_storage.NewCloudinaryLinks(cfg)

	// Use Cases
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, appLogger)
	uploadVideoUseCase := videoUC.NewUploadVideoUseCase(videoRepo, uploader, catalogCache, kafkaClient, cfg.Upload.Timeout, appLogger)
	listVideosUseCase := videoUC.NewListVideosUseCase(videoRepo, catalogCache, appLogger)
	uploadImageUseCase := imageUC.NewUploadImageUseCase(uploader, cfg.Upload.Timeout, appLogger)

	// HTTP Handlers
	authHandler := httpAdapter.NewAuthHandler(loginUseCase)
	videoHandler := httpAdapter.NewVideoHandler(uploadVideoUseCase, listVideosUseCase, links, cfg.Upload.MaxSizeBytes, appLogger)
	imageHandler := httpAdapter.NewImageHandler(uploadImageUseCase, links, cfg.Upload.MaxSizeBytes, appLogger)

	// Middleware
	authMiddleware := httpAdapter.AuthMiddleware(jwtSvc)
	errorMiddleware := httpAdapter.ErrorMiddleware(appLogger)

	// Setup Gin router
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.Use(errorMiddleware)

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

		api.POST("/auth/login", authHandler.Login)

		// Catalog reads are unscoped: every caller sees all assets.
		api.GET("/videos", videoHandler.ListVideos)

		private := api.Group("/")
		private.Use(authMiddleware)
		{
			private.POST("/videos", videoHandler.UploadVideo)
			private.POST("/images", imageHandler.UploadImage)
			// Public IDs contain slashes, so the ID travels as a query param.
			private.GET("/images/social-urls", imageHandler.SocialCrops)
		}
	}

	appLogger.Info("Server running on port " + cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("Cannot run server", err)
	}
}
