package router

import (
	"log"
	"log/slog"

	"github.com/dietsocial/backend/internal/handlers"
	"github.com/dietsocial/backend/internal/middleware"
	"github.com/dietsocial/backend/internal/models"
	"github.com/dietsocial/backend/internal/repositories"
	"github.com/dietsocial/backend/internal/services"
	"github.com/dietsocial/backend/pkg/config"
	"github.com/dietsocial/backend/pkg/storage"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, cfg *config.Config, logger *slog.Logger) {
	// AutoMigrate PostgreSQL models
	err := pgdb.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.CommentLike{},
		&models.Follow{},
		&models.Notification{},
		&models.Recipe{},
		&models.DietLog{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	images, err := storage.NewLocalFileStorage(cfg.ImageDir)
	if err != nil {
		log.Fatalf("Failed to initialize image storage: %v", err)
	}

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	postRepo := repositories.NewPostgresPostRepository(pgdb)
	commentRepo := repositories.NewPostgresCommentRepository(pgdb)
	likeRepo := repositories.NewPostgresLikeRepository(pgdb)
	commentLikeRepo := repositories.NewPostgresCommentLikeRepository(pgdb)
	followRepo := repositories.NewPostgresFollowRepository(pgdb)
	notificationRepo := repositories.NewPostgresNotificationRepository(pgdb)
	recipeRepo := repositories.NewPostgresRecipeRepository(pgdb)
	dietLogRepo := repositories.NewPostgresDietLogRepository(pgdb)

	// --- Initialize Services ---
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, logger)
	postService := services.NewPostService(postRepo, userRepo, likeRepo, commentRepo, followRepo, images, logger)
	commentService := services.NewCommentService(commentRepo, postRepo, userRepo, logger)
	likeService := services.NewLikeService(likeRepo, postRepo, userRepo, logger)
	commentLikeService := services.NewCommentLikeService(commentLikeRepo, commentRepo, userRepo, logger)
	followService := services.NewFollowService(followRepo, userRepo, logger)
	notificationService := services.NewNotificationService(notificationRepo, logger)
	recipeService := services.NewRecipeService(recipeRepo, userRepo, images, logger)
	dietLogService := services.NewDietLogService(dietLogRepo, userRepo, logger)

	// --- Initialize Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	postHandler := handlers.NewPostHandler(postService, images)
	commentHandler := handlers.NewCommentHandler(commentService)
	likeHandler := handlers.NewLikeHandler(likeService)
	commentLikeHandler := handlers.NewCommentLikeHandler(commentLikeService)
	followHandler := handlers.NewFollowHandler(followService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	recipeHandler := handlers.NewRecipeHandler(recipeService, images)
	dietLogHandler := handlers.NewDietLogHandler(dietLogService)
	imageHandler := handlers.NewImageHandler(images)

	// --- Public routes (no token required) ---
	public := e.Group("/api/v1")
	authHandler.RegisterAuthRoutes(public)
	postHandler.RegisterPublicPostRoutes(public)
	commentHandler.RegisterPublicCommentRoutes(public)
	likeHandler.RegisterPublicLikeRoutes(public)
	commentLikeHandler.RegisterPublicCommentLikeRoutes(public)
	followHandler.RegisterPublicFollowRoutes(public)
	recipeHandler.RegisterPublicRecipeRoutes(public)
	log.Println("Public routes configured.")

	// Image serving lives at the root, not under /api/v1
	imagesGroup := e.Group("")
	imageHandler.RegisterImageRoutes(imagesGroup)

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	log.Println("JWT authentication middleware applied to /api/v1 group.")

	postHandler.RegisterPostRoutes(api)
	commentHandler.RegisterCommentRoutes(api)
	likeHandler.RegisterLikeRoutes(api)
	commentLikeHandler.RegisterCommentLikeRoutes(api)
	followHandler.RegisterFollowRoutes(api)
	notificationHandler.RegisterNotificationRoutes(api)
	recipeHandler.RegisterRecipeRoutes(api)
	dietLogHandler.RegisterDietLogRoutes(api)

	log.Println("All routes configured.")
}
