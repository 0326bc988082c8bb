package server

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/flowfit/flowfit/internal/config"
	"github.com/flowfit/flowfit/internal/handler"
	"github.com/flowfit/flowfit/internal/middleware"
	"github.com/flowfit/flowfit/internal/repository"
	"github.com/flowfit/flowfit/internal/service"
	"github.com/flowfit/flowfit/internal/telemetry"
)

// AppDependencies holds the dependencies required to start the application
type AppDependencies struct {
	Config      *config.Config
	MongoDB     *mongo.Database
	RedisClient *redis.Client
}

// NewApp creates and configures the Fiber application with the given dependencies
func NewApp(deps AppDependencies) *fiber.App {
	// Initialize repositories
	userRepo := repository.NewMongoUserRepository(deps.MongoDB)
	refreshTokenRepo := repository.NewMongoRefreshTokenRepository(deps.MongoDB)
	exerciseRepo := repository.NewMongoExerciseRepository(deps.MongoDB)
	sessionRepo := repository.NewMongoSessionRepository(deps.MongoDB)
	ratingRepo := repository.NewMongoRatingRepository(deps.MongoDB)
	favoriteRepo := repository.NewMongoFavoriteRepository(deps.MongoDB)
	cacheRepo := repository.NewRedisCacheRepository(deps.RedisClient)

	mediaRepo, err := repository.NewMediaS3Repository(context.Background(), deps.Config.S3)
	if err != nil {
		log.Printf("Warning: failed to initialize media storage: %v", err)
	}

	// Initialize services
	authService := service.NewAuthService(userRepo)
	tokenService := service.NewTokenService(deps.Config.JWT, refreshTokenRepo, userRepo)
	exerciseService := service.NewExerciseService(exerciseRepo, cacheRepo)
	sessionService := service.NewSessionService(sessionRepo, exerciseRepo, ratingRepo, favoriteRepo, cacheRepo)
	ratingService := service.NewRatingService(ratingRepo, sessionRepo, cacheRepo)
	favoriteService := service.NewFavoriteService(favoriteRepo, sessionRepo)
	playbackService := service.NewPlaybackService(sessionRepo)
	mediaService := service.NewMediaService(mediaRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, tokenService)
	exerciseHandler := handler.NewExerciseHandler(exerciseService)
	sessionHandler := handler.NewSessionHandler(sessionService)
	communityHandler := handler.NewCommunityHandler(sessionService, ratingService, favoriteService)
	playbackHandler := handler.NewPlaybackHandler(playbackService)
	mediaHandler := handler.NewMediaHandler(mediaService, deps.Config.Server.MaxUploadSizeMB)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "FlowFit API",
		BodyLimit:    int(deps.Config.Server.MaxUploadSizeMB * 1024 * 1024),
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(telemetry.FiberMiddleware())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Correlation-ID",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"service": "flowfit-api",
		})
	})

	// API v1 routes
	v1 := app.Group("/v1")

	// Auth endpoints (public)
	auth := v1.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.RefreshToken)
	auth.Post("/logout", authHandler.Logout)

	requireAuth := middleware.VerifyFlowFitToken(deps.Config.JWT.Secret)

	// Exercise catalog: public read, authenticated write
	v1.Get("/exercises", exerciseHandler.List)
	v1.Get("/exercises/:id", exerciseHandler.Get)
	exercises := v1.Group("/exercises")
	exercises.Use(requireAuth)
	exercises.Post("/", exerciseHandler.Create)
	exercises.Put("/:id", exerciseHandler.Update)
	exercises.Delete("/:id", exerciseHandler.Delete)

	// Media uploads
	media := v1.Group("/media")
	media.Use(requireAuth)
	media.Post("/images", mediaHandler.UploadImage)

	// Workout sessions (owner scoped)
	sessions := v1.Group("/sessions")
	sessions.Use(requireAuth)
	sessions.Post("/", sessionHandler.Create)
	sessions.Get("/", sessionHandler.ListMine)
	sessions.Get("/:id", sessionHandler.Get)
	sessions.Put("/:id", sessionHandler.Update)
	sessions.Put("/:id/share", sessionHandler.Share)
	sessions.Delete("/:id", sessionHandler.Delete)
	sessions.Post("/:id/playback/preview", playbackHandler.Preview)
	sessions.Post("/:id/playback/timeline", playbackHandler.Timeline)

	// Community: shared sessions, ratings, favorites
	community := v1.Group("/community")
	community.Use(requireAuth)
	community.Get("/sessions", communityHandler.ListShared)
	// Rating writes are replay-safe: repeating a X-Correlation-ID
	// returns the first response instead of re-running the write
	community.Put("/sessions/:id/rating",
		middleware.IdempotencyMiddleware(deps.RedisClient, 10*time.Minute),
		communityHandler.Rate)
	community.Put("/sessions/:id/favorite", communityHandler.Favorite)
	community.Delete("/sessions/:id/favorite", communityHandler.Unfavorite)

	favorites := v1.Group("/favorites")
	favorites.Use(requireAuth)
	favorites.Get("/", communityHandler.ListFavorites)

	return app
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	log.Printf("Error: %v", err)
	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
