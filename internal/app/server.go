// internal/app/server.go
package app

import (
	"context"
	"fmt"
	"log"

	"github.com/sudipjangam/userfeast-manager/internal/cache"
	"github.com/sudipjangam/userfeast-manager/internal/config"
	"github.com/sudipjangam/userfeast-manager/internal/db"
	billingHandler "github.com/sudipjangam/userfeast-manager/internal/handlers/billing"
	profileHandler "github.com/sudipjangam/userfeast-manager/internal/handlers/profile"
	restaurantHandler "github.com/sudipjangam/userfeast-manager/internal/handlers/restaurant"
	"github.com/sudipjangam/userfeast-manager/internal/middleware"
	"github.com/sudipjangam/userfeast-manager/internal/pkg/jwt"
	"github.com/sudipjangam/userfeast-manager/internal/repository/postgres"
	billingService "github.com/sudipjangam/userfeast-manager/internal/service/billing"
	profileService "github.com/sudipjangam/userfeast-manager/internal/service/profile"
	restaurantService "github.com/sudipjangam/userfeast-manager/internal/service/restaurant"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
}

func NewServer() *Server {
	cfg := config.Load()
	engine := gin.New()
	return &Server{cfg: cfg, engine: engine}
}

func (s *Server) Start() error {
	ctx := context.Background()

	// ----- PostgreSQL -----
	pool, err := db.ConnectDB(ctx, s.cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	// ----- Redis -----
	redisClient, err := db.NewRedisClient(db.RedisConfig{
		Addr:     s.cfg.RedisAddr,
		Password: s.cfg.RedisPass,
		DB:       s.cfg.RedisDB,
		PoolSize: 10,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.Println("[REDIS] connected")

	// ----- Logger -----
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()
	s.logger = logger

	// ----- Auth -----
	verifier := jwt.NewVerifier(s.cfg.JWTSecret, s.cfg.JWTIssuer, s.cfg.JWTAudience)
	authMiddleware := middleware.NewAuthMiddleware(verifier)

	// ----- Repositories -----
	planRepo := postgres.NewPlanRepository(pool)
	subscriptionRepo := postgres.NewSubscriptionRepository(pool)
	restaurantRepo := postgres.NewRestaurantRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)

	// ----- Cache -----
	planCache := cache.NewPlanCache(redisClient, s.cfg.PlanCacheTTL, logger)

	// ----- Services -----
	subscriptionSvc := billingService.NewSubscriptionService(subscriptionRepo, planRepo, planCache, logger)
	planSvc := billingService.NewPlanService(planRepo, planCache, logger)
	restaurantSvc := restaurantService.NewRestaurantService(restaurantRepo, logger)
	profileSvc := profileService.NewProfileService(profileRepo, restaurantRepo, logger)

	// ----- Handlers -----
	billingHandlerInst := billingHandler.NewBillingHandler(subscriptionSvc, planSvc)
	restaurantHandlerInst := restaurantHandler.NewRestaurantHandler(restaurantSvc)
	profileHandlerInst := profileHandler.NewProfileHandler(profileSvc)

	// ----- Middlewares -----
	s.engine.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
		middleware.CORSMiddleware(),
	)

	// ----- Router -----
	handlers := &Handlers{
		BillingHandler:    billingHandlerInst,
		RestaurantHandler: restaurantHandlerInst,
		ProfileHandler:    profileHandlerInst,
		AuthMiddleware:    authMiddleware,
	}
	SetupRouter(s.engine, handlers)

	// ----- Start HTTP -----
	log.Printf("server running on %s", s.cfg.HTTPAddr)
	return s.engine.Run(s.cfg.HTTPAddr)
}
