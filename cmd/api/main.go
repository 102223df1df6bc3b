package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"interview-prep/internal/adapter"
	"interview-prep/internal/adapter/ai"
	"interview-prep/internal/cache"
	"interview-prep/internal/config"
	"interview-prep/internal/database"
	"interview-prep/internal/domain"
	"interview-prep/internal/handler"
	"interview-prep/internal/logger"
	"interview-prep/internal/middleware"
	"interview-prep/internal/repository"
	"interview-prep/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// requestLogger logs every HTTP request with method, path, status and latency.
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
		)

		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// AI completion gateway
	model, err := ai.NewCompletionModel(cfg.AI)
	if err != nil {
		appLogger.Fatal("Failed to create AI completion model", zap.Error(err))
	}
	completionService := ai.NewGateway(model, cfg.AI.RequestTimeout)
	appLogger.Info("AI completion gateway initialized", zap.String("provider", cfg.AI.Provider))

	// Database
	db, err := database.NewSQLXPostgresDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	appLogger.Info("Successfully connected to database")

	// Repositories
	userRepository := repository.NewSQLXUserRepository(db)
	sessionRepository := repository.NewSQLXSessionRepository(db)
	questionRepository := repository.NewSQLXQuestionRepository(db)
	answerRepository := repository.NewSQLXAnswerRepository(db)
	statsRepository := repository.NewSQLXStatsRepository(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	// Redis is optional; without it question generation skips the cache.
	var cacheAdapter domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		appLogger.Info("Successfully connected to Redis")
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
	} else {
		appLogger.Warn("Redis address not configured, question cache disabled")
	}

	questionCacheTTL := cfg.ParseTTLStringOrDefault(cfg.CacheTTLs.GeneratedQuestion, 24*time.Hour)
	questionCacheService := service.NewQuestionCacheService(cacheAdapter, questionCacheTTL)

	// Services
	authService := service.NewAuthService(userRepository, cfg.JWT, cfg.Auth.BcryptCost)
	interviewService := service.NewInterviewService(
		sessionRepository,
		questionRepository,
		answerRepository,
		statsRepository,
		txManager,
		completionService,
		questionCacheService,
	)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	interviewHandler := handler.NewInterviewHandler(interviewService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,Authorization", MaxAge: 300}))
	app.Use(recover.New())

	apiGroup := app.Group("/api")

	authGroup := apiGroup.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)
	authGroup.Get("/profile", middleware.Protected(authService), authHandler.Profile)
	authGroup.Post("/logout", middleware.Protected(authService), authHandler.Logout)

	interviewGroup := apiGroup.Group("/interview", middleware.Protected(authService))
	interviewGroup.Post("/start", interviewHandler.StartSession)
	interviewGroup.Post("/question/generate", interviewHandler.GenerateQuestion)
	interviewGroup.Post("/question/resume", interviewHandler.GenerateResumeQuestion)
	interviewGroup.Post("/question/company", interviewHandler.GenerateCompanyQuestion)
	interviewGroup.Post("/answer/star-analysis", interviewHandler.AnalyzeSTAR)
	interviewGroup.Post("/:sessionId/answer", interviewHandler.SubmitAnswer)
	interviewGroup.Post("/:sessionId/complete", interviewHandler.CompleteSession)
	interviewGroup.Get("/:sessionId/feedback", interviewHandler.GetSessionFeedback)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
