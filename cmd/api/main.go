// @title Quiz Session API
// @version 1.0
// @description Interactive, independently scorable quiz sessions over generated quizzes.
// @host localhost:8080
// @BasePath /api
// @schemes http
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"quiz-session/internal/adapter"
	"quiz-session/internal/adapter/quizservice"
	"quiz-session/internal/cache"
	"quiz-session/internal/config"
	"quiz-session/internal/domain"
	"quiz-session/internal/handler"
	"quiz-session/internal/logger"
	"quiz-session/internal/middleware"
	"quiz-session/internal/repository"
	"quiz-session/internal/service"
	"quiz-session/internal/util"

	_ "quiz-session/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests with a
// per-request correlation ID.
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		requestID := util.NewULID()
		c.Set("X-Request-ID", requestID)

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("request_id", requestID),
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
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

	// Remote quiz service client
	client := quizservice.NewClient(cfg.QuizService.BaseURL, cfg.QuizService.Timeout)
	appLogger.Info("Quiz service client initialized", zap.String("base_url", cfg.QuizService.BaseURL))

	// Optional Redis-backed payload cache; without it detail fetches go
	// straight upstream.
	var cacheAdapter domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("RedisCacheAdapter initialized", zap.String("address", cfg.Redis.Address))
	} else {
		appLogger.Warn("Redis not configured; quiz payload caching disabled")
	}

	// Session machinery
	registry := repository.NewSessionRegistry()
	sessionService := service.NewSessionService(registry)
	catalogService := service.NewCatalogService(client, sessionService, cacheAdapter, cfg.Cache.QuizPayloadTTL)

	// Handlers
	catalogHandler := handler.NewCatalogHandler(catalogService)
	sessionHandler := handler.NewSessionHandler(sessionService)
	healthHandler := handler.NewHealthHandler(cacheAdapter)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/healthz", healthHandler.Health)

	api := app.Group("/api")
	api.Post("/generate", catalogHandler.Generate)
	api.Get("/history", catalogHandler.History)
	api.Get("/quiz/:id", catalogHandler.QuizDetail)
	api.Post("/sessions/:containerID/answers", sessionHandler.SubmitAnswer)
	api.Get("/sessions/:containerID", sessionHandler.Score)
	api.Delete("/sessions/:containerID", sessionHandler.Destroy)

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
