package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/munwalk/dialog-ai/pkg/validator"

	"github.com/munwalk/dialog-ai/internal/adapter/handler"
	"github.com/munwalk/dialog-ai/internal/adapter/repository"
	"github.com/munwalk/dialog-ai/internal/infrastructure/cache"
	"github.com/munwalk/dialog-ai/internal/infrastructure/database"
	"github.com/munwalk/dialog-ai/internal/usecase/participant"
	"github.com/munwalk/dialog-ai/internal/usecase/search"
	"github.com/munwalk/dialog-ai/internal/usecase/session"
	"github.com/munwalk/dialog-ai/internal/usecase/task"
	"github.com/munwalk/dialog-ai/pkg/config"
	"github.com/munwalk/dialog-ai/pkg/logger"
)

// @title           Dialog AI API
// @version         1.0
// @description     Natural-language search over meeting records, tasks, and attendance

// @host      localhost:8080
// @BasePath  /v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.New(cfg.Server.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		AllowCredentials: true,
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Initialize session backend: Redis when configured, process memory
	// otherwise
	var sessionBackend session.Backend
	if cfg.Redis.Enabled {
		log.Println("📦 Connecting to Redis...")
		redisStore, err := cache.NewRedisStore(
			context.Background(), cfg.GetRedisAddr(), cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisStore.Close()
		sessionBackend = redisStore
	} else {
		log.Println("📦 Redis disabled, keeping sessions in memory")
		sessionBackend = cache.NewMemoryBackend(cache.NewMemoryStore())
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	meetingRepo := repository.NewMeetingRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	userRepo := repository.NewUserRepository(db)
	participantRepo := repository.NewParticipantRepository(db)

	// Initialize engine services
	log.Println("🔎 Initializing search engine...")
	searchService := search.NewSearchService(meetingRepo, userRepo, participantRepo, nil, cfg, zapLogger)
	taskService := task.NewTaskService(taskRepo, userRepo, meetingRepo, zapLogger)
	participantService := participant.NewParticipantService(participantRepo, meetingRepo, userRepo, zapLogger)
	sessions := session.NewStore(sessionBackend, cfg.Engine.SessionTTL, zapLogger)

	// Initialize chat handler
	log.Println("💬 Initializing chat handler...")
	chatHandler := handler.NewChatHandler(
		searchService, taskService, participantService, userRepo, meetingRepo, sessions, zapLogger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, chatHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
