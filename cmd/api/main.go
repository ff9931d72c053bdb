package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/johnquangdev/voice-agent-dashboard/pkg/validator"

	"github.com/johnquangdev/voice-agent-dashboard/docs"
	"github.com/johnquangdev/voice-agent-dashboard/internal/adapter/handler"
	"github.com/johnquangdev/voice-agent-dashboard/internal/infrastructure/cache"
	"github.com/johnquangdev/voice-agent-dashboard/internal/infrastructure/external/retell"
	httpmw "github.com/johnquangdev/voice-agent-dashboard/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/voice-agent-dashboard/internal/usecase/agent"
	"github.com/johnquangdev/voice-agent-dashboard/internal/usecase/call"
	"github.com/johnquangdev/voice-agent-dashboard/internal/usecase/callhistory"
	"github.com/johnquangdev/voice-agent-dashboard/internal/usecase/phonenumber"
	"github.com/johnquangdev/voice-agent-dashboard/pkg/config"
)

// @title           Voice Agent Dashboard API
// @version         1.0
// @description     Backend for managing voice agents, placing browser calls and reviewing call transcripts

// @host      localhost:3001
// @BasePath  /v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	docs.SwaggerInfo.Host = cfg.GetServerAddr()

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))
	e.Use(httpmw.RequestLogger(logger))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  cfg.Server.AllowedOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodPatch},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		ExposeHeaders: []string{echo.HeaderContentDisposition, echo.HeaderXRequestID},
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	// Initialize platform client
	log.Println("📞 Initializing voice platform client...")
	client := retell.NewClient(
		cfg.Retell.BaseURL,
		cfg.Retell.APIKey,
		cfg.Retell.Timeout,
		cfg.Retell.UseMock,
	)
	if cfg.Retell.UseMock {
		log.Println("⚠️  Voice platform running in MOCK mode (no API key needed)")
	} else {
		log.Printf("✅ Voice platform at: %s", cfg.Retell.BaseURL)
	}

	// Initialize services
	log.Println("⚙️  Initializing services...")
	history := callhistory.NewStore()
	prompts := cache.NewMemoryStore(5 * time.Minute)
	defer prompts.Close()
	agentService := agent.NewAgentService(client, logger, cfg.Call.EnrichConcurrency,
		agent.WithPromptCache(prompts, cfg.Call.PromptCacheTTL),
	)
	callService := call.NewCallService(client, history, logger, cfg.Call.DetailDelay)
	phoneService := phonenumber.NewPhoneNumberService(client, logger)

	// Initialize handlers
	log.Println("🚪 Initializing handlers...")
	agentHandler := handler.NewAgentHandler(agentService, logger)
	callHandler := handler.NewCallHandler(callService, logger)
	phoneNumberHandler := handler.NewPhoneNumberHandler(phoneService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, agentHandler, callHandler, phoneNumberHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := cfg.GetServerAddr()
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)
		log.Printf("📚 API docs: http://%s/swagger/index.html", addr)

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

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
