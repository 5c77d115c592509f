package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "quiniela-tool-backend/docs"
	"quiniela-tool-backend/internal/common/config"
	"quiniela-tool-backend/internal/common/logger"
	"quiniela-tool-backend/internal/common/middleware"
	eventsdelivery "quiniela-tool-backend/internal/features/events/delivery/http"
	eventsredis "quiniela-tool-backend/internal/features/events/repository/redis"
	eventsservice "quiniela-tool-backend/internal/features/events/service"
	quinieladelivery "quiniela-tool-backend/internal/features/quiniela/delivery/http"
	quinielaredis "quiniela-tool-backend/internal/features/quiniela/repository/redis"
	quinielaservice "quiniela-tool-backend/internal/features/quiniela/service"
	redisplatform "quiniela-tool-backend/internal/platform/redis"
)

// @title           Quiniela Tool API
// @version         1.0
// @description     API server for creating and joining pool-betting contests (quinielas).

// @host      localhost:8080
// @BasePath  /api/v1

// @tag.name quinielas
// @tag.description Quiniela management - draft validation, creation, joining and viewing

// @tag.name events
// @tag.description Sporting event catalog a quiniela is composed of

func main() {
	// Cancellable root context for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()

	logger.Init("quiniela-tool-backend", cfg.Debug)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	rdb, err := redisplatform.Open(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	logger.Info().Msg("Redis connection established")

	clock := quinielaservice.RealClock()

	quinielaRepo := quinielaredis.NewRedisQuinielaRepository(rdb)
	quinielaSvc := quinielaservice.NewQuinielaService(quinielaRepo, clock)

	eventRepo := eventsredis.NewRedisEventRepository(rdb)
	eventSvc := eventsservice.NewEventService(eventRepo, clock)

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.ErrorHandler(),
		cors.New(cors.Config{
			AllowOrigins:     []string{cfg.Server.Origin},
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
	)

	api := router.Group("/api/v1")
	quinieladelivery.NewQuinielaHandler(quinielaSvc).RegisterRoutes(api)
	eventsdelivery.NewEventHandler(eventSvc).RegisterRoutes(api)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server shutdown failed")
	}
	logger.Info().Msg("Server stopped")
}
