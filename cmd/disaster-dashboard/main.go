package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mr1hm/go-disaster-dashboard/internal/api"
	"github.com/mr1hm/go-disaster-dashboard/internal/assistant"
	"github.com/mr1hm/go-disaster-dashboard/internal/catalog"
	"github.com/mr1hm/go-disaster-dashboard/internal/config"
	"github.com/mr1hm/go-disaster-dashboard/internal/ingestion"
	"github.com/mr1hm/go-disaster-dashboard/internal/location"
	"github.com/mr1hm/go-disaster-dashboard/internal/logging"
	"github.com/mr1hm/go-disaster-dashboard/internal/observability"
	"github.com/mr1hm/go-disaster-dashboard/internal/repository"
	"github.com/mr1hm/go-disaster-dashboard/internal/stream"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("Fatal while loading config: %v", err)
	}
	logging.Setup(cfg.Logging.Level)

	slog.Info("Server starting", "host", cfg.Server.Host, "port", cfg.Server.Port, "assistant_mode", cfg.Assistant.Mode)

	db, err := repository.NewSQLiteDB(cfg.DB.Path)
	if err != nil {
		logging.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metrics := observability.NewMetrics()
	broadcaster := stream.NewBroadcaster()

	mgr := ingestion.NewManager(cfg, db, broadcaster, metrics)
	if err := mgr.Seed(ctx, catalog.Alerts()); err != nil {
		logging.Fatalf("Failed to seed alerts: %v", err)
	}
	mgr.Start(ctx)

	locations := location.NewController(ctx, db)

	clock := clockwork.NewRealClock()
	responder := &assistant.Router{
		Mode:  cfg.Assistant.Mode,
		Rules: assistant.NewRuleResponder(clock, cfg.Assistant.ResponseDelay),
		APIKey: func(ctx context.Context) string {
			keys, err := db.LoadAPIKeys(ctx)
			if err != nil {
				slog.Warn("failed to load stored api keys", "error", err)
			}
			if keys.OpenAI != "" {
				return keys.OpenAI
			}
			return cfg.Assistant.OpenAIKey
		},
		Model: cfg.Assistant.Model,
		URL:   cfg.Assistant.URL,
	}
	conv := assistant.NewConversation(responder, clock, metrics)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false, // must stay false with wildcard origins
	}))
	router.Use(api.RateLimitMiddleware(cfg.Server.RateLimitRPS))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	handler := api.NewHandler(api.Deps{
		Alerts:       db,
		Keys:         db,
		Locations:    locations,
		Conversation: conv,
		Broadcaster:  broadcaster,
		Metrics:      metrics,
		MapsAPIKey:   cfg.Maps.APIKey,
	})
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down...")

	cancel()
	mgr.Stop()
	broadcaster.Close() // ends open alert streams

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	replies := make(chan struct{})
	go func() {
		conv.Wait()
		close(replies)
	}()
	select {
	case <-replies:
	case <-shutdownCtx.Done():
		slog.Warn("assistant reply still pending at shutdown")
	}

	slog.Info("shutdown complete")
}
