package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"devlink/internal/config"
	"devlink/internal/database"
	"devlink/internal/logger"
	"devlink/internal/repository/mongodb"
	"devlink/internal/service"
	"devlink/internal/transport/http/handlers"
	"devlink/internal/transport/http/middleware"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Database
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := database.Connect(connectCtx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer client.Disconnect(context.Background())
	log.Info().Msg("connected to database")

	db := client.Database(cfg.DBName)

	// Repositories
	userRepo := mongodb.NewUserRepo(connectCtx, &log, db)
	connRepo := mongodb.NewConnectionRepo(connectCtx, &log, db)

	// Services
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	userService := service.NewUserService(userRepo)
	connService := service.NewConnectionService(connRepo, userRepo)
	feedService := service.NewFeedService(connRepo, userRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, &log)
	userHandler := handlers.NewUserHandler(userService, &log)
	connHandler := handlers.NewConnectionHandler(connService, &log)
	feedHandler := handlers.NewFeedHandler(feedService, &log)

	// Auth middleware
	auth := middleware.Auth(cfg.JWTSecret)

	// Routes
	mux := http.NewServeMux()

	// Public
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})
	mux.HandleFunc("POST /api/v1/auth/signup", authHandler.Signup)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)

	// Protected - Auth
	mux.Handle("GET /api/v1/auth/validate-token", auth(http.HandlerFunc(authHandler.ValidateToken)))

	// Protected - Profile
	mux.Handle("GET /api/v1/me", auth(http.HandlerFunc(userHandler.GetProfile)))
	mux.Handle("PUT /api/v1/me", auth(http.HandlerFunc(userHandler.UpdateProfile)))
	mux.Handle("PATCH /api/v1/me/password", auth(http.HandlerFunc(userHandler.ChangePassword)))

	// Protected - Connections & Feed
	mux.Handle("POST /api/v1/connections/request/send/{status}/{toUserId}", auth(http.HandlerFunc(connHandler.SendRequest)))
	mux.Handle("POST /api/v1/connections/request/review/{status}/{requestId}", auth(http.HandlerFunc(connHandler.ReviewRequest)))
	mux.Handle("GET /api/v1/me/requests", auth(http.HandlerFunc(connHandler.ListPendingRequests)))
	mux.Handle("GET /api/v1/me/connections", auth(http.HandlerFunc(connHandler.ListConnections)))
	mux.Handle("GET /api/v1/me/feed", auth(http.HandlerFunc(feedHandler.GetFeed)))

	handler := middleware.CORS(middleware.RequestID(&log)(mux))

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.ServerPort),
		Handler: handler,
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Info().Str("addr", server.Addr).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Fatal().Err(err).Msg("server exited with error")
	}
	log.Info().Msg("server stopped")
}
