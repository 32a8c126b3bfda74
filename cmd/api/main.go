package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gearguard/maintenance-tracker/internal/api"
	"github.com/gearguard/maintenance-tracker/internal/core/service"
	"github.com/gearguard/maintenance-tracker/internal/core/session"
	"github.com/gearguard/maintenance-tracker/internal/infrastructure/authprovider"
	"github.com/gearguard/maintenance-tracker/internal/infrastructure/config"
	mongodb "github.com/gearguard/maintenance-tracker/internal/infrastructure/db/mongo"
	redisdb "github.com/gearguard/maintenance-tracker/internal/infrastructure/db/redis"
	"github.com/gearguard/maintenance-tracker/internal/infrastructure/queue"
	"github.com/gearguard/maintenance-tracker/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Persistence ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	// --- Repositories ---
	users := mongodb.NewUserRepository(db)
	profiles := mongodb.NewProfileRepository(db)
	equipment := mongodb.NewEquipmentRepository(db)
	requests := mongodb.NewMaintenanceRepository(db)
	teams := mongodb.NewTeamRepository(db)
	demos := redisdb.NewDemoSessionStore(rdb)

	// --- Auth stack ---
	provider := authprovider.New(users, cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL, log)

	sessions := session.NewStore(provider, demos, log)
	if err := sessions.Initialize(ctx); err != nil {
		log.Warn().Err(err).Msg("session restoration failed, starting unauthenticated")
	}
	defer sessions.Close()

	reconciler := queue.NewProfileReconciler(cfg.ReconcilerWorkers, profiles, log)
	reconciler.Start(ctx)

	auth := service.NewAuthManager(provider, profiles, reconciler, demos, sessions, log)

	// --- Services ---
	e := api.NewRouter(api.Deps{
		Mongo:       db,
		Redis:       rdb,
		Sessions:    sessions,
		Auth:        auth,
		Equipment:   service.NewEquipmentService(equipment, log),
		Maintenance: service.NewMaintenanceService(requests, equipment, teams, log),
		Teams:       service.NewTeamService(teams, log),
		Dashboard:   service.NewDashboardService(equipment, requests),
		Tokens:      provider,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("gearguard api starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info().Msg("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
