package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"memberships/internal/config"
	httpGateway "memberships/internal/gateways/http"
	"memberships/internal/observability/tracing"
	membershipRepository "memberships/internal/repository/membership/postgres"
	usecaseInternal "memberships/internal/usecase"
	"memberships/internal/validation"
	"memberships/migrations"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	log := setupLogger(cfg.Env)

	log.Info("starting memberships service", slog.String("env", cfg.Env))
	log.Debug("debug messages are enabled")

	shutdownTracing, err := tracing.Init(ctx, log, cfg.Tracing.Endpoint, cfg.Tracing.ServiceName, cfg.Env)
	if err != nil {
		log.Error("failed to init tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Warn("tracing shutdown", slog.String("error", err.Error()))
		}
	}()

	databaseURL := cfg.Pg.URL()

	if cfg.Pg.Migrate {
		if err := migrations.Up(databaseURL); err != nil {
			log.Error("failed to apply migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
		log.Info("migrations applied")
	}

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		log.Error("failed to init storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Error("failed to reach storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	log.Debug("init database")

	mode, err := validation.ParseMode(cfg.Validation.Mode)
	if err != nil {
		log.Error("invalid validation mode", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repo := membershipRepository.NewMembershipRepository(pool)
	txManager := membershipRepository.NewTxManager(pool)

	useCases := httpGateway.UseCases{
		Membership: usecaseInternal.NewMembership(repo, txManager,
			usecaseInternal.WithValidator(validation.NewEngine(validation.WithMode(mode))),
			usecaseInternal.WithLogger(log),
			usecaseInternal.WithOwner(cfg.Membership.DefaultUserID, cfg.Membership.AssignedBy),
		),
	}

	server := httpGateway.New(useCases,
		*cfg,
		log,
		httpGateway.WithHost(cfg.Server.Host),
		httpGateway.WithPort(uint16(cfg.Server.Port)),
		httpGateway.WithLogger(log),
		httpGateway.WithTimeout(cfg.Server.Timeout),
	)

	log.Info("starting server", slog.String("address", cfg.Server.Host+":"+strconv.Itoa(cfg.Server.Port)))
	if err := server.Run(ctx); err != nil {
		log.Error("server stopped", slog.String("error", err.Error()))
		return
	}
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger
	switch strings.ToLower(env) {
	case envLocal:
		log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	slog.SetDefault(log)
	return log
}
