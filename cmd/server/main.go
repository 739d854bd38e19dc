package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AbdulAleem24/STT-Library-management-system-sub002/internal/config"
	"github.com/AbdulAleem24/STT-Library-management-system-sub002/internal/handler"
	"github.com/AbdulAleem24/STT-Library-management-system-sub002/internal/logger"
	"github.com/AbdulAleem24/STT-Library-management-system-sub002/internal/repository"
	"github.com/AbdulAleem24/STT-Library-management-system-sub002/internal/repository/postgres"
	"github.com/AbdulAleem24/STT-Library-management-system-sub002/internal/service"
	"github.com/AbdulAleem24/STT-Library-management-system-sub002/internal/token"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load application config; missing secrets fail here, before anything runs.
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("config loading failed: %v", err)
	}

	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("logger initialization failed: %v", err)
	}

	issuer, err := token.New(cfg.Auth)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("token issuer initialization failed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, err := repository.New(ctx, cfg, &appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("postgres connection failed")
	}
	defer repo.Close()

	pool := repo.Pool()
	books := postgres.NewBookRepository(pool)
	members := postgres.NewMemberRepository(pool)
	loans := postgres.NewLoanRepository(pool)
	tx := postgres.NewTxManager(pool)

	bookSvc := service.NewBookService(books, appLogger)
	memberSvc := service.NewMemberService(members, appLogger)
	authSvc := service.NewAuthService(members, issuer, appLogger)
	loanSvc := service.NewLoanService(loans, books, members, tx, appLogger)

	if cfg.App.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	handler.Register(engine, postgres.NewPinger(pool), issuer, authSvc, bookSvc, memberSvc, loanSvc)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: engine,
	}

	go func() {
		appLogger.Info().Int("port", cfg.App.Port).Msg("service started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	appLogger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error().Err(err).Msg("graceful shutdown failed")
	}
	appLogger.Info().Msg("service stopped")
}
