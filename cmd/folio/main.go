package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3/middleware/static"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"github.com/rgarza/folio/internal/assist"
	"github.com/rgarza/folio/internal/config"
	"github.com/rgarza/folio/internal/core"
	"github.com/rgarza/folio/internal/logging"
	"github.com/rgarza/folio/internal/postgres"
	"github.com/rgarza/folio/internal/server"
	"github.com/rgarza/folio/internal/services"
	"github.com/rgarza/folio/pkg/crypto"
)

func main() {
	cfg := config.Load()

	log, err := logging.Init(logging.ConfigFromEnv())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Migrations run over database/sql; the rest of the app uses the pool.
	migrateDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		log.Fatal("open database for migrations", zap.Error(err))
	}
	if err := postgres.RunMigrations(ctx, migrateDB); err != nil {
		log.Fatal("run migrations", zap.Error(err))
	}
	if err := migrateDB.Close(); err != nil {
		log.Warn("close migration connection", zap.Error(err))
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("connect to database", zap.Error(err))
	}
	defer pool.Close()

	storage := postgres.New(pool)
	cache := core.NewInMemoryCache(cfg.SessionCache)
	sessions := services.NewSessionManager(cfg.Session, storage, cache)

	srv := server.New(server.Config{
		Auth:       services.NewAuthService(storage, crypto.NewArgon2(), sessions),
		Checklists: services.NewChecklistService(storage),
		Portfolios: services.NewPortfolioService(storage),
		Assist:     assist.NewOpenAI(cfg.Assist),
		Session:    cfg.Session,
		Log:        log,
	})

	if cfg.StaticDir != "" {
		srv.App().Use("/", static.New(cfg.StaticDir))
	}

	go sweepSessions(ctx, log, sessions, cfg.SweepInterval)

	go func() {
		log.Info("server listening", zap.String("addr", cfg.Addr))
		if err := srv.App().Listen(cfg.Addr); err != nil {
			log.Fatal("serve", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.App().ShutdownWithContext(shutdownCtx); err != nil {
		log.Warn("server shutdown", zap.Error(err))
	}
	log.Info("goodbye")
}

// sweepSessions periodically drops expired sessions so the table does not
// accumulate rows for users who never log out.
func sweepSessions(ctx context.Context, log *zap.Logger, sessions *services.SessionManager, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			count, err := sessions.Sweep()
			if err != nil {
				log.Warn("session sweep failed", zap.Error(err))
				continue
			}
			if count > 0 {
				log.Info("expired sessions removed", zap.Int("count", count))
			}
		}
	}
}
