package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodfaith/exteriors-backend/internal/config"
	"github.com/goodfaith/exteriors-backend/internal/domain/catalog"
	"github.com/goodfaith/exteriors-backend/internal/domain/events"
	"github.com/goodfaith/exteriors-backend/internal/domain/leads"
	"github.com/goodfaith/exteriors-backend/internal/domain/quotes"
	"github.com/goodfaith/exteriors-backend/internal/handler"
	"github.com/goodfaith/exteriors-backend/internal/infra/ai"
	"github.com/goodfaith/exteriors-backend/internal/infra/db"
	httpx "github.com/goodfaith/exteriors-backend/internal/infra/http"
	"github.com/goodfaith/exteriors-backend/internal/infra/logger"
	"github.com/goodfaith/exteriors-backend/internal/infra/notify"
	"github.com/goodfaith/exteriors-backend/internal/infra/secrets"
	"github.com/goodfaith/exteriors-backend/internal/pricing"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

func runMigrations(dsn string) error {
	sqlDB, err := goose.OpenDBWithDriver("postgres", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()
	return goose.Up(sqlDB, "migrations")
}

func main() {
	configPath := "config/example.yaml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.App.Env)

	if err := runMigrations(cfg.Postgres.DSN); err != nil {
		log.Error("migrations failed", "err", err)
		return
	}
	log.Info("migrations applied")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.Connect(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Error("db connect failed", "err", err)
		return
	}
	defer pool.Close()
	log.Info("db connected")

	resolver := pricing.NewResolver(secrets.NewRepo(pool), log)
	notifier := notify.New(cfg.Telegram.Token, cfg.Telegram.AdminChatID, log)
	broker := ai.NewClient(cfg.Anthropic.APIKey, cfg.Anthropic.Model)

	api := handler.New(log, resolver,
		leads.NewRepo(pool), quotes.NewRepo(pool), catalog.NewRepo(pool),
		events.NewRepo(pool, log), broker, notifier)

	srv := httpx.New(cfg.HTTP.Addr, cfg.Metrics.Enabled, api.Routes())
	go func() {
		if err := srv.Start(); err != nil && err.Error() != "http: Server closed" {
			log.Error("http server error", "err", err)
		}
	}()
	log.Info("HTTP server started", "addr", cfg.HTTP.Addr)

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	log.Info("graceful shutdown complete")
}
