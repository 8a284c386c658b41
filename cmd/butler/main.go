package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	briefinghandler "github.com/morningbutler/butler/internal/api/handlers/briefing"
	"github.com/morningbutler/butler/internal/api/router"
	"github.com/morningbutler/butler/internal/api/server"
	"github.com/morningbutler/butler/internal/cache"
	"github.com/morningbutler/butler/internal/canvas"
	"github.com/morningbutler/butler/internal/config"
	"github.com/morningbutler/butler/internal/mailbox"
	"github.com/morningbutler/butler/internal/news"
	"github.com/morningbutler/butler/internal/notify"
	"github.com/morningbutler/butler/internal/rabbitmq/handlers/notice"
	"github.com/morningbutler/butler/internal/rabbitmq/queue"
	"github.com/morningbutler/butler/internal/repository/kv"
	"github.com/morningbutler/butler/internal/seen"
	briefingsvc "github.com/morningbutler/butler/internal/service/briefing"
	"github.com/morningbutler/butler/internal/weather"
	"github.com/morningbutler/butler/internal/worker"
	"github.com/morningbutler/butler/pkg/email"
	"github.com/morningbutler/butler/pkg/telegram"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
	}

	q, err := queue.NewNoticeQueue(ch)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create notice queue")
	}

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	kvRepo := kv.NewRepository(db)
	if err := kvRepo.EnsureSchema(ctx); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to ensure kv schema")
	}

	dbNum, err := strconv.Atoi(cfg.Redis.Database)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse redis database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, dbNum)
	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	feedCache := cache.New(rdb, cfg.Cache.TTL, cfg.Retry)
	seenStore := seen.NewStore(kvRepo)

	canvasClient := canvas.NewClient(cfg.Canvas.BaseURL, cfg.Canvas.Token, cfg.Canvas.CourseAliases, cfg.Retry)
	weatherClient := weather.NewClient(cfg.Retry)
	newsClient := news.NewClient(nil, cfg.Retry)
	mailFetcher := mailbox.NewFetcher(cfg.Emails.Accounts)

	service := briefingsvc.NewService(
		canvasClient, weatherClient, newsClient, mailFetcher,
		feedCache, seenStore, kvRepo, cfg,
	)

	smtpPort, err := strconv.Atoi(cfg.Email.SMTPPort)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse email smtp port")
	}

	emailClient := email.NewClient(
		cfg.Email.SMTPHost,
		smtpPort,
		cfg.Email.Username,
		cfg.Email.Password,
		cfg.Email.From,
	)
	telegramClient := telegram.NewClient(cfg.Telegram.Token)

	channels := map[string]notice.Target{}
	if cfg.Notifications.EmailTo != "" {
		channels["email"] = notice.Target{Dispatcher: emailClient, To: cfg.Notifications.EmailTo}
	}
	if cfg.Notifications.TelegramTo != "" {
		channels["telegram"] = notice.Target{Dispatcher: telegramClient, To: cfg.Notifications.TelegramTo}
	}
	messageHandler := notice.NewHandler(channels)

	policy := notify.NewPolicy(kvRepo, q, notify.NewLogPrompter(), notify.Permission(cfg.Notifications.Permission))
	scheduler := worker.NewScheduler(service, policy, cfg.Notifications.Interval)
	notifier := worker.NewNotifier(q, messageHandler)

	go notifier.Run(ctx, cfg.Retry, cfg.Workers.Count)
	go scheduler.Run(ctx, cfg.Retry)

	handler := briefinghandler.NewHandler(service, val)
	r := router.New(handler)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Printf("failed to close master DB: %v", err)
	}

	for i, slave := range db.Slaves {
		if err := slave.Close(); err != nil {
			zlog.Logger.Printf("failed to close slave DB %d: %v", i, err)
		}
	}

	if err := ch.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
	}

	if err := conn.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
	}
}
