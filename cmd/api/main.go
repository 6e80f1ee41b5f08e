package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"miniblog/api/internal/cache"
	"miniblog/api/internal/config"
	"miniblog/api/internal/handlers"
	"miniblog/api/internal/jobs"
	"miniblog/api/internal/log"
	"miniblog/api/internal/seed"
	"miniblog/api/internal/server"
	"miniblog/api/internal/session"
	"miniblog/api/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := log.New(cfg.Environment)

	ctx := context.Background()

	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect redis")
	}

	identity := store.NewIdentityStore(seed.Accounts())
	articles := store.NewArticleStore(seed.Articles())
	comments := store.NewCommentStore(articles, seed.Comments())

	sessions := session.NewManager(identity, session.NewRedisKeyval(redisClient))
	if account, ok, err := sessions.Restore(ctx); err != nil {
		logger.Warn().Err(err).Msg("session restore failed")
	} else if ok {
		logger.Info().Str("username", account.Username).Msg("session restored")
	}

	handlerSet := handlers.NewHandlerSet(logger, cfg, identity, articles, comments, sessions, redisClient)
	httpServer := server.NewHTTPServer(cfg, logger, handlerSet)

	scheduler := jobs.NewScheduler(comments, logger)
	if err := scheduler.Start(); err != nil {
		logger.Error().Err(err).Msg("scheduler start failed")
	}

	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	waitForShutdown(logger, httpServer, scheduler, redisClient)
}

func waitForShutdown(logger zerolog.Logger, srv *server.HTTPServer, scheduler *jobs.Scheduler, redisClient *redis.Client) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}

	select {
	case <-scheduler.Stop().Done():
	case <-shutdownCtx.Done():
		logger.Warn().Msg("scheduler stop timed out")
	}

	if err := redisClient.Close(); err != nil {
		logger.Error().Err(err).Msg("redis close error")
	}

	logger.Info().Msg("server exited cleanly")
}
