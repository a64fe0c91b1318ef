package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"io/fs"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"krishaBack/internal/config"
	"krishaBack/internal/services"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	addr := flag.String("addr", "", "HTTP network address (overrides server.address)")
	flag.Parse()

	bootLog := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		bootLog.Warn().Err(err).Msg("error loading .env file")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		bootLog.Fatal().Err(err).Msg("invalid configuration")
	}
	if *addr != "" {
		cfg.Server.Address = *addr
	}

	logger := newLogger(cfg.Log, os.Stdout)
	if err := run(cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("server stopped with error")
	}
	logger.Info().Msg("server stopped")
}

func newLogger(cfg config.LogConfig, out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level)))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}
	zerolog.TimeFieldFormat = time.RFC3339Nano
	return zerolog.New(out).With().Timestamp().Str("service", "krishaBack").Logger().Level(level)
}

func run(cfg config.Config, logger zerolog.Logger) (err error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, dialect, err := openDB(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, db.Close()) }()
	logger.Info().Str("driver", cfg.Database.Driver).Msg("connected to database")

	photoStore, err := openPhotoStore(cfg.Photos)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	wsManager := NewWebSocketManager(logger)
	var notifier services.MessageNotifier = wsManager
	var bridge *redisBridge
	if cfg.Redis.Enabled() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer func() { err = multierr.Append(err, rdb.Close()) }()
		if err := rdb.Ping(ctx).Err(); err != nil {
			return err
		}
		bridge = newRedisBridge(rdb, cfg.Redis.Channel, wsManager, logger)
		notifier = bridge
		logger.Info().Str("addr", cfg.Redis.Addr).Msg("connected to redis")
	}

	app := initializeApp(db, dialect, photoStore, notifier, wsManager, cfg, logger, registry)

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	srv := &http.Server{
		Addr:         cfg.Server.Address,
		ErrorLog:     stdlog.New(logger.With().Str("component", "http").Logger(), "", 0),
		Handler:      addSecurityHeaders(c.Handler(app.routes())),
		IdleTimeout:  cfg.Server.IdleTimeout.Std(),
		ReadTimeout:  cfg.Server.ReadTimeout.Std(),
		WriteTimeout: cfg.Server.WriteTimeout.Std(),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		wsManager.Run(gctx)
		return nil
	})
	if bridge != nil {
		g.Go(func() error { return bridge.Subscribe(gctx) })
	}
	g.Go(func() error {
		logger.Info().Str("addr", srv.Addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
