package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"krishaBack/internal/config"
	"krishaBack/internal/handlers"
	"krishaBack/internal/metrics"
	"krishaBack/internal/repositories"
	"krishaBack/internal/services"
	"krishaBack/utils"
)

type application struct {
	logger            zerolog.Logger
	db                *sql.DB
	registry          *prometheus.Registry
	metrics           *metrics.HTTPMetrics
	wsManager         *WebSocketManager
	userHandler       *handlers.UserHandler
	adHandler         *handlers.AdHandler
	adFavoriteHandler *handlers.AdFavoriteHandler
	messageHandler    *handlers.MessageHandler
	chatHandler       *handlers.ChatHandler
	photoHandler      *handlers.PhotoHandler
	healthHandler     *handlers.HealthHandler
}

func initializeApp(
	db *sql.DB,
	dialect repositories.Dialect,
	photoStore utils.PhotoStore,
	notifier services.MessageNotifier,
	wsManager *WebSocketManager,
	cfg config.Config,
	logger zerolog.Logger,
	registry *prometheus.Registry,
) *application {
	// Repositories
	userRepo := repositories.UserRepository{DB: db, Dialect: dialect}
	adRepo := repositories.AdRepository{DB: db, Dialect: dialect}
	adFavoriteRepo := repositories.AdFavoriteRepository{DB: db, Dialect: dialect}
	messageRepo := repositories.MessageRepository{DB: db, Dialect: dialect}
	chatRepo := repositories.ChatRepository{DB: db, Dialect: dialect}

	// Services
	userService := &services.UserService{UserRepo: &userRepo}
	adService := &services.AdService{AdRepo: &adRepo}
	adFavoriteService := &services.AdFavoriteService{AdFavoriteRepo: &adFavoriteRepo}
	messageService := &services.MessageService{MessageRepo: &messageRepo, Notifier: notifier}
	chatService := &services.ChatService{ChatRepo: &chatRepo}
	photoService := &services.PhotoService{Store: photoStore}

	return &application{
		logger:            logger,
		db:                db,
		registry:          registry,
		metrics:           metrics.NewHTTPMetrics(registry),
		wsManager:         wsManager,
		userHandler:       &handlers.UserHandler{Service: userService},
		adHandler:         &handlers.AdHandler{Service: adService},
		adFavoriteHandler: &handlers.AdFavoriteHandler{Service: adFavoriteService},
		messageHandler:    &handlers.MessageHandler{Service: messageService},
		chatHandler:       &handlers.ChatHandler{Service: chatService},
		photoHandler:      &handlers.PhotoHandler{Service: photoService, MaxUploadBytes: cfg.Photos.MaxUploadBytes()},
		healthHandler:     &handlers.HealthHandler{DB: db},
	}
}

func openDB(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, repositories.Dialect, error) {
	dialect, err := repositories.DialectFor(cfg.Driver)
	if err != nil {
		return nil, repositories.Dialect{}, err
	}
	dsn, err := repositories.NormalizeDSN(cfg.Driver, cfg.URL)
	if err != nil {
		return nil, repositories.Dialect{}, err
	}
	db, err := sql.Open(cfg.Driver, dsn)
	if err != nil {
		return nil, repositories.Dialect{}, fmt.Errorf("open database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, repositories.Dialect{}, fmt.Errorf("ping database: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime.Std())
	return db, dialect, nil
}

func openPhotoStore(cfg config.PhotosConfig) (utils.PhotoStore, error) {
	switch cfg.Backend {
	case "s3":
		return utils.NewS3PhotoStore(utils.S3Config{
			Bucket:    cfg.S3.Bucket,
			Region:    cfg.S3.Region,
			Endpoint:  cfg.S3.Endpoint,
			Prefix:    cfg.S3.Prefix,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
		})
	default:
		return utils.NewLocalPhotoStore(cfg.Dir)
	}
}

func addSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cross-Origin-Opener-Policy", "same-origin")
		// фото открываются с других origin'ов (мобильный клиент, веб)
		w.Header().Set("Cross-Origin-Resource-Policy", "cross-origin")
		next.ServeHTTP(w, r)
	})
}
