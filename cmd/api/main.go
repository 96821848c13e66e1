package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nyayasetu/portal-api/internal/api"
	"github.com/nyayasetu/portal-api/internal/api/handler"
	"github.com/nyayasetu/portal-api/internal/api/middleware"
	"github.com/nyayasetu/portal-api/internal/core/ports"
	"github.com/nyayasetu/portal-api/internal/core/service"
	"github.com/nyayasetu/portal-api/internal/infrastructure/db/filestore"
	mongodb "github.com/nyayasetu/portal-api/internal/infrastructure/db/mongo"
	redisdb "github.com/nyayasetu/portal-api/internal/infrastructure/db/redis"
	"github.com/nyayasetu/portal-api/internal/infrastructure/news"
	"github.com/nyayasetu/portal-api/internal/infrastructure/session"
	"github.com/nyayasetu/portal-api/internal/infrastructure/storage"
	"github.com/nyayasetu/portal-api/internal/pkg/config"
	"github.com/nyayasetu/portal-api/pkg/logger"
)

const (
	sweepInterval   = time.Minute
	shutdownTimeout = 10 * time.Second
)

// @title       NyayaSetu Portal API
// @version     1.0
// @description Accounts, sessions, advocate directory and legal news for the NyayaSetu portal.
// @BasePath    /
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "nyayasetu-portal",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Error().Err(err).Msg("server failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	log := logger.Get()
	health := map[string]handler.Pinger{}
	var closers []func(context.Context) error
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](closeCtx); err != nil {
				log.Warn().Err(err).Msg("close failed")
			}
		}
	}()

	// --- User store ---
	var users ports.UserRepository
	switch cfg.Store.Driver {
	case config.StoreMongo:
		client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return err
		}
		closers = append(closers, client.Disconnect)
		repo := mongodb.NewUserRepository(db)
		if err := repo.EnsureIndexes(ctx); err != nil {
			return fmt.Errorf("mongo indexes: %w", err)
		}
		health["mongo"] = func(ctx context.Context) error { return client.Ping(ctx, nil) }
		users = repo
	default:
		store := filestore.NewStore(cfg.Store.UsersFile)
		health["users_file"] = store.Ping
		users = filestore.NewRepository(store, logger.Component("filestore"))
	}
	log.Info().Str("driver", cfg.Store.Driver).Msg("user store ready")

	// --- Sessions ---
	var sessionStore ports.SessionStore
	switch cfg.Session.Driver {
	case config.SessionRedis:
		rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err != nil {
			return err
		}
		closers = append(closers, func(context.Context) error { return rdb.Close() })
		health["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		sessionStore = redisdb.NewSessionStore(rdb)
	default:
		mem := session.NewMemoryStore()
		go mem.RunSweeper(ctx, sweepInterval)
		sessionStore = mem
	}
	log.Info().Str("driver", cfg.Session.Driver).Msg("session store ready")

	// --- Attachments ---
	var attachments ports.AttachmentStore
	uploadsDir := ""
	switch cfg.Attachment.Driver {
	case config.AttachmentS3:
		s3Store, err := storage.NewS3Store(ctx, storage.S3Config{
			Bucket:    cfg.S3.Bucket,
			Region:    cfg.S3.Region,
			Endpoint:  cfg.S3.Endpoint,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
			PublicURL: cfg.S3.PublicURL,
		})
		if err != nil {
			return err
		}
		attachments = s3Store
	default:
		local, err := storage.NewLocalStore(cfg.Attachment.UploadsDir)
		if err != nil {
			return err
		}
		uploadsDir = local.Dir()
		attachments = local
	}

	// --- Services ---
	sessions := service.NewSessionService(sessionStore, cfg.Session.TTL, logger.Component("sessions"))
	authService := service.NewAuthService(users, service.NewBcryptHasher(), sessions, attachments, cfg.Attachment.Timeout, logger.Component("auth"))
	newsClient := news.NewClient(news.Config{
		URL:      cfg.News.URL,
		APIKey:   cfg.News.APIKey,
		Country:  cfg.News.Country,
		Category: cfg.News.Category,
		Timeout:  cfg.News.Timeout,
	})
	if cfg.News.APIKey == "" {
		log.Warn().Msg("NEWS_API_KEY is not set; /news will relay upstream auth errors")
	}

	router := api.NewRouter(api.Dependencies{
		Log:            logger.Component("http"),
		Auth:           authService,
		Sessions:       sessions,
		Directory:      service.NewDirectoryService(users),
		News:           newsClient,
		Cookie:         middleware.NewSessionCookie(cfg.Session.CookieName, cfg.Session.Secret, cfg.Session.CookieSecure, cfg.Session.SameSiteMode()),
		AllowedOrigins: cfg.AllowedOrigins(),
		BodyLimit:      cfg.Attachment.MaxUploadSize,
		UploadsDir:     uploadsDir,
		Health:         health,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	log.Info().Msg("shutdown complete")
	return nil
}
