package pereval

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	// Регистрация swagger-документации.
	_ "github.com/magabrotheeeer/pereval-api/docs"
	"github.com/magabrotheeeer/pereval-api/internal/cache"
	"github.com/magabrotheeeer/pereval-api/internal/config"
	"github.com/magabrotheeeer/pereval-api/internal/lib/sl"
	"github.com/magabrotheeeer/pereval-api/internal/migrations"
	"github.com/magabrotheeeer/pereval-api/internal/rabbitmq"
	services "github.com/magabrotheeeer/pereval-api/internal/services/pereval"
	"github.com/magabrotheeeer/pereval-api/internal/storage"
	"github.com/magabrotheeeer/pereval-api/internal/validation"
)

const shutdownTimeout = 15 * time.Second

// App — HTTP-сервер API перевалов вместе с его зависимостями.
type App struct {
	server    *http.Server
	logger    *slog.Logger
	db        *storage.Storage
	cache     *cache.Cache
	publisher *rabbitmq.Publisher
}

// New подключается к PostgreSQL, применяет миграции и, если настроены,
// подключает Redis и RabbitMQ.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "app.New"

	db, err := storage.New(cfg.Storage.ConnectionString(),
		storage.WithPool(cfg.Storage.MaxOpenConns, cfg.Storage.MaxIdleConns, cfg.Storage.ConnMaxLifetime),
		storage.WithQueryTimeout(cfg.Storage.QueryTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = storage.CheckDatabaseReady(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	app := &App{logger: logger, db: db}
	var opts []services.Option

	if cfg.Redis.AddressRedis != "" {
		app.cache, err = cache.InitServer(ctx, cfg.Redis)
		if err != nil {
			app.close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		opts = append(opts, services.WithCache(app.cache, cfg.CacheTTL))
		logger.Info("redis cache enabled", slog.String("address", cfg.Redis.AddressRedis))
	}

	if cfg.RabbitMQ.URL != "" {
		app.publisher, err = rabbitmq.NewPublisher(ctx, cfg.RabbitMQ)
		if err != nil {
			app.close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		opts = append(opts, services.WithPublisher(app.publisher))
		logger.Info("moderation events enabled", slog.String("exchange", cfg.RabbitMQ.Exchange))
	}

	passService := services.NewPerevalService(db, validation.New(), logger, opts...)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, passService, db, cfg.RateLimit)

	app.server = &http.Server{
		Addr:         cfg.HTTPServer.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.TimeoutHTTP,
		WriteTimeout: cfg.HTTPServer.TimeoutHTTP,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}
	return app, nil
}

// Run запускает HTTP-сервер и останавливает его при отмене ctx.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.close()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.close()
		return err
	}
}

func (a *App) close() {
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.logger.Warn("failed to close rabbitmq publisher", sl.Err(err))
		}
	}
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.logger.Warn("failed to close redis client", sl.Err(err))
		}
	}
	if err := a.db.Close(); err != nil {
		a.logger.Warn("failed to close database", sl.Err(err))
	}
}
