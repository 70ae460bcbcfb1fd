// Package pereval собирает HTTP-приложение: маршруты, middleware и зависимости.
package pereval

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/pereval-api/internal/config"
	"github.com/magabrotheeeer/pereval-api/internal/http/handlers/health"
	"github.com/magabrotheeeer/pereval-api/internal/http/handlers/pereval/list"
	"github.com/magabrotheeeer/pereval-api/internal/http/handlers/pereval/read"
	"github.com/magabrotheeeer/pereval-api/internal/http/handlers/pereval/submit"
	"github.com/magabrotheeeer/pereval-api/internal/http/handlers/pereval/update"
	"github.com/magabrotheeeer/pereval-api/internal/http/middlewarectx"
)

// PassService объединяет операции, которые нужны обработчикам перевалов.
type PassService interface {
	submit.Service
	read.Service
	update.Service
	list.Service
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, passService PassService, db health.Pinger, limit config.RateLimit) {
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Logger,
		middleware.Recoverer,
		middleware.StripSlashes,
		middlewarectx.MetricsMiddleware,
	)

	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(logger, limit))
		r.Post("/submitData", submit.New(logger, passService).ServeHTTP)
		r.Get("/submitData", list.New(logger, passService).ServeHTTP)
		r.Get("/submitData/{id}", read.New(logger, passService).ServeHTTP)
		r.Patch("/submitData/{id}", update.New(logger, passService).ServeHTTP)
	})

	r.Get("/health", health.New(logger, db).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)
}
