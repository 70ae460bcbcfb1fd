// Package health реализует проверку работоспособности сервиса и базы данных.
package health

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/pereval-api/internal/http/response"
	"github.com/magabrotheeeer/pereval-api/internal/lib/sl"
)

// Pinger проверяет доступность базы данных.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	log *slog.Logger
	db  Pinger
}

func New(log *slog.Logger, db Pinger) *Handler {
	return &Handler{
		log: log,
		db:  db,
	}
}

// ServeHTTP godoc
// @Summary      Проверка работоспособности
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.HealthResponse
// @Failure      500  {object}  response.HealthResponse
// @Router       /health [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.health"

	if err := h.db.Ping(r.Context()); err != nil {
		h.log.Error("database is unavailable",
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			sl.Err(err),
		)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.HealthResponse{Status: "Degraded", Database: "disconnected"})
		return
	}

	render.JSON(w, r, response.HealthResponse{Status: "OK", Database: "connected"})
}
