// Package read реализует HTTP-обработчик получения перевала по ID (GET /submitData/{id}).
package read

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/pereval-api/internal/http/response"
	"github.com/magabrotheeeer/pereval-api/internal/lib/sl"
	"github.com/magabrotheeeer/pereval-api/internal/models"
)

// Handler обрабатывает запросы на получение перевала.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает бизнес-логику чтения перевала.
type Service interface {
	Get(ctx context.Context, id int64) (*models.Pass, error)
}

// New создаёт Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary      Получить перевал
// @Description  Возвращает перевал с контактами пользователя, координатами, уровнями сложности, изображениями и статусом модерации.
// @Tags         submitData
// @Produce      json
// @Param        id   path      int  true  "ID перевала"
// @Success      200  {object}  response.Response{data=models.Pass}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /submitData/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.pereval.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		log.Error("failed to decode id from url", slog.String("id", chi.URLParam(r, "id")))
		response.Render(w, r, response.Error(http.StatusBadRequest, "invalid pass id"))
		return
	}

	pass, err := h.service.Get(r.Context(), id)
	if err != nil {
		status, msg := response.FromError(err)
		if status >= http.StatusInternalServerError {
			log.Error("failed to read pass", sl.Err(err))
		} else {
			log.Info("pass not returned", slog.Int64("id", id), sl.Err(err))
		}
		response.Render(w, r, response.Error(status, msg))
		return
	}

	log.Debug("pass read", slog.Int64("id", id))
	response.Render(w, r, response.OK("pass found", pass))
}
