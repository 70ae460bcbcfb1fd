// Package update реализует HTTP-обработчик частичного обновления перевала (PATCH /submitData/{id}).
//
// Ответ всегда содержит state: 1, если перевал обновлён, и 0 с причиной отказа в message.
// Редактировать можно только перевал в статусе new; блок user в запросе должен совпадать с владельцем.
package update

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/pereval-api/internal/http/response"
	"github.com/magabrotheeeer/pereval-api/internal/lib/sl"
	"github.com/magabrotheeeer/pereval-api/internal/models"
)

// Handler обрабатывает запросы на обновление перевала.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает бизнес-логику обновления перевала.
type Service interface {
	Update(ctx context.Context, id int64, upd models.PassUpdate) error
}

// New создаёт Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary      Обновить перевал
// @Description  Обновляет только переданные поля перевала в статусе new. Контакты пользователя изменить нельзя.
// @Tags         submitData
// @Accept       json
// @Produce      json
// @Param        id    path      int                 true  "ID перевала"
// @Param        body  body      models.PassUpdate  true  "Изменяемые поля"
// @Success      200   {object}  response.StateResponse
// @Failure      400   {object}  response.StateResponse
// @Failure      404   {object}  response.StateResponse
// @Failure      500   {object}  response.StateResponse
// @Router       /submitData/{id} [patch]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.pereval.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		log.Error("failed to decode id from url", slog.String("id", chi.URLParam(r, "id")))
		response.RenderState(w, r, http.StatusBadRequest, response.StateFailed, "invalid pass id")
		return
	}

	var upd models.PassUpdate
	if err = render.DecodeJSON(r.Body, &upd); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		response.RenderState(w, r, http.StatusBadRequest, response.StateFailed, "invalid JSON body")
		return
	}

	if err = h.service.Update(r.Context(), id, upd); err != nil {
		status, msg := response.FromError(err)
		if status >= http.StatusInternalServerError {
			log.Error("failed to update pass", sl.Err(err))
		} else {
			log.Info("pass update rejected", slog.Int64("id", id), sl.Err(err))
		}
		response.RenderState(w, r, status, response.StateFailed, msg)
		return
	}

	log.Info("pass updated", slog.Int64("id", id))
	response.RenderState(w, r, http.StatusOK, response.StateOK, "pass updated")
}
