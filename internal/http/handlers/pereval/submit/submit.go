// Package submit реализует HTTP-обработчик добавления перевала (POST /submitData).
//
// Handler декодирует заявку, передаёт её сервису и возвращает ID созданного перевала.
// Ошибки валидации возвращаются с кодом 400 и картой ошибок по полям в data.
package submit

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/pereval-api/internal/http/response"
	"github.com/magabrotheeeer/pereval-api/internal/lib/sl"
	"github.com/magabrotheeeer/pereval-api/internal/models"
)

// Handler обрабатывает запросы на добавление перевала.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает бизнес-логику добавления перевала.
type Service interface {
	Submit(ctx context.Context, sub models.Submission) (int64, error)
}

// New создаёт Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary      Добавить перевал
// @Description  Сохраняет перевал вместе с пользователем и изображениями. Статус нового перевала — new.
// @Tags         submitData
// @Accept       json
// @Produce      json
// @Param        body  body      models.Submission  true  "Данные перевала"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Router       /submitData [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.pereval.submit"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var sub models.Submission
	if err := render.DecodeJSON(r.Body, &sub); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		response.Render(w, r, response.Error(http.StatusBadRequest, "invalid JSON body"))
		return
	}

	id, err := h.service.Submit(r.Context(), sub)
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			log.Info("invalid submission", slog.Any("fields", verr.Fields))
			response.Render(w, r, response.ValidationError(verr.Fields))
			return
		}
		status, msg := response.FromError(err)
		log.Error("failed to submit pass", sl.Err(err))
		response.Render(w, r, response.Error(status, msg))
		return
	}

	log.Info("pass added", slog.Int64("id", id))
	response.Render(w, r, response.Created(id))
}
