// Package list реализует HTTP-обработчик получения перевалов пользователя
// по email (GET /submitData?user__email=...).
package list

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/pereval-api/internal/http/response"
	"github.com/magabrotheeeer/pereval-api/internal/lib/sl"
	"github.com/magabrotheeeer/pereval-api/internal/models"
)

// EmailParam — имя параметра запроса с email пользователя.
const EmailParam = "user__email"

// Handler обрабатывает запросы на получение перевалов пользователя.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает бизнес-логику поиска перевалов по email.
type Service interface {
	ListByEmail(ctx context.Context, email string) ([]models.Pass, error)
}

// New создаёт Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary      Перевалы пользователя
// @Description  Возвращает все перевалы пользователя с указанным email, новые первыми. Для неизвестного email — пустой список.
// @Tags         submitData
// @Produce      json
// @Param        user__email  query     string  true  "Email пользователя"
// @Success      200          {object}  response.Response{data=[]models.Pass}
// @Failure      400          {object}  response.Response
// @Failure      500          {object}  response.Response
// @Router       /submitData [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.pereval.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	email := r.URL.Query().Get(EmailParam)
	if email == "" {
		log.Info("email query parameter is missing")
		response.Render(w, r, response.Error(http.StatusBadRequest, "user__email query parameter is required"))
		return
	}

	passes, err := h.service.ListByEmail(r.Context(), email)
	if err != nil {
		status, msg := response.FromError(err)
		log.Error("failed to list passes", sl.Err(err))
		response.Render(w, r, response.Error(status, msg))
		return
	}

	log.Debug("passes listed", slog.Int("count", len(passes)))
	response.Render(w, r, response.OK(fmt.Sprintf("found %d passes", len(passes)), passes))
}
