// Package response содержит унифицированные JSON-ответы HTTP-обработчиков.
// Ответы чтения и создания несут числовой status, ответ обновления — state 1/0.
package response

import (
	"net/http"

	"github.com/go-chi/render"
)

// Response описывает стандартный ответ: Status дублирует HTTP-код.
type Response struct {
	Status  int    `json:"status" example:"200"`
	Message string `json:"message" example:"pass created"`
	ID      int64  `json:"id,omitempty" example:"42"`
	Data    any    `json:"data,omitempty"`
}

// StateResponse — ответ на обновление перевала: State 1 при успехе, 0 при отказе.
type StateResponse struct {
	State   int    `json:"state" example:"1"`
	Message string `json:"message" example:"pass updated"`
}

// HealthResponse — ответ /health.
type HealthResponse struct {
	Status   string `json:"status" example:"OK"`
	Database string `json:"database" example:"connected"`
}

const (
	StateOK     = 1
	StateFailed = 0
)

// OK возвращает успешный ответ с данными.
func OK(message string, data any) Response {
	return Response{Status: http.StatusOK, Message: message, Data: data}
}

// Created возвращает ответ на создание с ID новой записи.
func Created(id int64) Response {
	return Response{Status: http.StatusOK, Message: "pass created", ID: id}
}

// Error возвращает ответ с ошибкой.
func Error(status int, message string) Response {
	return Response{Status: status, Message: message}
}

// ValidationError возвращает 400 с ошибками по полям в data.
func ValidationError(fields map[string]string) Response {
	return Response{Status: http.StatusBadRequest, Message: "validation failed", Data: fields}
}

// Render пишет resp с HTTP-кодом resp.Status.
func Render(w http.ResponseWriter, r *http.Request, resp Response) {
	render.Status(r, resp.Status)
	render.JSON(w, r, resp)
}

// RenderState пишет ответ обновления с HTTP-кодом code.
func RenderState(w http.ResponseWriter, r *http.Request, code int, state int, message string) {
	render.Status(r, code)
	render.JSON(w, r, StateResponse{State: state, Message: message})
}
