package response

import (
	"errors"
	"net/http"

	"github.com/magabrotheeeer/pereval-api/internal/models"
)

var publicMessages = []struct {
	err error
	msg string
}{
	{models.ErrPassNotFound, "pass not found"},
	{models.ErrPassNotEditable, "pass is not in status new and can not be changed"},
	{models.ErrOwnerMismatch, "user data does not match the pass owner"},
	{models.ErrNothingToUpdate, "no data to update"},
}

// FromError переводит доменную ошибку в HTTP-код и сообщение для клиента.
// Текст ошибок хранилища наружу не отдаётся.
func FromError(err error) (int, string) {
	msg := ""
	for _, pm := range publicMessages {
		if errors.Is(err, pm.err) {
			msg = pm.msg
			break
		}
	}

	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, "validation failed"
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound, orDefault(msg, "not found")
	case errors.Is(err, models.ErrConflict):
		return http.StatusBadRequest, orDefault(msg, "conflict")
	case errors.Is(err, models.ErrInvalid):
		return http.StatusBadRequest, orDefault(msg, "invalid input")
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func orDefault(msg, def string) string {
	if msg == "" {
		return def
	}
	return msg
}
