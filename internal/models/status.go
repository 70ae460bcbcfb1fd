package models

import "fmt"

// Status — статус модерации перевала.
type Status string

const (
	// StatusNew — перевал только что добавлен, его ещё можно редактировать.
	StatusNew Status = "new"
	// StatusPending — перевал взят в работу модератором.
	StatusPending Status = "pending"
	// StatusAccepted — модерация прошла успешно.
	StatusAccepted Status = "accepted"
	// StatusRejected — информация не принята.
	StatusRejected Status = "rejected"
)

// ParseStatus преобразует строку из БД в Status.
func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusNew, StatusPending, StatusAccepted, StatusRejected:
		return st, nil
	default:
		return "", fmt.Errorf("unknown pass status %q", s)
	}
}

// Editable сообщает, можно ли изменять перевал через Update.
// Изменять можно только перевалы в статусе new.
func (s Status) Editable() bool {
	return s == StatusNew
}

func (s Status) String() string {
	return string(s)
}
