package models

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Классы ошибок. Конкретные ошибки оборачивают один из них,
// HTTP-слой выбирает код ответа через errors.Is.
var (
	ErrInvalid  = errors.New("invalid input")
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
	ErrStorage  = errors.New("storage failure")
)

var (
	ErrPassNotFound    = fmt.Errorf("pass not found: %w", ErrNotFound)
	ErrPassNotEditable = fmt.Errorf("pass is not in status new and can not be changed: %w", ErrConflict)
	ErrOwnerMismatch   = fmt.Errorf("user data does not match the pass owner: %w", ErrConflict)
	ErrNothingToUpdate = fmt.Errorf("no data to update: %w", ErrInvalid)
)

// ValidationError содержит ошибки по полям: путь поля -> сообщение.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError возвращает nil, если ошибок нет.
func NewValidationError(fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalid
}
