// Package validation проверяет данные перевала до обращения к хранилищу.
// Все проверки выполняются целиком, результат — карта «путь поля -> сообщение».
package validation

import (
	"encoding/hex"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/pereval-api/internal/models"
)

var phoneRegexp = regexp.MustCompile(`^\+[0-9]{7,15}$`)

var messages = map[string]string{
	"required": "field is required",
	"email":    "must be a valid email address like local@domain.tld",
	"phone":    "must look like +<country code><number>, digits only",
	"addtime":  "must be a date-time in format YYYY-MM-DD HH:MM:SS",
	"hexbytes": "must be a hex-encoded string",
}

// Validator оборачивает go-playground/validator с тегами предметной области.
// Безопасен для конкурентного использования.
type Validator struct {
	validate *validator.Validate
}

// New создаёт Validator и регистрирует теги phone, addtime и hexbytes.
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRegexp.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("addtime", func(fl validator.FieldLevel) bool {
		_, err := models.ParseAddTime(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("hexbytes", func(fl validator.FieldLevel) bool {
		_, err := hex.DecodeString(fl.Field().String())
		return err == nil
	})
	return &Validator{validate: v}
}

// Validate проверяет заявку на добавление перевала.
// Пустая карта означает, что заявка корректна.
func (v *Validator) Validate(s models.Submission) map[string]string {
	errs := make(map[string]string)
	err := v.validate.Struct(s)
	if err == nil {
		return errs
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["_"] = err.Error()
		return errs
	}
	for _, fe := range verrs {
		errs[fieldPath(fe.Namespace())] = message(fe.Tag())
	}
	return errs
}

// ValidateUpdate проверяет только переданные поля частичного обновления.
func (v *Validator) ValidateUpdate(u models.PassUpdate) map[string]string {
	errs := make(map[string]string)
	check := func(path string, value *string, tag string) {
		if value == nil {
			return
		}
		if err := v.validate.Var(*value, tag); err != nil {
			if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
				errs[path] = message(verrs[0].Tag())
				return
			}
			errs[path] = err.Error()
		}
	}

	check("beauty_title", u.BeautyTitle, "required")
	check("title", u.Title, "required")
	check("add_time", u.AddTime, "required,addtime")
	return errs
}

// fieldPath убирает имя корневой структуры: "Submission.coords.latitude" -> "coords.latitude".
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func message(tag string) string {
	if msg, ok := messages[tag]; ok {
		return msg
	}
	return "is not valid"
}
