// Package response содержит вспомогательные типы и функции для формирования
// JSON‑ответов HTTP‑обработчиков. Все ошибки наружу отдаются в одном
// формате: объект с полем message и соответствующим HTTP-статусом,
// без внутренних деталей.
package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"
)

// Message описывает стандартное тело ответа с сообщением.
type Message struct {
	Message string `json:"message"`
}

// Error возвращает тело ответа с переданным сообщением об ошибке.
func Error(msg string) Message {
	return Message{Message: msg}
}

// OK возвращает тело ответа с информационным сообщением.
func OK(msg string) Message {
	return Message{Message: msg}
}

// ValidationError формирует человеко‑читаемое сообщение на основе ошибок
// валидации. Нарушения объединяются через запятую.
func ValidationError(errs validator.ValidationErrors) Message {
	var errsMsgs []string

	for _, err := range errs {
		field := strings.ToLower(err.Field())
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("missing required %s field", field))
		case "email":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be a valid email", field))
		case "min":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s length must be at least %s characters long", field, err.Param()))
		case "oneof":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be one of [%s]", field, err.Param()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not valid", field))
		}
	}
	return Message{Message: strings.Join(errsMsgs, ", ")}
}
