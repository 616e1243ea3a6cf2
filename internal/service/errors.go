package service

import (
	"errors"
	"fmt"
	"strings"
)

// Закрытый набор ошибок предметной области. Причины отказа по share-ссылке
// различимы через errors.Is, чтобы обработчик мог отдать точный код клиенту.
var (
	ErrForbidden           = errors.New("доступ запрещён")
	ErrNotFound            = errors.New("контент не найден")
	ErrLinkNotFound        = errors.New("share-ссылка не найдена")
	ErrLinkInactive        = errors.New("share-ссылка деактивирована")
	ErrLinkExpired         = errors.New("срок действия share-ссылки истёк")
	ErrEmailNotAllowed     = errors.New("email не входит в список разрешённых")
	ErrDeliveryUnavailable = errors.New("хранилище не смогло выдать signed URL")
)

// InvalidInputError : некорректные поля запроса; где возможно, перечисляет
// конкретные проблемные значения (например, список невалидных email)
type InvalidInputError struct {
	Field         string
	Detail        string
	InvalidEmails []string
}

func (e *InvalidInputError) Error() string {
	if len(e.InvalidEmails) > 0 {
		return fmt.Sprintf("некорректное поле %s: %s: %s", e.Field, e.Detail, strings.Join(e.InvalidEmails, ", "))
	}
	return fmt.Sprintf("некорректное поле %s: %s", e.Field, e.Detail)
}

// AsInvalidInput : достаёт InvalidInputError из цепочки ошибок
func AsInvalidInput(err error) (*InvalidInputError, bool) {
	var invalid *InvalidInputError
	if errors.As(err, &invalid) {
		return invalid, true
	}
	return nil, false
}
