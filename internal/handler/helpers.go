package handler

import (
	"content-vault/internal/model"
	"content-vault/internal/security"
	"content-vault/internal/service"
	"content-vault/internal/util"
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

func requestMeta(r *http.Request) model.RequestMeta {
	return model.RequestMeta{
		UserAgent: r.UserAgent(),
		IPAddress: r.RemoteAddr,
	}
}

func claimsFromRequest(w http.ResponseWriter, r *http.Request) (*security.Claims, bool) {
	claims, err := security.GetClaimsFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "пользователь не авторизован", http.StatusUnauthorized)
		return nil, false
	}
	return claims, true
}

// handleServiceError : отображение закрытого набора ошибок сервиса на HTTP.
// Причины отказа по ссылке получают машинные коды, чтобы клиент показывал
// точное сообщение, а не общее «нет доступа».
func handleServiceError(w http.ResponseWriter, err error) {
	log.Println(err)

	if invalid, ok := service.AsInvalidInput(err); ok {
		if len(invalid.InvalidEmails) > 0 {
			util.HandleInvalidEmails(w, invalid.Error(), invalid.InvalidEmails)
			return
		}
		util.HandleError(w, invalid.Error(), http.StatusBadRequest)
		return
	}

	switch {
	case errors.Is(err, service.ErrLinkNotFound):
		util.HandleErrorCode(w, "share-ссылка не найдена", "LINK_NOT_FOUND", http.StatusNotFound)
	case errors.Is(err, service.ErrLinkInactive):
		util.HandleErrorCode(w, "share-ссылка была деактивирована", "LINK_INACTIVE", http.StatusForbidden)
	case errors.Is(err, service.ErrLinkExpired):
		util.HandleErrorCode(w, "срок действия share-ссылки истёк, запросите новую у владельца", "LINK_EXPIRED", http.StatusForbidden)
	case errors.Is(err, service.ErrEmailNotAllowed):
		util.HandleErrorCode(w, "ваш email не входит в список разрешённых", "EMAIL_NOT_ALLOWED", http.StatusForbidden)
	case errors.Is(err, service.ErrForbidden):
		util.HandleError(w, "доступ запрещён", http.StatusForbidden)
	case errors.Is(err, service.ErrNotFound):
		util.HandleError(w, "контент не найден", http.StatusNotFound)
	case errors.Is(err, service.ErrDeliveryUnavailable):
		// временный сбой хранилища, повтор безопасен
		util.HandleError(w, "не удалось сформировать ссылку доступа", http.StatusInternalServerError)
	default:
		util.HandleError(w, "внутренняя ошибка сервера", http.StatusInternalServerError)
	}
}

func decodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}
