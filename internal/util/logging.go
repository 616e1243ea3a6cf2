package util

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

func LogError(message string, err error) error {
	log.Printf("%s: %v", message, err)
	return fmt.Errorf("%s: %w", message, err)
}

type errorBody struct {
	Error         string   `json:"error"`
	Code          string   `json:"code,omitempty"`
	InvalidEmails []string `json:"invalidEmails,omitempty"`
}

func HandleError(w http.ResponseWriter, message string, statusCode int) {
	writeError(w, statusCode, errorBody{Error: message})
}

// HandleErrorCode : ошибка с машинным кодом отказа (LINK_EXPIRED и т.п.),
// чтобы клиент мог показать точное сообщение
func HandleErrorCode(w http.ResponseWriter, message string, code string, statusCode int) {
	writeError(w, statusCode, errorBody{Error: message, Code: code})
}

// HandleInvalidEmails : ошибка валидации со списком проблемных адресов
func HandleInvalidEmails(w http.ResponseWriter, message string, invalidEmails []string) {
	writeError(w, http.StatusBadRequest, errorBody{Error: message, InvalidEmails: invalidEmails})
}

func writeError(w http.ResponseWriter, statusCode int, body errorBody) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}
