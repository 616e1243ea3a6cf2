package handler

import (
	requestresponse "content-vault/internal/model/requestresponse"
	"content-vault/internal/ports"
	"content-vault/internal/util"
	"net/http"
	"strconv"
)

type LogHandler struct {
	ports.AccessLogService
}

func NewLogHandler(accessLogService ports.AccessLogService) *LogHandler {
	return &LogHandler{accessLogService}
}

// ListAccessLogs godoc
// @Summary Журнал доступа владельца
// @Description События по контенту владельца плюс его собственные действия, от новых к старым.
// @Tags Logs
// @Produce json
// @Param limit query int false "Максимум записей (по умолчанию 100, не более 500)"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.ListAccessLogsResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/logs [get]
func (h *LogHandler) ListAccessLogs(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(w, r)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	entries, err := h.AccessLogService.ListLogs(r.Context(), claims.UserUUID, limit)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	responses := make([]requestresponse.AccessLogResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, requestresponse.AccessLogResponseFromModel(&entries[i]))
	}

	writeJSON(w, http.StatusOK, requestresponse.ListAccessLogsResponse{
		Data:  responses,
		Count: len(responses),
	})
}

// ReportSuspicious godoc
// @Summary Приём события анти-эксфильтрационного монитора
// @Description Принимает причину из закрытого набора (print-screen, save-shortcut и т.д.). Ответ 202: запись в журнал асинхронна по отношению к просмотру.
// @Tags Logs
// @Accept json
// @Produce json
// @Param request body requestresponse.ReportSuspiciousRequest true "Событие монитора"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 202 {object} requestresponse.SuccessResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Причина вне закрытого набора"
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/logs/suspicious [post]
func (h *LogHandler) ReportSuspicious(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(w, r)
	if !ok {
		return
	}

	var req requestresponse.ReportSuspiciousRequest
	if err := decodeJSON(r, &req); err != nil {
		util.HandleError(w, "неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.AccessLogService.ReportSuspicious(r.Context(), claims.UserUUID, req.ContentID, req.Reason, requestMeta(r)); err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusAccepted, requestresponse.SuccessResponse{Message: "событие принято"})
}
