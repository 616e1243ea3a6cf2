package requestresponse

import (
	"content-vault/internal/model"
	"time"
)

// ReportSuspiciousRequest : событие анти-эксфильтрационного монитора,
// присланное клиентской стороной
type ReportSuspiciousRequest struct {
	ContentID string `json:"contentId,omitempty"`
	Reason    string `json:"reason" example:"print-screen"`
}

// AccessLogResponse : запись журнала для владельца
type AccessLogResponse struct {
	UUID      string  `json:"uuid"`
	UserUUID  *string `json:"userUuid,omitempty"`
	ContentID *string `json:"contentId,omitempty"`
	EventType string  `json:"eventType"`
	UserAgent *string `json:"userAgent,omitempty"`
	Detail    *string `json:"detail,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

// AccessLogResponseFromModel : конвертирует model.AccessLogEntry в AccessLogResponse
func AccessLogResponseFromModel(entry *model.AccessLogEntry) AccessLogResponse {
	return AccessLogResponse{
		UUID:      entry.UUID,
		UserUUID:  entry.UserUUID,
		ContentID: entry.ContentUUID,
		EventType: entry.EventType,
		UserAgent: entry.UserAgent,
		Detail:    entry.Detail,
		CreatedAt: entry.CreatedAt.Format(time.RFC3339),
	}
}

// ListAccessLogsResponse : ответ API со списком событий журнала
type ListAccessLogsResponse struct {
	Data  []AccessLogResponse `json:"data"`
	Count int                 `json:"count"`
}
