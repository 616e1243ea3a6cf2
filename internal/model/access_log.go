package model

import "time"

// Виды событий журнала доступа. Закрытый набор: каждое решение авторизации
// и каждое подозрительное действие клиента записывается ровно одним из них.
const (
	EventUpload             = "UPLOAD"
	EventLinkCreated        = "LINK_CREATED"
	EventAccessGranted      = "ACCESS_GRANTED"
	EventAccessDenied       = "ACCESS_DENIED"
	EventLinkExpired        = "LINK_EXPIRED"
	EventOwnerAccess        = "OWNER_ACCESS"
	EventURLRefreshed       = "URL_REFRESHED"
	EventSuspiciousActivity = "SUSPICIOUS_ACTIVITY"
)

// AccessLogEntry : запись журнала доступа. Только добавление: записи никогда
// не обновляются и не удаляются.
type AccessLogEntry struct {
	UUID        string    `db:"uuid" json:"uuid"`
	UserUUID    *string   `db:"user_uuid" json:"user_uuid,omitempty"`
	ContentUUID *string   `db:"content_uuid" json:"content_uuid,omitempty"`
	ShareToken  *string   `db:"share_token" json:"share_token,omitempty"`
	EventType   string    `db:"event_type" json:"event_type"`
	UserAgent   *string   `db:"user_agent" json:"user_agent,omitempty"`
	IPAddress   *string   `db:"ip_address" json:"ip_address,omitempty"`
	Detail      *string   `db:"detail" json:"detail,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// RequestMeta : user-agent и адрес клиента, сопровождающие событие журнала
type RequestMeta struct {
	UserAgent string
	IPAddress string
}
