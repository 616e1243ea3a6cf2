package requestresponse

import (
	"content-vault/internal/model"
	"time"
)

// CreateShareLinkRequest : тело запроса на создание share-ссылки
type CreateShareLinkRequest struct {
	ContentID     string   `json:"contentId" example:"content-uuid-1234"`
	AllowedEmails []string `json:"allowedEmails" example:"bob@co.com"`
	ExpiryMinutes int      `json:"expiryMinutes" example:"60"`
}

// CreateShareLinkResponse : токен отдаётся клиенту ровно один раз
type CreateShareLinkResponse struct {
	ShareToken    string   `json:"shareToken"`
	ContentTitle  string   `json:"contentTitle"`
	ExpiresAt     string   `json:"expiresAt"`
	ExpiryMinutes int      `json:"expiryMinutes"`
	AllowedEmails []string `json:"allowedEmails"`
}

// AccessSharedContentRequest : запрос доступа к контенту по share-токену.
// refresh=true — повторная выдача signed URL в рамках той же сессии просмотра,
// проверки ссылки при этом выполняются заново в полном объёме.
type AccessSharedContentRequest struct {
	ShareToken string `json:"shareToken" example:"a3f1...64 hex"`
	Refresh    bool   `json:"refresh,omitempty"`
}

// AccessSharedContentResponse : мета-данные контента и signed URL на 120 секунд.
// linkExpiresAt/linkRemainingMinutes относятся к самой ссылке, не к URL.
type AccessSharedContentResponse struct {
	Title                string  `json:"title"`
	Description          *string `json:"description"`
	FileType             string  `json:"fileType"`
	ContentCategory      string  `json:"contentCategory"`
	MimeType             string  `json:"mimeType"`
	FileExtension        string  `json:"fileExtension"`
	SignedURL            string  `json:"signedUrl"`
	ExpiresIn            int     `json:"expiresIn" example:"120"`
	LinkExpiresAt        string  `json:"linkExpiresAt"`
	LinkRemainingMinutes int     `json:"linkRemainingMinutes"`
}

// ShareLinkResponse : описывает ссылку владельца в списке
type ShareLinkResponse struct {
	UUID          string   `json:"uuid"`
	ContentID     string   `json:"contentId"`
	ContentTitle  string   `json:"contentTitle"`
	AllowedEmails []string `json:"allowedEmails"`
	ExpiresAt     string   `json:"expiresAt"`
	ExpiryMinutes int      `json:"expiryMinutes"`
	IsActive      bool     `json:"isActive"`
	CreatedAt     string   `json:"createdAt"`
}

// ShareLinkResponseFromModel : конвертирует model.ShareLink в ShareLinkResponse
func ShareLinkResponseFromModel(link *model.ShareLink, contentTitle string) ShareLinkResponse {
	return ShareLinkResponse{
		UUID:          link.UUID,
		ContentID:     link.ContentUUID,
		ContentTitle:  contentTitle,
		AllowedEmails: link.AllowedEmails,
		ExpiresAt:     link.ExpiresAt.Format(time.RFC3339),
		ExpiryMinutes: link.ExpiryMinutes,
		IsActive:      link.IsActive,
		CreatedAt:     link.CreatedAt.Format(time.RFC3339),
	}
}

// ListShareLinksResponse : ответ API со списком ссылок владельца
type ListShareLinksResponse struct {
	Data  []ShareLinkResponse `json:"data"`
	Count int                 `json:"count"`
}
