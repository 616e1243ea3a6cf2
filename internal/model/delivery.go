package model

import "time"

// SignedDeliveryTTLSeconds : окно доставки каждого отдельного signed URL.
// Фиксировано независимо от оставшегося срока действия share-ссылки.
const SignedDeliveryTTLSeconds = 120

// UploadRequest : проверяемые сервисом мета-данные загружаемого файла
type UploadRequest struct {
	Title       string
	Description string
	FileName    string
	MimeType    string
	SizeBytes   int64
}

// UploadIssue : результат создания загрузки — pre-signed PUT URL,
// корреляционный токен загрузки и созданная запись контента
type UploadIssue struct {
	UploadURL   string
	UploadToken string
	Content     *Content
}

// SignedDelivery : signed URL с собственным коротким сроком жизни
type SignedDelivery struct {
	SignedURL string
	ExpiresIn int
	ExpiresAt time.Time
	Content   *Content
}

// SharedAccess : результат успешной авторизации по share-токену
type SharedAccess struct {
	Delivery         SignedDelivery
	Link             *ShareLink
	RemainingMinutes int
}

// ShareLinkWithContent : ссылка вместе с заголовком контента для списка владельца
type ShareLinkWithContent struct {
	ShareLink
	ContentTitle string `db:"content_title"`
}
