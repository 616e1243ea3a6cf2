package requestresponse

import (
	"content-vault/internal/model"
	"time"
)

// CreateUploadRequest : мета-данные загружаемого файла
type CreateUploadRequest struct {
	Title       string `json:"title" example:"Demo"`
	Description string `json:"description,omitempty" example:"Запись демо"`
	FileName    string `json:"fileName" example:"demo.mp4"`
	MimeType    string `json:"mimeType" example:"video/mp4"`
	SizeBytes   int64  `json:"sizeBytes,omitempty" example:"1048576"`
}

// CreateUploadResponse : pre-signed PUT URL и данные созданной записи контента
type CreateUploadResponse struct {
	UploadURL       string `json:"uploadUrl"`
	UploadToken     string `json:"uploadToken"`
	ContentID       string `json:"contentId"`
	FilePath        string `json:"filePath"`
	ContentCategory string `json:"contentCategory"`
}

// SignedURLResponse : ответ owner-пути: signed URL со 120-секундным окном доставки
type SignedURLResponse struct {
	SignedURL       string  `json:"signedUrl"`
	ExpiresIn       int     `json:"expiresIn" example:"120"`
	ExpiresAt       string  `json:"expiresAt"`
	Title           string  `json:"title"`
	Description     *string `json:"description"`
	FileType        string  `json:"fileType"`
	ContentCategory string  `json:"contentCategory"`
	MimeType        string  `json:"mimeType"`
	FileExtension   string  `json:"fileExtension"`
}

// ContentResponse : описывает контент для JSON-ответа владельцу
type ContentResponse struct {
	UUID          string  `json:"uuid"`
	Title         string  `json:"title"`
	Description   *string `json:"description,omitempty"`
	Category      string  `json:"contentCategory"`
	FileExtension string  `json:"fileExtension"`
	MimeType      string  `json:"mimeType"`
	SizeBytes     *int64  `json:"sizeBytes,omitempty"`
	CreatedAt     string  `json:"createdAt"`
}

// ContentResponseFromModel : конвертирует model.Content в ContentResponse
func ContentResponseFromModel(content *model.Content) ContentResponse {
	return ContentResponse{
		UUID:          content.UUID,
		Title:         content.Title,
		Description:   content.Description,
		Category:      content.Category,
		FileExtension: content.FileExtension,
		MimeType:      content.MimeType,
		SizeBytes:     content.SizeBytes,
		CreatedAt:     content.CreatedAt.Format(time.RFC3339),
	}
}

// ListContentsResponse : ответ API со списком контента владельца
type ListContentsResponse struct {
	Data  []ContentResponse `json:"data"`
	Count int               `json:"count"`
}

// ErrorResponse : общий объект ошибки; Code — машинный код для точного
// сообщения на стороне клиента (LINK_EXPIRED и т.п.)
type ErrorResponse struct {
	Error         string   `json:"error"`
	Code          string   `json:"code,omitempty" example:"LINK_EXPIRED"`
	InvalidEmails []string `json:"invalidEmails,omitempty"`
}

// SuccessResponse : стандартный ответ успешного выполнения операции
type SuccessResponse struct {
	Message string `json:"message" example:"Операция выполнена успешно"`
}
