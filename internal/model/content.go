package model

import (
	"path/filepath"
	"strings"
	"time"
)

// Content : файл, принадлежащий ровно одному владельцу.
// StoragePath никогда не отдаётся напрямую не-владельцу, только косвенно через signed URL.
type Content struct {
	UUID          string     `db:"uuid" json:"uuid"`
	OwnerUUID     string     `db:"owner_uuid" json:"owner_uuid"`
	Title         string     `db:"title" json:"title"`
	Description   *string    `db:"description" json:"description,omitempty"`
	Category      string     `db:"content_category" json:"content_category"`
	FileExtension string     `db:"file_extension" json:"file_extension"`
	MimeType      string     `db:"mime_type" json:"mime_type"`
	SizeBytes     *int64     `db:"size_bytes" json:"size_bytes,omitempty"`
	StoragePath   string     `db:"storage_path" json:"-"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	DeletedAt     *time.Time `db:"deleted_at" json:"deleted_at,omitempty"`
}

// Категории контента
const (
	CategoryVideo    = "video"
	CategoryAudio    = "audio"
	CategoryImage    = "image"
	CategoryDocument = "document"
)

type mimeTypeInfo struct {
	Category string
	Folder   string
}

// allowedMimeTypes : допустимые MIME-типы и их категории.
// Проверяется на этапе загрузки, всё остальное отклоняется.
var allowedMimeTypes = map[string]mimeTypeInfo{
	"video/mp4":       {CategoryVideo, "videos"},
	"video/webm":      {CategoryVideo, "videos"},
	"video/quicktime": {CategoryVideo, "videos"},

	"audio/mpeg":  {CategoryAudio, "audios"},
	"audio/wav":   {CategoryAudio, "audios"},
	"audio/x-wav": {CategoryAudio, "audios"},
	"audio/x-m4a": {CategoryAudio, "audios"},
	"audio/mp4":   {CategoryAudio, "audios"},

	"image/jpeg": {CategoryImage, "images"},
	"image/png":  {CategoryImage, "images"},
	"image/webp": {CategoryImage, "images"},
	"image/gif":  {CategoryImage, "images"},

	"application/pdf":    {CategoryDocument, "docs"},
	"application/msword": {CategoryDocument, "docs"},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {CategoryDocument, "docs"},
	"application/vnd.ms-powerpoint":                                           {CategoryDocument, "docs"},
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": {CategoryDocument, "docs"},
	"text/plain": {CategoryDocument, "docs"},
}

// MimeCategory : возвращает категорию и папку хранения для MIME-типа,
// ok=false если тип не входит в список допустимых
func MimeCategory(mimeType string) (category string, folder string, ok bool) {
	info, ok := allowedMimeTypes[mimeType]
	if !ok {
		return "", "", false
	}
	return info.Category, info.Folder, true
}

// LegacyFileType : значение исторического поля file_type для старых клиентов;
// всё, кроме видео, в нём представлялось как pdf
func LegacyFileType(category string) string {
	if category == CategoryVideo {
		return "video"
	}
	return "pdf"
}

// FileExtension : расширение файла без точки, в нижнем регистре
func FileExtension(fileName string) string {
	ext := filepath.Ext(fileName)
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
