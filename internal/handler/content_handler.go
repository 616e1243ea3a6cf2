package handler

import (
	"content-vault/internal/model"
	requestresponse "content-vault/internal/model/requestresponse"
	"content-vault/internal/ports"
	"content-vault/internal/util"
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

type ContentHandler struct {
	ports.ContentService
}

func NewContentHandler(contentService ports.ContentService) *ContentHandler {
	return &ContentHandler{contentService}
}

// CreateUpload godoc
// @Summary Создание загрузки контента
// @Description Проверяет MIME-тип, создаёт запись контента и возвращает pre-signed PUT URL для загрузки файла напрямую в хранилище.
// @Tags Contents
// @Accept json
// @Produce json
// @Param request body requestresponse.CreateUploadRequest true "Мета-данные файла"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 201 {object} requestresponse.CreateUploadResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Неподдерживаемый MIME-тип или неверные поля"
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/contents [post]
func (h *ContentHandler) CreateUpload(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	claims, ok := claimsFromRequest(w, r)
	if !ok {
		return
	}

	var req requestresponse.CreateUploadRequest
	if err := decodeJSON(r, &req); err != nil {
		util.HandleError(w, "неверный формат запроса", http.StatusBadRequest)
		return
	}

	issue, err := h.ContentService.CreateUpload(ctx, claims.UserUUID, &model.UploadRequest{
		Title:       req.Title,
		Description: req.Description,
		FileName:    req.FileName,
		MimeType:    req.MimeType,
		SizeBytes:   req.SizeBytes,
	}, requestMeta(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, requestresponse.CreateUploadResponse{
		UploadURL:       issue.UploadURL,
		UploadToken:     issue.UploadToken,
		ContentID:       issue.Content.UUID,
		FilePath:        issue.Content.StoragePath,
		ContentCategory: issue.Content.Category,
	})
}

// ListContents godoc
// @Summary Список контента владельца
// @Tags Contents
// @Produce json
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.ListContentsResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/contents [get]
func (h *ContentHandler) ListContents(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(w, r)
	if !ok {
		return
	}

	contents, err := h.ContentService.ListContents(r.Context(), claims.UserUUID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	responses := make([]requestresponse.ContentResponse, 0, len(contents))
	for i := range contents {
		responses = append(responses, requestresponse.ContentResponseFromModel(&contents[i]))
	}

	writeJSON(w, http.StatusOK, requestresponse.ListContentsResponse{
		Data:  responses,
		Count: len(responses),
	})
}

// OwnerSignedURL godoc
// @Summary Signed URL для владельца контента
// @Description Owner-путь: share-ссылки не участвуют, но окно доставки те же 120 секунд. Клиент обязан перезапрашивать URL до истечения.
// @Tags Contents
// @Produce json
// @Param content_id path string true "UUID контента"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.SignedURLResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse "Не владелец"
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/contents/{content_id}/signed-url [get]
func (h *ContentHandler) OwnerSignedURL(w http.ResponseWriter, r *http.Request) {
	contentUUID := chi.URLParam(r, "content_id")
	if contentUUID == "" {
		util.HandleError(w, "ID контента обязателен", http.StatusBadRequest)
		return
	}

	claims, ok := claimsFromRequest(w, r)
	if !ok {
		return
	}

	delivery, err := h.ContentService.OwnerSignedURL(r.Context(), claims.UserUUID, contentUUID, requestMeta(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	content := delivery.Content
	writeJSON(w, http.StatusOK, requestresponse.SignedURLResponse{
		SignedURL:       delivery.SignedURL,
		ExpiresIn:       delivery.ExpiresIn,
		ExpiresAt:       delivery.ExpiresAt.Format(time.RFC3339),
		Title:           content.Title,
		Description:     content.Description,
		FileType:        model.LegacyFileType(content.Category),
		ContentCategory: content.Category,
		MimeType:        content.MimeType,
		FileExtension:   content.FileExtension,
	})
}

// DeleteContent godoc
// @Summary Удаление контента
// @Description Помечает контент удалённым и удаляет объект из хранилища; share-ссылки на него перестают работать.
// @Tags Contents
// @Produce json
// @Param content_id path string true "UUID контента"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.SuccessResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/contents/{content_id} [delete]
func (h *ContentHandler) DeleteContent(w http.ResponseWriter, r *http.Request) {
	contentUUID := chi.URLParam(r, "content_id")
	if contentUUID == "" {
		util.HandleError(w, "ID контента обязателен", http.StatusBadRequest)
		return
	}

	claims, ok := claimsFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.ContentService.DeleteContent(r.Context(), claims.UserUUID, contentUUID); err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, requestresponse.SuccessResponse{Message: "контент удалён"})
}
