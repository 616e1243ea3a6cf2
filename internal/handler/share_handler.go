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

type ShareHandler struct {
	ports.ShareLinkService
}

func NewShareHandler(shareLinkService ports.ShareLinkService) *ShareHandler {
	return &ShareHandler{shareLinkService}
}

// CreateShareLink godoc
// @Summary Создание share-ссылки
// @Description Создаёт ссылку с email-allowlist и сроком действия от 1 минуты до 7 дней. Токен возвращается ровно один раз.
// @Tags Links
// @Accept json
// @Produce json
// @Param request body requestresponse.CreateShareLinkRequest true "Параметры ссылки"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 201 {object} requestresponse.CreateShareLinkResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Неверный срок или невалидные email"
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse "Не владелец контента"
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/links [post]
func (h *ShareHandler) CreateShareLink(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	claims, ok := claimsFromRequest(w, r)
	if !ok {
		return
	}

	var req requestresponse.CreateShareLinkRequest
	if err := decodeJSON(r, &req); err != nil {
		util.HandleError(w, "неверный формат запроса", http.StatusBadRequest)
		return
	}
	if req.ContentID == "" {
		util.HandleError(w, "contentId обязателен", http.StatusBadRequest)
		return
	}

	link, token, err := h.ShareLinkService.CreateLink(ctx, claims.UserUUID, req.ContentID, req.AllowedEmails, req.ExpiryMinutes, requestMeta(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, requestresponse.CreateShareLinkResponse{
		ShareToken:    token,
		ContentTitle:  link.ContentTitle,
		ExpiresAt:     link.ExpiresAt.Format(time.RFC3339),
		ExpiryMinutes: link.ExpiryMinutes,
		AllowedEmails: link.AllowedEmails,
	})
}

// ListShareLinks godoc
// @Summary Список share-ссылок владельца
// @Tags Links
// @Produce json
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.ListShareLinksResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/links [get]
func (h *ShareHandler) ListShareLinks(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(w, r)
	if !ok {
		return
	}

	links, err := h.ShareLinkService.ListLinks(r.Context(), claims.UserUUID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	responses := make([]requestresponse.ShareLinkResponse, 0, len(links))
	for i := range links {
		responses = append(responses, requestresponse.ShareLinkResponseFromModel(&links[i].ShareLink, links[i].ContentTitle))
	}

	writeJSON(w, http.StatusOK, requestresponse.ListShareLinksResponse{
		Data:  responses,
		Count: len(responses),
	})
}

// DeactivateLink godoc
// @Summary Деактивация share-ссылки
// @Description Сбрасывает is_active. Срок действия не трогается — истечение вычисляется на чтении. Операция идемпотентна.
// @Tags Links
// @Produce json
// @Param link_id path string true "UUID ссылки"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.SuccessResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/links/{link_id}/deactivate [post]
func (h *ShareHandler) DeactivateLink(w http.ResponseWriter, r *http.Request) {
	linkUUID := chi.URLParam(r, "link_id")
	if linkUUID == "" {
		util.HandleError(w, "ID ссылки обязателен", http.StatusBadRequest)
		return
	}

	claims, ok := claimsFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.ShareLinkService.Deactivate(r.Context(), claims.UserUUID, linkUUID); err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, requestresponse.SuccessResponse{Message: "ссылка деактивирована"})
}

// AccessSharedContent godoc
// @Summary Доступ к контенту по share-токену
// @Description Полная проверка токена при каждом вызове: токен → активность → срок → allowlist. Обновление signed URL идёт через этот же вызов с refresh=true.
// @Tags Access
// @Accept json
// @Produce json
// @Param request body requestresponse.AccessSharedContentRequest true "Share-токен"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.AccessSharedContentResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse "LINK_INACTIVE, LINK_EXPIRED или EMAIL_NOT_ALLOWED"
// @Failure 404 {object} requestresponse.ErrorResponse "LINK_NOT_FOUND"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/access [post]
func (h *ShareHandler) AccessSharedContent(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	claims, ok := claimsFromRequest(w, r)
	if !ok {
		return
	}
	if claims.Email == "" {
		util.HandleError(w, "в токене отсутствует email", http.StatusBadRequest)
		return
	}

	var req requestresponse.AccessSharedContentRequest
	if err := decodeJSON(r, &req); err != nil {
		util.HandleError(w, "неверный формат запроса", http.StatusBadRequest)
		return
	}
	if req.ShareToken == "" {
		util.HandleError(w, "shareToken обязателен", http.StatusBadRequest)
		return
	}

	access, err := h.ShareLinkService.AccessByToken(ctx, req.ShareToken, claims.UserUUID, claims.Email, req.Refresh, requestMeta(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	content := access.Delivery.Content
	writeJSON(w, http.StatusOK, requestresponse.AccessSharedContentResponse{
		Title:                content.Title,
		Description:          content.Description,
		FileType:             model.LegacyFileType(content.Category),
		ContentCategory:      content.Category,
		MimeType:             content.MimeType,
		FileExtension:        content.FileExtension,
		SignedURL:            access.Delivery.SignedURL,
		ExpiresIn:            access.Delivery.ExpiresIn,
		LinkExpiresAt:        access.Link.ExpiresAt.Format(time.RFC3339),
		LinkRemainingMinutes: access.RemainingMinutes,
	})
}
