package service

import (
	"content-vault/config"
	"content-vault/internal/model"
	"content-vault/internal/ports"
	"content-vault/internal/util"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// unsafePathChars : всё, что не годится для имени объекта в хранилище
var unsafePathChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

type ContentService struct {
	contentRepository ports.ContentRepository
	logRepository     ports.AccessLogRepository
	cacheRepository   ports.CacheRepository
	storageInterface  ports.S3Storage
	uploadTTL         time.Duration
}

func NewContentService(
	contentRepository ports.ContentRepository,
	logRepository ports.AccessLogRepository,
	cacheRepository ports.CacheRepository,
	storageInterface ports.S3Storage,
	uploadTTL time.Duration,
) *ContentService {
	return &ContentService{
		contentRepository: contentRepository,
		logRepository:     logRepository,
		cacheRepository:   cacheRepository,
		storageInterface:  storageInterface,
		uploadTTL:         uploadTTL,
	}
}

// CreateUpload : проверяет MIME-тип по списку допустимых, создаёт запись
// контента и возвращает pre-signed PUT URL. Путь хранения образуется из
// идентификатора владельца и папки категории — не-владелец вывести его не может.
func (s *ContentService) CreateUpload(ctx context.Context, ownerUUID string, req *model.UploadRequest, meta model.RequestMeta) (*model.UploadIssue, error) {
	db, ok := ctx.Value("db").(*config.Database)
	if ok == false {
		return nil, fmt.Errorf("[ContentService] database connection не найден в context")
	}

	if req.Title == "" {
		return nil, &InvalidInputError{Field: "title", Detail: "обязательное поле"}
	}
	if req.FileName == "" {
		return nil, &InvalidInputError{Field: "fileName", Detail: "обязательное поле"}
	}

	category, folder, ok := model.MimeCategory(req.MimeType)
	if !ok {
		return nil, &InvalidInputError{
			Field:  "mimeType",
			Detail: fmt.Sprintf("неподдерживаемый тип файла: %s", req.MimeType),
		}
	}

	sanitized := unsafePathChars.ReplaceAllString(req.FileName, "_")
	storagePath := fmt.Sprintf("%s/%s/%d_%s", ownerUUID, folder, time.Now().UnixNano(), sanitized)

	uploadURL, err := s.storageInterface.GeneratePresignedPutURL(ctx, storagePath, s.uploadTTL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeliveryUnavailable, err)
	}

	// корреляционный токен загрузки, отдаётся клиенту вместе с URL
	uploadToken, err := util.GenerateShareToken()
	if err != nil {
		return nil, err
	}

	content := &model.Content{
		UUID:          uuid.New().String(),
		OwnerUUID:     ownerUUID,
		Title:         req.Title,
		Category:      category,
		FileExtension: model.FileExtension(req.FileName),
		MimeType:      req.MimeType,
		StoragePath:   storagePath,
		CreatedAt:     time.Now(),
	}
	if req.Description != "" {
		content.Description = &req.Description
	}
	if req.SizeBytes > 0 {
		content.SizeBytes = &req.SizeBytes
	}

	if err := s.contentRepository.Create(ctx, db, content); err != nil {
		return nil, util.LogError("[ContentService] не удалось сохранить контент в БД", err)
	}

	s.audit(ctx, db, &model.AccessLogEntry{
		UserUUID:    &ownerUUID,
		ContentUUID: &content.UUID,
		EventType:   model.EventUpload,
	}, meta)

	log.Printf("[ContentService] контент %s успешно создан", content.UUID)

	return &model.UploadIssue{
		UploadURL:   uploadURL,
		UploadToken: uploadToken,
		Content:     content,
	}, nil
}

// OwnerSignedURL : owner-путь, share-ссылки не участвуют. Владелец получает
// signed URL с тем же 120-секундным окном доставки, что и приглашённые —
// «безлимитным» является только просмотр, не сама ссылка на байты.
func (s *ContentService) OwnerSignedURL(ctx context.Context, requesterUUID string, contentUUID string, meta model.RequestMeta) (*model.SignedDelivery, error) {
	db, ok := ctx.Value("db").(*config.Database)
	if ok == false {
		return nil, fmt.Errorf("[ContentService] database connection не найден в context")
	}

	content, err := s.cacheRepository.GetContent(ctx, contentUUID)
	if err != nil {
		log.Printf("[ContentService] ошибка кэширования: %v", err)
	}

	if content == nil {
		content, err = s.contentRepository.GetByUUID(ctx, db, contentUUID)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		if err != nil {
			return nil, util.LogError("[ContentService] не удалось получить контент", err)
		}

		if err := s.cacheRepository.SetContent(ctx, content); err != nil {
			log.Printf("[ContentService] ошибка кэширования контента: %v", err)
		}
	}

	// валидный share-токен на этот же контент здесь не помогает:
	// owner-путь и shared-путь — независимые маршруты авторизации
	if content.OwnerUUID != requesterUUID {
		return nil, ErrForbidden
	}

	signedURL, err := s.storageInterface.GeneratePresignedGetURL(ctx, content.StoragePath, model.SignedDeliveryTTLSeconds*time.Second)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeliveryUnavailable, err)
	}

	now := time.Now()
	s.audit(ctx, db, &model.AccessLogEntry{
		UserUUID:    &requesterUUID,
		ContentUUID: &content.UUID,
		EventType:   model.EventOwnerAccess,
	}, meta)

	return &model.SignedDelivery{
		SignedURL: signedURL,
		ExpiresIn: model.SignedDeliveryTTLSeconds,
		ExpiresAt: now.Add(model.SignedDeliveryTTLSeconds * time.Second),
		Content:   content,
	}, nil
}

// ListContents : контент владельца для панели управления
func (s *ContentService) ListContents(ctx context.Context, ownerUUID string) ([]model.Content, error) {
	db, ok := ctx.Value("db").(*config.Database)
	if ok == false {
		return nil, fmt.Errorf("[ContentService] database connection не найден в context")
	}

	return s.contentRepository.ListByOwner(ctx, db, ownerUUID)
}

// DeleteContent : помечает контент удалённым, инвалидирует кэш и удаляет
// объект из S3. Связанные share-ссылки после этого перестают работать,
// потому что контент больше не находится на чтении.
func (s *ContentService) DeleteContent(ctx context.Context, ownerUUID string, contentUUID string) error {
	exec, rollback, commit, err := s.contentRepository.BeginTX(ctx)
	if err != nil {
		return util.LogError("[ContentService] не удалось начать транзакцию", err)
	}
	defer rollback()

	content, err := s.contentRepository.GetByUUID(ctx, exec, contentUUID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return util.LogError("[ContentService] не удалось получить контент", err)
	}

	if content.OwnerUUID != ownerUUID {
		return ErrForbidden
	}

	storagePath, err := s.contentRepository.Delete(ctx, exec, contentUUID, ownerUUID)
	if err != nil {
		return util.LogError("[ContentService] не удалось удалить контент из БД", err)
	}

	if err := commit(); err != nil {
		return util.LogError("[ContentService] не удалось закоммитить транзакцию", err)
	}

	if err := s.cacheRepository.DeleteContent(ctx, contentUUID); err != nil {
		log.Printf("[ContentService] ошибка удаления контента из кэша: %v", err)
	}

	if err := s.storageInterface.DeleteObject(ctx, storagePath); err != nil {
		return util.LogError("[ContentService] не удалось удалить объект из S3", err)
	}

	log.Printf("[ContentService] контент %s успешно удалён", contentUUID)

	return nil
}

func (s *ContentService) audit(ctx context.Context, db *config.Database, entry *model.AccessLogEntry, meta model.RequestMeta) {
	if meta.UserAgent != "" {
		entry.UserAgent = &meta.UserAgent
	}
	if meta.IPAddress != "" {
		entry.IPAddress = &meta.IPAddress
	}

	if err := s.logRepository.Append(ctx, db, entry); err != nil {
		log.Printf("[ContentService] не удалось записать событие %s: %v", entry.EventType, err)
	}
}
