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

// emailPattern : синтаксис адреса, проверяемый при создании ссылки
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type ShareLinkService struct {
	linkRepository    ports.ShareLinkRepository
	contentRepository ports.ContentRepository
	logRepository     ports.AccessLogRepository
	cacheRepository   ports.CacheRepository
	storageInterface  ports.S3Storage
}

func NewShareLinkService(
	linkRepository ports.ShareLinkRepository,
	contentRepository ports.ContentRepository,
	logRepository ports.AccessLogRepository,
	cacheRepository ports.CacheRepository,
	storageInterface ports.S3Storage,
) *ShareLinkService {
	return &ShareLinkService{
		linkRepository:    linkRepository,
		contentRepository: contentRepository,
		logRepository:     logRepository,
		cacheRepository:   cacheRepository,
		storageInterface:  storageInterface,
	}
}

// CreateLink : создаёт share-ссылку на контент владельца.
// Токен отдаётся вызывающему ровно один раз — восстановить его через этот
// сервис позже невозможно.
func (s *ShareLinkService) CreateLink(
	ctx context.Context,
	ownerUUID string,
	contentUUID string,
	allowedEmails []string,
	expiryMinutes int,
	meta model.RequestMeta,
) (*model.ShareLinkWithContent, string, error) {
	db, ok := ctx.Value("db").(*config.Database)
	if ok == false {
		return nil, "", fmt.Errorf("[ShareLinkService] database connection не найден в context")
	}

	if expiryMinutes < model.MinExpiryMinutes || expiryMinutes > model.MaxExpiryMinutes {
		return nil, "", &InvalidInputError{
			Field:  "expiryMinutes",
			Detail: fmt.Sprintf("должно быть от %d до %d минут", model.MinExpiryMinutes, model.MaxExpiryMinutes),
		}
	}

	if len(allowedEmails) == 0 {
		return nil, "", &InvalidInputError{Field: "allowedEmails", Detail: "список не может быть пустым"}
	}

	var invalidEmails []string
	normalized := make([]string, 0, len(allowedEmails))
	for _, email := range allowedEmails {
		candidate := model.NormalizeEmail(email)
		if !emailPattern.MatchString(candidate) {
			invalidEmails = append(invalidEmails, email)
			continue
		}
		normalized = append(normalized, candidate)
	}
	if len(invalidEmails) > 0 {
		return nil, "", &InvalidInputError{
			Field:         "allowedEmails",
			Detail:        "некорректный формат email",
			InvalidEmails: invalidEmails,
		}
	}

	exec, rollback, commit, err := s.contentRepository.BeginTX(ctx)
	if err != nil {
		return nil, "", util.LogError("[ShareLinkService] не удалось начать транзакцию", err)
	}
	defer rollback()

	content, err := s.contentRepository.GetByUUID(ctx, exec, contentUUID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, "", ErrNotFound
	}
	if err != nil {
		return nil, "", util.LogError("[ShareLinkService] не удалось получить контент", err)
	}

	if content.OwnerUUID != ownerUUID {
		return nil, "", ErrForbidden
	}

	token, err := util.GenerateUniqueShareToken(ctx, exec, s.linkRepository.TokenExists)
	if err != nil {
		return nil, "", err
	}

	now := time.Now()
	link := &model.ShareLink{
		UUID:          uuid.New().String(),
		ContentUUID:   contentUUID,
		OwnerUUID:     ownerUUID,
		ShareToken:    token,
		AllowedEmails: normalized,
		ExpiresAt:     now.Add(time.Duration(expiryMinutes) * time.Minute),
		ExpiryMinutes: expiryMinutes,
		IsActive:      true,
		CreatedAt:     now,
	}

	if err := s.linkRepository.Create(ctx, exec, link); err != nil {
		return nil, "", util.LogError("[ShareLinkService] не удалось сохранить ссылку", err)
	}

	if err := commit(); err != nil {
		return nil, "", util.LogError("[ShareLinkService] не удалось закоммитить транзакцию", err)
	}

	s.audit(ctx, db, &model.AccessLogEntry{
		UserUUID:    &ownerUUID,
		ContentUUID: &contentUUID,
		ShareToken:  &token,
		EventType:   model.EventLinkCreated,
	}, meta)

	log.Printf("[ShareLinkService] ссылка на контент %s создана, истекает %s", contentUUID, link.ExpiresAt.Format(time.RFC3339))

	return &model.ShareLinkWithContent{ShareLink: *link, ContentTitle: content.Title}, token, nil
}

// Deactivate : сбрасывает is_active; доступен только владельцу контента.
// Повторная деактивация — no-op.
func (s *ShareLinkService) Deactivate(ctx context.Context, ownerUUID string, linkUUID string) error {
	db, ok := ctx.Value("db").(*config.Database)
	if ok == false {
		return fmt.Errorf("[ShareLinkService] database connection не найден в context")
	}

	link, err := s.linkRepository.GetByUUID(ctx, db, linkUUID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return util.LogError("[ShareLinkService] не удалось получить ссылку", err)
	}

	if link.OwnerUUID != ownerUUID {
		return ErrForbidden
	}

	if _, err := s.linkRepository.Deactivate(ctx, db, linkUUID, ownerUUID); err != nil {
		return util.LogError("[ShareLinkService] не удалось деактивировать ссылку", err)
	}

	// инвалидируем кэш, чтобы деактивация подействовала на следующий же запрос
	if err := s.cacheRepository.DeleteShareLink(ctx, link.ShareToken); err != nil {
		log.Printf("[ShareLinkService] ошибка удаления ссылки из кэша: %v", err)
	}

	return nil
}

// AccessByToken : решение авторизации по share-токену. Проверки идут в
// фиксированном порядке: токен → is_active → срок → allowlist; побеждает
// первый применимый исход, и каждый исход пишет ровно одно событие журнала.
// Порядок важен: истечение проверяется до allowlist, чтобы по просроченной
// ссылке вызывающий узнавал «истекла», а не вводящее в заблуждение «нет доступа».
// Refresh проходит тот же путь целиком — деактивация срабатывает на следующем
// же обновлении, хотя уже выданный signed URL доживает свои 120 секунд.
func (s *ShareLinkService) AccessByToken(
	ctx context.Context,
	shareToken string,
	requesterUUID string,
	requesterEmail string,
	refresh bool,
	meta model.RequestMeta,
) (*model.SharedAccess, error) {
	db, ok := ctx.Value("db").(*config.Database)
	if ok == false {
		return nil, fmt.Errorf("[ShareLinkService] database connection не найден в context")
	}

	link, err := s.cacheRepository.GetShareLink(ctx, shareToken)
	if err != nil {
		log.Printf("[ShareLinkService] ошибка кэширования: %v", err)
	}

	if link == nil {
		link, err = s.linkRepository.GetByToken(ctx, db, shareToken)
		if err != nil {
			return nil, util.LogError("[ShareLinkService] не удалось получить ссылку по токену", err)
		}
		if link != nil {
			if err := s.cacheRepository.SetShareLink(ctx, link); err != nil {
				log.Printf("[ShareLinkService] ошибка кэширования ссылки: %v", err)
			}
		}
	}

	if link == nil {
		// не раскрываем, существовала ли ссылка вообще
		s.audit(ctx, db, &model.AccessLogEntry{
			UserUUID:   &requesterUUID,
			ShareToken: &shareToken,
			EventType:  model.EventAccessDenied,
		}, meta)
		return nil, ErrLinkNotFound
	}

	if link.IsActive == false {
		s.audit(ctx, db, &model.AccessLogEntry{
			UserUUID:    &requesterUUID,
			ContentUUID: &link.ContentUUID,
			ShareToken:  &shareToken,
			EventType:   model.EventAccessDenied,
		}, meta)
		return nil, ErrLinkInactive
	}

	now := time.Now()
	if link.IsExpired(now) {
		s.audit(ctx, db, &model.AccessLogEntry{
			UserUUID:    &requesterUUID,
			ContentUUID: &link.ContentUUID,
			ShareToken:  &shareToken,
			EventType:   model.EventLinkExpired,
		}, meta)
		return nil, ErrLinkExpired
	}

	if !link.AllowsEmail(requesterEmail) {
		s.audit(ctx, db, &model.AccessLogEntry{
			UserUUID:    &requesterUUID,
			ContentUUID: &link.ContentUUID,
			ShareToken:  &shareToken,
			EventType:   model.EventAccessDenied,
		}, meta)
		return nil, ErrEmailNotAllowed
	}

	content, err := s.contentRepository.GetByUUID(ctx, db, link.ContentUUID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, util.LogError("[ShareLinkService] не удалось получить контент", err)
	}

	signedURL, err := s.storageInterface.GeneratePresignedGetURL(ctx, content.StoragePath, model.SignedDeliveryTTLSeconds*time.Second)
	if err != nil {
		// сбой хранилища, не отказ авторизации
		return nil, fmt.Errorf("%w: %v", ErrDeliveryUnavailable, err)
	}

	eventType := model.EventAccessGranted
	if refresh {
		eventType = model.EventURLRefreshed
	}
	s.audit(ctx, db, &model.AccessLogEntry{
		UserUUID:    &requesterUUID,
		ContentUUID: &content.UUID,
		ShareToken:  &shareToken,
		EventType:   eventType,
	}, meta)

	remainingMinutes := int(link.ExpiresAt.Sub(now).Minutes())

	return &model.SharedAccess{
		Delivery: model.SignedDelivery{
			SignedURL: signedURL,
			ExpiresIn: model.SignedDeliveryTTLSeconds,
			ExpiresAt: now.Add(model.SignedDeliveryTTLSeconds * time.Second),
			Content:   content,
		},
		Link:             link,
		RemainingMinutes: remainingMinutes,
	}, nil
}

// ListLinks : ссылки владельца для страницы управления
func (s *ShareLinkService) ListLinks(ctx context.Context, ownerUUID string) ([]model.ShareLinkWithContent, error) {
	db, ok := ctx.Value("db").(*config.Database)
	if ok == false {
		return nil, fmt.Errorf("[ShareLinkService] database connection не найден в context")
	}

	return s.linkRepository.ListByOwner(ctx, db, ownerUUID)
}

// audit : запись журнала сопровождает уже принятое решение и не может его
// изменить — сбой записи логируется и проглатывается
func (s *ShareLinkService) audit(ctx context.Context, db *config.Database, entry *model.AccessLogEntry, meta model.RequestMeta) {
	if meta.UserAgent != "" {
		entry.UserAgent = &meta.UserAgent
	}
	if meta.IPAddress != "" {
		entry.IPAddress = &meta.IPAddress
	}

	if err := s.logRepository.Append(ctx, db, entry); err != nil {
		log.Printf("[ShareLinkService] не удалось записать событие %s: %v", entry.EventType, err)
	}
}
