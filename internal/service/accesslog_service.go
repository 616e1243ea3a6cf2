package service

import (
	"content-vault/config"
	"content-vault/internal/model"
	"content-vault/internal/ports"
	"content-vault/internal/secureview"
	"context"
	"fmt"
	"log"
)

type AccessLogService struct {
	logRepository ports.AccessLogRepository
}

func NewAccessLogService(logRepository ports.AccessLogRepository) *AccessLogService {
	return &AccessLogService{logRepository: logRepository}
}

// ListLogs : журнал доступа глазами владельца — события по его контенту
// плюс его собственные действия
func (s *AccessLogService) ListLogs(ctx context.Context, ownerUUID string, limit int) ([]model.AccessLogEntry, error) {
	db, ok := ctx.Value("db").(*config.Database)
	if ok == false {
		return nil, fmt.Errorf("[AccessLogService] database connection не найден в context")
	}

	if limit <= 0 || limit > 500 {
		limit = 100
	}

	return s.logRepository.ListByOwner(ctx, db, ownerUUID, limit)
}

// ReportSuspicious : событие анти-эксфильтрационного монитора с клиентской
// стороны. Причина обязана входить в закрытый набор secureview — произвольные
// строки в журнал не попадают. Сбой записи не возвращается клиенту: просмотр
// не должен деградировать из-за журнала.
func (s *AccessLogService) ReportSuspicious(ctx context.Context, userUUID string, contentUUID string, reason string, meta model.RequestMeta) error {
	if !secureview.ValidReason(reason) {
		return &InvalidInputError{Field: "reason", Detail: fmt.Sprintf("неизвестная причина: %s", reason)}
	}

	db, ok := ctx.Value("db").(*config.Database)
	if ok == false {
		return fmt.Errorf("[AccessLogService] database connection не найден в context")
	}

	entry := &model.AccessLogEntry{
		UserUUID:  &userUUID,
		EventType: model.EventSuspiciousActivity,
		Detail:    &reason,
	}
	if contentUUID != "" {
		entry.ContentUUID = &contentUUID
	}
	if meta.UserAgent != "" {
		entry.UserAgent = &meta.UserAgent
	}
	if meta.IPAddress != "" {
		entry.IPAddress = &meta.IPAddress
	}

	if err := s.logRepository.Append(ctx, db, entry); err != nil {
		log.Printf("[AccessLogService] не удалось записать подозрительное событие: %v", err)
	}

	return nil
}
