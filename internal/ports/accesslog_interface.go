package ports

import (
	"content-vault/internal/model"
	"context"
	"github.com/jmoiron/sqlx"
)

// AccessLogRepository : журнал доступа, только добавление
type AccessLogRepository interface {
	Append(ctx context.Context, exec sqlx.ExtContext, entry *model.AccessLogEntry) error
	ListByOwner(ctx context.Context, exec sqlx.ExtContext, ownerUUID string, limit int) ([]model.AccessLogEntry, error)
}

type AccessLogService interface {
	ListLogs(ctx context.Context, ownerUUID string, limit int) ([]model.AccessLogEntry, error)
	ReportSuspicious(ctx context.Context, userUUID string, contentUUID string, reason string, meta model.RequestMeta) error
}
