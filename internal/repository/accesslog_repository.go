package repository

import (
	"content-vault/config"
	"content-vault/internal/model"
	"content-vault/internal/util"
	"context"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type AccessLogRepository struct {
	*config.Database
}

func NewAccessLogRepository(database *config.Database) *AccessLogRepository {
	return &AccessLogRepository{database}
}

// Append : добавляет запись журнала. Журнал только растёт — никаких
// UPDATE или DELETE для access_logs не существует.
func (r *AccessLogRepository) Append(ctx context.Context, exec sqlx.ExtContext, entry *model.AccessLogEntry) error {
	if entry.UUID == "" {
		entry.UUID = uuid.New().String()
	}

	query := `
		INSERT INTO access_logs (uuid, user_uuid, content_uuid, share_token,
		                         event_type, user_agent, ip_address, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
	`
	_, err := exec.ExecContext(
		ctx,
		query,
		entry.UUID,
		entry.UserUUID,
		entry.ContentUUID,
		entry.ShareToken,
		entry.EventType,
		entry.UserAgent,
		entry.IPAddress,
		entry.Detail)

	if err != nil {
		return util.LogError("[AccessLogRepo] не удалось записать событие журнала", err)
	}
	return nil
}

// ListByOwner : события по контенту владельца плюс его собственные события
func (r *AccessLogRepository) ListByOwner(ctx context.Context, exec sqlx.ExtContext, ownerUUID string, limit int) ([]model.AccessLogEntry, error) {
	query := `
		SELECT a.uuid, a.user_uuid, a.content_uuid, a.share_token, a.event_type,
		       a.user_agent, a.ip_address, a.detail, a.created_at
		FROM access_logs AS a
		LEFT JOIN contents AS c ON c.uuid = a.content_uuid
		WHERE c.owner_uuid = $1 OR a.user_uuid = $1
		ORDER BY a.created_at DESC
		LIMIT $2
	`

	entries := []model.AccessLogEntry{}
	if err := sqlx.SelectContext(ctx, exec, &entries, query, ownerUUID, limit); err != nil {
		return nil, util.LogError("[AccessLogRepo] не удалось получить журнал", err)
	}

	return entries, nil
}
