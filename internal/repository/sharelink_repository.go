package repository

import (
	"content-vault/config"
	"content-vault/internal/model"
	"content-vault/internal/util"
	"context"
	"database/sql"
	"errors"
	"github.com/jmoiron/sqlx"
)

type ShareLinkRepository struct {
	*config.Database
}

func NewShareLinkRepository(database *config.Database) *ShareLinkRepository {
	return &ShareLinkRepository{database}
}

// Create : сохраняем новую share-ссылку; токен уникален на уровне БД
func (r *ShareLinkRepository) Create(ctx context.Context, exec sqlx.ExtContext, link *model.ShareLink) error {
	query := `
		INSERT INTO share_links (uuid, content_uuid, owner_uuid, share_token, allowed_emails,
		                         expires_at, expiry_minutes, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
	`
	_, err := exec.ExecContext(
		ctx,
		query,
		link.UUID,
		link.ContentUUID,
		link.OwnerUUID,
		link.ShareToken,
		link.AllowedEmails,
		link.ExpiresAt,
		link.ExpiryMinutes,
		link.IsActive)

	if err != nil {
		return util.LogError("[ShareLinkRepo] не удалось сохранить ссылку", err)
	}
	return nil
}

// GetByToken : ссылка по share-токену; (nil, nil) если токен неизвестен
func (r *ShareLinkRepository) GetByToken(ctx context.Context, exec sqlx.ExtContext, token string) (*model.ShareLink, error) {
	query := `
		SELECT uuid, content_uuid, owner_uuid, share_token, allowed_emails,
		       expires_at, expiry_minutes, is_active, created_at
		FROM share_links
		WHERE share_token = $1
	`

	var link model.ShareLink
	err := sqlx.GetContext(ctx, exec, &link, query, token)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, util.LogError("[ShareLinkRepo] не удалось получить ссылку по токену", err)
	}

	return &link, nil
}

func (r *ShareLinkRepository) GetByUUID(ctx context.Context, exec sqlx.ExtContext, linkUUID string) (*model.ShareLink, error) {
	query := `
		SELECT uuid, content_uuid, owner_uuid, share_token, allowed_emails,
		       expires_at, expiry_minutes, is_active, created_at
		FROM share_links
		WHERE uuid = $1
	`

	var link model.ShareLink
	if err := sqlx.GetContext(ctx, exec, &link, query, linkUUID); err != nil {
		return nil, err
	}

	return &link, nil
}

// Deactivate : единственная мутация ссылки — сброс is_active владельцем.
// Идемпотентна; false если ссылка не существует или принадлежит другому.
func (r *ShareLinkRepository) Deactivate(ctx context.Context, exec sqlx.ExtContext, linkUUID string, ownerUUID string) (bool, error) {
	query := `
		UPDATE share_links
		SET is_active = FALSE
		WHERE uuid = $1 AND owner_uuid = $2
	`

	result, err := exec.ExecContext(ctx, query, linkUUID, ownerUUID)
	if err != nil {
		return false, util.LogError("[ShareLinkRepo] не удалось деактивировать ссылку", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

// ListByOwner : ссылки владельца вместе с заголовком контента
func (r *ShareLinkRepository) ListByOwner(ctx context.Context, exec sqlx.ExtContext, ownerUUID string) ([]model.ShareLinkWithContent, error) {
	query := `
		SELECT l.uuid, l.content_uuid, l.owner_uuid, l.share_token, l.allowed_emails,
		       l.expires_at, l.expiry_minutes, l.is_active, l.created_at,
		       c.title AS content_title
		FROM share_links AS l
		INNER JOIN contents AS c ON c.uuid = l.content_uuid
		WHERE l.owner_uuid = $1
		ORDER BY l.created_at DESC
	`

	links := []model.ShareLinkWithContent{}
	if err := sqlx.SelectContext(ctx, exec, &links, query, ownerUUID); err != nil {
		return nil, util.LogError("[ShareLinkRepo] не удалось получить список ссылок", err)
	}

	return links, nil
}

// TokenExists : проверка занятости токена при генерации
func (r *ShareLinkRepository) TokenExists(ctx context.Context, exec sqlx.ExtContext, token string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM share_links WHERE share_token = $1)`
	if err := sqlx.GetContext(ctx, exec, &exists, query, token); err != nil {
		return false, util.LogError("[ShareLinkRepo] не удалось проверить токен", err)
	}
	return exists, nil
}
