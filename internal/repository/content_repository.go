package repository

import (
	"content-vault/config"
	"content-vault/internal/model"
	"context"
	"github.com/jmoiron/sqlx"
)

type ContentRepository struct {
	*config.Database
}

func NewContentRepository(database *config.Database) *ContentRepository {
	return &ContentRepository{database}
}

// Create : сохраняем новую запись контента
func (r *ContentRepository) Create(ctx context.Context, exec sqlx.ExtContext, content *model.Content) error {
	query := `
		INSERT INTO contents (uuid, owner_uuid, title, description, content_category,
		                      file_extension, mime_type, size_bytes, storage_path, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
	`
	_, err := exec.ExecContext(
		ctx,
		query,
		content.UUID,
		content.OwnerUUID,
		content.Title,
		content.Description,
		content.Category,
		content.FileExtension,
		content.MimeType,
		content.SizeBytes,
		content.StoragePath)

	return err
}

// GetByUUID : возвращает контент без проверки прав — владение проверяет сервис
func (r *ContentRepository) GetByUUID(ctx context.Context, exec sqlx.ExtContext, contentUUID string) (*model.Content, error) {
	query := `
		SELECT uuid, owner_uuid, title, description, content_category, file_extension,
		       mime_type, size_bytes, storage_path, created_at, deleted_at
		FROM contents
		WHERE uuid = $1 AND deleted_at IS NULL
	`

	var content model.Content
	err := sqlx.GetContext(ctx, exec, &content, query, contentUUID)
	if err != nil {
		return nil, err
	}

	return &content, nil
}

// ListByOwner : весь контент владельца, новый сверху
func (r *ContentRepository) ListByOwner(ctx context.Context, exec sqlx.ExtContext, ownerUUID string) ([]model.Content, error) {
	query := `
		SELECT uuid, owner_uuid, title, description, content_category, file_extension,
		       mime_type, size_bytes, storage_path, created_at, deleted_at
		FROM contents
		WHERE owner_uuid = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC
	`

	contents := []model.Content{}
	if err := sqlx.SelectContext(ctx, exec, &contents, query, ownerUUID); err != nil {
		return nil, err
	}

	return contents, nil
}

// Delete : только владелец может удалить контент; возвращает storage_path
// для удаления объекта из S3
func (r *ContentRepository) Delete(ctx context.Context, exec sqlx.ExtContext, contentUUID string, ownerUUID string) (string, error) {
	query := `
		UPDATE contents
		SET deleted_at = NOW()
		WHERE uuid = $1 AND owner_uuid = $2 AND deleted_at IS NULL
		RETURNING storage_path
	`

	var storagePath string
	err := sqlx.GetContext(ctx, exec, &storagePath, query, contentUUID, ownerUUID)
	if err != nil {
		return "", err
	}

	return storagePath, nil
}

func (r *ContentRepository) BeginTX(ctx context.Context) (sqlx.ExtContext, func() error, func() error, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, nil, err
	}
	return tx, func() error { return tx.Rollback() }, func() error { return tx.Commit() }, nil
}
