package ports

import (
	"content-vault/internal/model"
	"context"
	"github.com/jmoiron/sqlx"
)

// ContentRepository : SQL слой контента
type ContentRepository interface {
	Create(ctx context.Context, exec sqlx.ExtContext, content *model.Content) error
	GetByUUID(ctx context.Context, exec sqlx.ExtContext, contentUUID string) (*model.Content, error)
	ListByOwner(ctx context.Context, exec sqlx.ExtContext, ownerUUID string) ([]model.Content, error)
	Delete(ctx context.Context, exec sqlx.ExtContext, contentUUID string, ownerUUID string) (string, error)
	BeginTX(ctx context.Context) (sqlx.ExtContext, func() error, func() error, error)
}

type ContentService interface {
	CreateUpload(ctx context.Context, ownerUUID string, req *model.UploadRequest, meta model.RequestMeta) (*model.UploadIssue, error)
	OwnerSignedURL(ctx context.Context, requesterUUID string, contentUUID string, meta model.RequestMeta) (*model.SignedDelivery, error)
	ListContents(ctx context.Context, ownerUUID string) ([]model.Content, error)
	DeleteContent(ctx context.Context, ownerUUID string, contentUUID string) error
}
