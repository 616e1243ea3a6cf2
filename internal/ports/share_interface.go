package ports

import (
	"content-vault/internal/model"
	"context"
	"github.com/jmoiron/sqlx"
)

// ShareLinkRepository : SQL слой share-ссылок
type ShareLinkRepository interface {
	Create(ctx context.Context, exec sqlx.ExtContext, link *model.ShareLink) error
	GetByToken(ctx context.Context, exec sqlx.ExtContext, token string) (*model.ShareLink, error)
	GetByUUID(ctx context.Context, exec sqlx.ExtContext, linkUUID string) (*model.ShareLink, error)
	Deactivate(ctx context.Context, exec sqlx.ExtContext, linkUUID string, ownerUUID string) (bool, error)
	ListByOwner(ctx context.Context, exec sqlx.ExtContext, ownerUUID string) ([]model.ShareLinkWithContent, error)
	TokenExists(ctx context.Context, exec sqlx.ExtContext, token string) (bool, error)
}

type ShareLinkService interface {
	CreateLink(ctx context.Context, ownerUUID string, contentUUID string, allowedEmails []string, expiryMinutes int, meta model.RequestMeta) (*model.ShareLinkWithContent, string, error)
	Deactivate(ctx context.Context, ownerUUID string, linkUUID string) error
	AccessByToken(ctx context.Context, shareToken string, requesterUUID string, requesterEmail string, refresh bool, meta model.RequestMeta) (*model.SharedAccess, error)
	ListLinks(ctx context.Context, ownerUUID string) ([]model.ShareLinkWithContent, error)
}
