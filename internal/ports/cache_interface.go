package ports

import (
	"content-vault/internal/model"
	"context"
)

// CacheRepository : Redis слой. Ссылки кэшируются по токену, контент по uuid.
type CacheRepository interface {
	SetShareLink(ctx context.Context, link *model.ShareLink) error
	GetShareLink(ctx context.Context, token string) (*model.ShareLink, error)
	DeleteShareLink(ctx context.Context, token string) error
	SetContent(ctx context.Context, content *model.Content) error
	GetContent(ctx context.Context, uuid string) (*model.Content, error)
	DeleteContent(ctx context.Context, uuid string) error
}
