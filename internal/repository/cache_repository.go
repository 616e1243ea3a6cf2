package repository

import (
	"content-vault/config"
	"content-vault/internal/model"
	"content-vault/internal/util"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/redis/go-redis/v9"
	"time"
)

// CacheRepository : cache-aside поверх Redis. Ссылки кэшируются по токену,
// контент по uuid; мутации (деактивация, удаление) инвалидируют ключ.
type CacheRepository struct {
	client *config.RedisClient
	ttl    time.Duration
}

func NewCacheRepository(rdb *config.RedisClient, ttl time.Duration) *CacheRepository {
	return &CacheRepository{rdb, ttl}
}

func (r *CacheRepository) SetShareLink(ctx context.Context, link *model.ShareLink) error {
	data, err := json.Marshal(link)
	if err != nil {
		return util.LogError("ошибка сериализации ссылки", err)
	}

	if err := r.client.Client.Set(ctx, r.linkKey(link.ShareToken), data, r.ttl).Err(); err != nil {
		return util.LogError("ошибка сохранения ссылки в Redis", err)
	}

	return nil
}

func (r *CacheRepository) GetShareLink(ctx context.Context, token string) (*model.ShareLink, error) {
	val, err := r.client.Client.Get(ctx, r.linkKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil // нет в кэше
	} else if err != nil {
		return nil, util.LogError("ошибка получения ссылки из Redis", err)
	}

	var link model.ShareLink
	if err := json.Unmarshal([]byte(val), &link); err != nil {
		return nil, util.LogError("ошибка десериализации ссылки из кэша", err)
	}
	// токен не сериализуется в JSON, восстанавливаем из ключа
	link.ShareToken = token
	return &link, nil
}

func (r *CacheRepository) DeleteShareLink(ctx context.Context, token string) error {
	if err := r.client.Client.Del(ctx, r.linkKey(token)).Err(); err != nil {
		return util.LogError("ошибка удаления ссылки из Redis", err)
	}
	return nil
}

func (r *CacheRepository) SetContent(ctx context.Context, content *model.Content) error {
	data, err := json.Marshal(content)
	if err != nil {
		return util.LogError("ошибка сериализации контента", err)
	}

	if err := r.client.Client.Set(ctx, r.contentKey(content.UUID), data, r.ttl).Err(); err != nil {
		return util.LogError("ошибка сохранения контента в Redis", err)
	}

	return nil
}

func (r *CacheRepository) GetContent(ctx context.Context, uuid string) (*model.Content, error) {
	val, err := r.client.Client.Get(ctx, r.contentKey(uuid)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	} else if err != nil {
		return nil, util.LogError("ошибка получения контента из Redis", err)
	}

	var content model.Content
	if err := json.Unmarshal([]byte(val), &content); err != nil {
		return nil, util.LogError("ошибка десериализации контента из кэша", err)
	}
	return &content, nil
}

func (r *CacheRepository) DeleteContent(ctx context.Context, uuid string) error {
	if err := r.client.Client.Del(ctx, r.contentKey(uuid)).Err(); err != nil {
		return util.LogError("ошибка удаления контента из Redis", err)
	}
	return nil
}

func (r *CacheRepository) linkKey(token string) string {
	return fmt.Sprintf("sharelink:%s", token)
}

func (r *CacheRepository) contentKey(uuid string) string {
	return fmt.Sprintf("content:%s", uuid)
}
