package model

import (
	"strings"
	"time"

	"github.com/lib/pq"
)

// Пределы времени жизни share-ссылки в минутах
const (
	MinExpiryMinutes = 1
	MaxExpiryMinutes = 10080 // 7 дней
)

// ShareLink : грант доступа, связывающий один Content со списком email и сроком действия.
// Токен выдаётся ровно один раз при создании и после этого неизменяем.
// Единственная допустимая мутация — сброс IsActive в false владельцем.
type ShareLink struct {
	UUID          string         `db:"uuid" json:"uuid"`
	ContentUUID   string         `db:"content_uuid" json:"content_uuid"`
	OwnerUUID     string         `db:"owner_uuid" json:"owner_uuid"`
	ShareToken    string         `db:"share_token" json:"-"`
	AllowedEmails pq.StringArray `db:"allowed_emails" json:"allowed_emails"`
	ExpiresAt     time.Time      `db:"expires_at" json:"expires_at"`
	ExpiryMinutes int            `db:"expiry_minutes" json:"expiry_minutes"`
	IsActive      bool           `db:"is_active" json:"is_active"`
	CreatedAt     time.Time      `db:"created_at" json:"created_at"`
}

// IsExpired : срок никогда не мутируется, истечение вычисляется на чтении
func (l *ShareLink) IsExpired(now time.Time) bool {
	return now.After(l.ExpiresAt)
}

// AllowsEmail : проверка вхождения в allowlist. Нормализуются обе стороны
// сравнения: сервис пишет allowlist уже нормализованным, но строки, заведённые
// в БД напрямую, могут содержать регистр и пробелы
func (l *ShareLink) AllowsEmail(email string) bool {
	normalized := NormalizeEmail(email)
	for _, allowed := range l.AllowedEmails {
		if NormalizeEmail(allowed) == normalized {
			return true
		}
	}
	return false
}

// NormalizeEmail : нижний регистр и обрезка пробелов, регистр в адресах не значим
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
