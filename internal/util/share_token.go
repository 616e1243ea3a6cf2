package util

import (
	"context"
	"crypto/rand"
	"encoding/hex"

	"github.com/jmoiron/sqlx"
)

// ShareTokenLength : 32 байта энтропии в hex — пространство 256 бит,
// коллизии практически исключены
const ShareTokenLength = 64

// GenerateShareToken : криптографически случайный токен в нижнем hex-регистре.
// Единственный сбой — исчерпание источника энтропии, он фатален для вызова.
func GenerateShareToken() (string, error) {
	bytes := make([]byte, ShareTokenLength/2)

	if _, err := rand.Read(bytes); err != nil {
		return "", LogError("[util] ошибка генерации токена", err)
	}

	return hex.EncodeToString(bytes), nil
}

// ExistsFunc : проверка занятости токена в хранилище
type ExistsFunc func(ctx context.Context, exec sqlx.ExtContext, token string) (bool, error)

// GenerateUniqueShareToken : генерирует токен, которого гарантированно нет в БД.
// Повтор цикла на практике недостижим, проверка — страховка уникальности на чтении.
func GenerateUniqueShareToken(ctx context.Context, exec sqlx.ExtContext, exists ExistsFunc) (string, error) {
	for {
		token, err := GenerateShareToken()
		if err != nil {
			return "", err
		}

		taken, err := exists(ctx, exec, token)
		if err != nil {
			return "", err
		}

		if taken == false {
			return token, nil
		}
	}
}
