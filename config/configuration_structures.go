package config

import "github.com/aws/aws-sdk-go-v2/service/s3"

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type S3Config struct {
	Bucket   string `yaml:"bucket"`
	Client   *s3.Client
	Region   string `yaml:"region"`
	Endpoint string `yaml:"endpoint"`
	Local    bool   `yaml:"local"`
}

// JWTConfig : параметры проверки bearer-токенов внешнего identity-провайдера.
// Сервис токены не выпускает, только валидирует.
type JWTConfig struct {
	SecretKey string `yaml:"secret_key"`
	Issuer    string `yaml:"issuer"`
}

// TTL : окна жизни ссылок и кэша (в секундах).
// SignedURL всегда 120 — окно доставки контента ограничено независимо от
// оставшегося времени жизни share-ссылки.
type TTL struct {
	SignedURL int `yaml:"signed_url"`
	UploadURL int `yaml:"upload_url"`
	Cache     int `yaml:"cache"`
}
