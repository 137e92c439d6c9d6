// Package config はアプリケーション設定を環境変数から読み込みます。
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config はアプリケーション全体の設定です。
type Config struct {
	Debug         bool   `env:"DEBUG" env-default:"false"`
	Port          string `env:"PORT" env-default:"8080"`
	RunMigrations bool   `env:"RUN_MIGRATIONS" env-default:"true"`

	Repository Repository
	Auth       Auth
	Redis      Redis
	WorldTime  WorldTime
}

// Repository はストレージバックエンドの設定です。
type Repository struct {
	// Type は "sqlite"（リレーショナル）または "mongodb"（ドキュメント）です。
	Type           string        `env:"REPOSITORY_TYPE" env-default:"sqlite"`
	SQLURL         string        `env:"SQL_DATABASE_URL" env-default:"sqlite://./movies.db"`
	MongoURL       string        `env:"MONGO_DATABASE_URL" env-default:"mongodb://localhost:27017"`
	MongoDBName    string        `env:"MONGO_DB_NAME" env-default:"mongo_database"`
	ConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" env-default:"30s"`
}

// Auth はトークン発行の設定です。
type Auth struct {
	SecretKey        string `env:"SECRET_KEY" env-required:"true"`
	Algorithm        string `env:"ALGORITHM" env-default:"HS256"`
	ExpireMinutes    int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES" env-default:"30"`
	RevocationPrefix string `env:"REVOCATION_PREFIX" env-default:"revoked"`
}

// TokenTTL はアクセストークンの有効期間です。
func (a Auth) TokenTTL() time.Duration {
	return time.Duration(a.ExpireMinutes) * time.Minute
}

// Redis は失効リスト用Redisの接続設定です。Hostが空の場合、失効リストは無効です。
type Redis struct {
	Host     string `env:"REDIS_HOST"`
	Port     string `env:"REDIS_PORT" env-default:"6379"`
	Password string `env:"REDIS_PASSWORD"`
}

// WorldTime は時刻プロキシの上流サービス設定です。
type WorldTime struct {
	BaseURL   string        `env:"WORLD_TIME_API_URL" env-default:"http://worldtimeapi.org/api/timezone"`
	Timeout   time.Duration `env:"WORLD_TIME_API_TIMEOUT" env-default:"10s"`
	// RateLimit は1分あたりの上流呼び出し上限です（0で無制限）。
	RateLimit int           `env:"WORLD_TIME_API_RATE_LIMIT" env-default:"60"`
}

// ErrInvalidConfig は設定値の検証に失敗した場合に返されます。
var ErrInvalidConfig = errors.New("invalid config")

// Load は.env（存在する場合）を読み込んだ後、環境変数から設定を構築します。
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				slog.Info(".env not found; using system environment variables", "file", f)
				continue
			}
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Auth.ExpireMinutes <= 0 {
		return fmt.Errorf("%w: ACCESS_TOKEN_EXPIRE_MINUTES must be positive", ErrInvalidConfig)
	}
	return nil
}
