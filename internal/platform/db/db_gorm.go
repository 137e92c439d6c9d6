// Package db はリレーショナルバックエンドへのGORM接続を提供します。
package db

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	schemeSQLite     = "sqlite://"
	schemePostgres   = "postgres://"
	schemePostgreSQL = "postgresql://"
)

// ErrUnsupportedURL は対応していないスキームのデータベースURLが指定された場合に返されます。
var ErrUnsupportedURL = errors.New("unsupported database url")

// Config はデータベース接続設定を保持します。
type Config struct {
	// URL は sqlite://<path> または postgres://... 形式の接続先です。
	URL string
	// ConnectTimeout は接続リトライを諦めるまでの時間です（0の場合は1回のみ試行）。
	ConnectTimeout time.Duration
	// Debug が true の場合、SQLをログ出力します。
	Debug bool
}

// BuildDialector はURLのスキームからGORMのダイアレクタを選択します。
// SQLiteでは外部キー制約を有効化します（ON DELETE CASCADEのため）。
func BuildDialector(url string) (gorm.Dialector, error) {
	switch {
	case strings.HasPrefix(url, schemeSQLite):
		dsn := strings.TrimPrefix(url, schemeSQLite)
		if dsn == "" {
			return nil, fmt.Errorf("%w: empty sqlite path", ErrUnsupportedURL)
		}
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		return sqlite.Open(dsn + sep + "_foreign_keys=on"), nil
	case strings.HasPrefix(url, schemePostgres), strings.HasPrefix(url, schemePostgreSQL):
		return postgres.Open(url), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedURL, url)
	}
}

// OpenDB はデータベースに接続します。ConnectTimeoutの間は3秒間隔で再試行します。
func OpenDB(cfg Config) (*gorm.DB, error) {
	dialector, err := BuildDialector(cfg.URL)
	if err != nil {
		return nil, err
	}

	gcfg := &gorm.Config{
		// ユニーク制約違反を gorm.ErrDuplicatedKey に変換する
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	}
	if cfg.Debug {
		gcfg.Logger = logger.Default.LogMode(logger.Info)
	}

	var db *gorm.DB
	deadline := time.Now().Add(cfg.ConnectTimeout)
	for {
		db, err = gorm.Open(dialector, gcfg)
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed: %w", err)
		}
		slog.Warn("DB connect failed, retrying", "error", err)
		time.Sleep(3 * time.Second)
	}

	if dialector.Name() == "sqlite" {
		// SQLiteは単一ライター。:memory: は接続ごとに別DBになるため接続を1本に固定する
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

// Migrate は指定されたモデルのテーブルを作成・更新します。
func Migrate(db *gorm.DB, models ...any) error {
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}
