// Package mongodb はMongoDBクライアントの生成とインデックス作成を提供します。
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ErrNotConfigured はMongoDBの接続先が設定されていない場合に返されます。
var ErrNotConfigured = errors.New("mongodb is not configured")

// NewClient はMongoDBクライアントを生成し、疎通確認を行います。
func NewClient(ctx context.Context, uri string) (*mongo.Client, error) {
	if uri == "" {
		return nil, ErrNotConfigured
	}
	client, err := mongo.Connect(options.Client().ApplyURI(uri).SetServerSelectionTimeout(10 * time.Second))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	// 接続確認
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	slog.Info("MongoDB connection successful")
	return client, nil
}

// UniqueIndex はコレクションの単一フィールドに対するユニークインデックスです。
type UniqueIndex struct {
	Collection string
	Field      string
}

// EnsureUniqueIndexes は指定されたユニークインデックスを作成します。既存の場合は何もしません。
func EnsureUniqueIndexes(ctx context.Context, db *mongo.Database, indexes ...UniqueIndex) error {
	for _, idx := range indexes {
		model := mongo.IndexModel{
			Keys:    bson.D{{Key: idx.Field, Value: 1}},
			Options: options.Index().SetUnique(true),
		}
		if _, err := db.Collection(idx.Collection).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("create unique index %s.%s: %w", idx.Collection, idx.Field, err)
		}
	}
	return nil
}
