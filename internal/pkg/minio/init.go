package minio

import (
	"Folio/internal/api/config"
	"context"
	"fmt"
	log "log/slog"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// publicReadPolicy 公共桶匿名只读策略
const publicReadPolicy = `{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Principal":{"AWS":["*"]},"Action":["s3:GetObject"],"Resource":["arn:aws:s3:::%s/*"]}]}`

// Init 初始化 MinIO 客户端并确保公共桶存在
func Init(cfg config.MinIOConfig) (*Storage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize minio client: %w", err)
	}

	ctx := context.Background()
	if err = EnsurePublicBucket(ctx, client, cfg.Bucket); err != nil {
		return nil, err
	}

	publicEndpoint := cfg.PublicEndpoint
	if publicEndpoint == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		publicEndpoint = scheme + "://" + cfg.Endpoint
	}

	return NewStorage(client, cfg.Bucket, publicEndpoint), nil
}

// EnsurePublicBucket 桶不存在时创建，并设置匿名只读
func EnsurePublicBucket(ctx context.Context, client *minio.Client, bucket string) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to connect to minio server: %w", err)
	}

	if !exists {
		if err = client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("创建存储桶失败: %w", err)
		}
		log.Info("已创建公共存储桶", "bucket", bucket)
	}

	policy, err := client.GetBucketPolicy(ctx, bucket)
	if err == nil && policy != "" {
		return nil
	}

	if err = client.SetBucketPolicy(ctx, bucket, fmt.Sprintf(publicReadPolicy, bucket)); err != nil {
		return fmt.Errorf("设置存储桶策略失败: %w", err)
	}
	log.Info("已设置公共存储桶只读策略", "bucket", bucket)
	return nil
}
