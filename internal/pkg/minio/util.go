package minio

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
)

// Storage 公共桶文件读写
type Storage struct {
	client         *minio.Client
	bucket         string
	publicEndpoint string
}

func NewStorage(client *minio.Client, bucket, publicEndpoint string) *Storage {
	return &Storage{
		client:         client,
		bucket:         bucket,
		publicEndpoint: strings.TrimRight(publicEndpoint, "/"),
	}
}

// Put 上传文件
func (s *Storage) Put(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload file: %w", err)
	}
	return nil
}

// Exists 判断文件是否存在
func (s *Storage) Exists(ctx context.Context, objectName string) (bool, error) {
	_, err := s.client.StatObject(ctx, s.bucket, objectName, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat file: %w", err)
	}
	return true, nil
}

// Remove 删除文件，文件不存在视为成功
func (s *Storage) Remove(ctx context.Context, objectName string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// PublicURL 获取文件的公共访问URL
func (s *Storage) PublicURL(objectName string) string {
	if objectName == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s/%s", s.publicEndpoint, s.bucket, strings.TrimLeft(objectName, "/"))
}
