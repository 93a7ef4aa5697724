package redis

import (
	"Folio/internal/pkg/consts"
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// MediaTempRegistry 记录已上传但尚未被文章引用的文件
type MediaTempRegistry struct {
	rdb *redis.Client
	key string
}

func NewMediaTempRegistry(rdb *redis.Client) *MediaTempRegistry {
	return &MediaTempRegistry{rdb: rdb, key: consts.MediaTempKey}
}

// Register 登记临时文件及其元数据
func (s *MediaTempRegistry) Register(ctx context.Context, objectName, meta string) error {
	return s.rdb.HSet(ctx, s.key, objectName, meta).Err()
}

// Release 移除登记，文件转为正式引用或已被清理
func (s *MediaTempRegistry) Release(ctx context.Context, objectNames ...string) error {
	if len(objectNames) == 0 {
		return nil
	}
	return s.rdb.HDel(ctx, s.key, objectNames...).Err()
}

// All 获取所有登记
func (s *MediaTempRegistry) All(ctx context.Context) (map[string]string, error) {
	res, err := s.rdb.HGetAll(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	return res, nil
}
