package service

import (
	"Folio/internal/api/dto"
	"Folio/internal/pkg/consts"
	"Folio/internal/pkg/util"
	"Folio/internal/repository"
	"bytes"
	"context"
	"io"
	log "log/slog"
	"path"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// MediaStore 公共桶文件存储
type MediaStore interface {
	Put(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error
	Exists(ctx context.Context, objectName string) (bool, error)
	Remove(ctx context.Context, objectName string) error
	PublicURL(objectName string) string
}

// TempMediaRegistry 已上传但未被引用的文件登记
type TempMediaRegistry interface {
	Register(ctx context.Context, objectName, meta string) error
	Release(ctx context.Context, objectNames ...string) error
	All(ctx context.Context) (map[string]string, error)
}

type MediaService interface {
	UploadThumbnail(ctx context.Context, filename string, data []byte) (*dto.MediaUploadDTO, error)
	CleanupExpired(ctx context.Context, ttl time.Duration) (int, error)
}

type mediaServiceImpl struct {
	store    MediaStore
	registry TempMediaRegistry
	postRepo repository.PostRepo
}

func NewMediaService(store MediaStore, registry TempMediaRegistry, postRepo repository.PostRepo) MediaService {
	return &mediaServiceImpl{
		store:    store,
		registry: registry,
		postRepo: postRepo,
	}
}

// UploadThumbnail 上传封面图，仅接受可解码的图片
func (s *mediaServiceImpl) UploadThumbnail(ctx context.Context, filename string, data []byte) (*dto.MediaUploadDTO, error) {
	if len(data) == 0 {
		return nil, ErrFileNotSupported
	}

	contentType, err := util.GetSafeContentType(bytes.NewReader(data))
	if err != nil || !strings.HasPrefix(contentType, consts.MimePrefixImage) {
		return nil, ErrFileNotSupported
	}

	width, height, err := util.DecodeImage(data)
	if err != nil {
		log.WarnContext(ctx, "thumbnail decode failed", "filename", filename, "mime", contentType, "err", err)
		return nil, ErrFileNotSupported
	}

	ext := util.ImageExt(contentType)
	if ext == "" {
		ext = strings.ToLower(path.Ext(filename))
	}
	objectName := consts.ThumbnailDir + "/" + time.Now().Format("2006/01/02/") + uuid.NewString() + ext

	if err = s.store.Put(ctx, objectName, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
		log.ErrorContext(ctx, "MinIO upload failed", "err", err)
		return nil, UnExpectedError
	}

	meta := dto.MediaTempMetadata{
		MimeType:  contentType,
		Width:     width,
		Height:    height,
		Size:      int64(len(data)),
		CreatedAt: time.Now().Unix(),
	}
	metaBytes, _ := json.Marshal(meta)
	if err = s.registry.Register(ctx, objectName, string(metaBytes)); err != nil {
		log.WarnContext(ctx, "failed to register temp thumbnail", "fileKey", objectName, "err", err)
	}

	log.InfoContext(ctx, "thumbnail upload success", "fileKey", objectName, "type", contentType)
	return &dto.MediaUploadDTO{
		Key:      objectName,
		URL:      s.store.PublicURL(objectName),
		Mime:     contentType,
		Width:    width,
		Height:   height,
		Size:     int64(len(data)),
		Original: filename,
	}, nil
}

// CleanupExpired 清理超时且未被任何文章引用的临时文件，返回删除数量
func (s *mediaServiceImpl) CleanupExpired(ctx context.Context, ttl time.Duration) (int, error) {
	allMedia, err := s.registry.All(ctx)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	var expired []string
	for fileKey, val := range allMedia {
		var meta dto.MediaTempMetadata
		if err = json.Unmarshal([]byte(val), &meta); err != nil {
			log.WarnContext(ctx, "invalid media meta format", "fileKey", fileKey)
			continue
		}
		if now.Sub(time.Unix(meta.CreatedAt, 0)) > ttl {
			expired = append(expired, fileKey)
		}
	}
	if len(expired) == 0 {
		return 0, nil
	}

	used, err := s.postRepo.ThumbnailsInUse(ctx, expired)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, fileKey := range expired {
		if !used[fileKey] {
			if err = s.store.Remove(ctx, fileKey); err != nil {
				log.ErrorContext(ctx, "failed to delete expired file from minio", "fileKey", fileKey, "err", err)
				continue
			}
			count++
		}
		if err = s.registry.Release(ctx, fileKey); err != nil {
			log.ErrorContext(ctx, "failed to remove media token from redis", "fileKey", fileKey, "err", err)
		}
	}
	return count, nil
}

// releaseTempMedia 文件已被文章引用，不再参与清理
func releaseTempMedia(ctx context.Context, registry TempMediaRegistry, objectName string) {
	if registry == nil || objectName == "" {
		return
	}
	if err := registry.Release(ctx, objectName); err != nil {
		log.WarnContext(ctx, "failed to release temp thumbnail", "fileKey", objectName, "err", err)
	}
}
