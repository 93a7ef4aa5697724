package handler

import (
	"Folio/internal/pkg/response"
	"Folio/internal/service"
	"io"
	log "log/slog"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	mediaSvc service.MediaService
	maxSize  int64
}

func NewMediaHandler(mediaSvc service.MediaService, maxSize int64) *MediaHandler {
	return &MediaHandler{
		mediaSvc: mediaSvc,
		maxSize:  maxSize,
	}
}

// UploadThumbnail 上传封面图，返回的 key 用于文章 thumbnail 字段
func (s *MediaHandler) UploadThumbnail(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if s.maxSize > 0 && file.Size > s.maxSize {
		response.Error(c, service.ErrFileTooLarge)
		return
	}

	reader, err := file.Open()
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	defer func() { _ = reader.Close() }()

	data, err := io.ReadAll(reader)
	if err != nil {
		log.WarnContext(c.Request.Context(), "read upload failed", "err", err)
		response.Error(c, service.ErrParamInvalid)
		return
	}

	res, err := s.mediaSvc.UploadThumbnail(c.Request.Context(), file.Filename, data)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}
