package util

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"net/http"

	"github.com/disintegration/imaging"
)

// GetSafeContentType 根据文件头嗅探类型，读取后重置读取位置
func GetSafeContentType(reader io.ReadSeeker) (string, error) {
	buffer := make([]byte, 512)
	n, err := reader.Read(buffer)
	if err != nil && err != io.EOF {
		return "", err
	}
	if _, err = reader.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return http.DetectContentType(buffer[:n]), nil
}

// DecodeImage 完整解码图片并返回尺寸，无法解码即视为非图片
func DecodeImage(data []byte) (width, height int, err error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return 0, 0, fmt.Errorf("decode image: %w", err)
	}
	bounds := img.Bounds()
	if bounds.Empty() {
		return 0, 0, image.ErrFormat
	}
	return bounds.Dx(), bounds.Dy(), nil
}

// ImageExt 图片类型对应的扩展名
func ImageExt(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/bmp":
		return ".bmp"
	case "image/tiff":
		return ".tiff"
	}
	return ""
}
