package dto

// MediaTempMetadata 临时文件元数据，存于 Redis
type MediaTempMetadata struct {
	MimeType  string `json:"mime_type"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Size      int64  `json:"size"`
	CreatedAt int64  `json:"created_at"`
}

// MediaUploadDTO 上传结果，key 即文章 thumbnail 字段的值
type MediaUploadDTO struct {
	Key      string `json:"key"`
	URL      string `json:"url"`
	Mime     string `json:"mime"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Size     int64  `json:"size"`
	Original string `json:"original"`
}
