package consts

const (
	MediaTempKey = "media:temp:thumbnails"
)
