package consts

const (
	MimePrefixImage = "image"
)

const (
	// DisplayTimeLayout 列表及详情中的时间格式 d/m/Y H:i
	DisplayTimeLayout = "02/01/2006 15:04"
)

const (
	TrashedWithout = "without"
	TrashedWith    = "with"
	TrashedOnly    = "only"
)

const (
	// PublicDisk 公共存储桶
	PublicDisk = "public"
	// ThumbnailDir 封面图目录
	ThumbnailDir = "thumbnails"
)
