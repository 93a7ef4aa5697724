package util

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Pager 分页参数
type Pager struct {
	Page int
	Size int
}

// NewPager 规范化分页参数
func NewPager(page, size int) Pager {
	if page < 1 {
		page = DefaultPage
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return Pager{Page: page, Size: size}
}

func (p Pager) Offset() int {
	return (p.Page - 1) * p.Size
}

// TotalPage 总页数
func (p Pager) TotalPage(total int64) int {
	return int((total + int64(p.Size) - 1) / int64(p.Size))
}
