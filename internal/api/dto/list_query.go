package dto

// ListQuery 列表通用查询参数，列搜索通过 columns[name]=term 传入
type ListQuery struct {
	Page      int               `form:"page"`
	PageSize  int               `form:"page_size"`
	Sort      string            `form:"sort"`
	Direction string            `form:"direction" validate:"omitempty,oneof=asc desc"`
	Search    string            `form:"search" validate:"max=255"`
	Trashed   string            `form:"trashed" validate:"omitempty,oneof=without with only"`
	Columns   map[string]string `form:"-"`
}

// PostListQuery 文章列表查询参数，published 由 handler 单独解析
type PostListQuery struct {
	ListQuery
	Published   *bool    `form:"-"`
	CategoryIDs []uint64 `form:"category_id"`
}
