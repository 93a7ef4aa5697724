package dto

// Response 统一返回结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// PageDTO 分页结果
type PageDTO[T any] struct {
	List      []T   `json:"list"`
	Total     int64 `json:"total"`
	Page      int   `json:"page"`
	PageSize  int   `json:"page_size"`
	TotalPage int   `json:"total_page"`
}

// FieldError 单个字段的校验错误
type FieldError struct {
	Field   string `json:"field"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// IDsDTO 批量操作
type IDsDTO struct {
	IDs []uint64 `json:"ids" validate:"selected,dive,gt=0"`
}

// BulkResultDTO 批量操作结果
type BulkResultDTO struct {
	Affected int64 `json:"affected"`
}
