package dto

// CategoryFormDTO 分类 - 新增或修改
type CategoryFormDTO struct {
	Name string `json:"name" validate:"notempty,max=255"`
}

// CategoryDTO 分类详情及列表行
type CategoryDTO struct {
	ID         uint64 `json:"id"`
	Name       string `json:"name"`
	PostsCount int64  `json:"posts_count"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
	Trashed    bool   `json:"trashed"`
}

// CategoryOptionDTO 下拉选项
type CategoryOptionDTO struct {
	ID      uint64 `json:"id"`
	Name    string `json:"name"`
	Trashed bool   `json:"trashed,omitempty"`
}
