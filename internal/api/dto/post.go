package dto

// PostFormDTO 文章 - 新增或修改
type PostFormDTO struct {
	Title      string   `json:"title" validate:"notempty,min=3,max=50"`
	Slug       string   `json:"slug" validate:"notempty,min=3,max=100"`
	Color      string   `json:"color" validate:"notempty,hexcolor"`
	CategoryID uint64   `json:"category_id" validate:"required"`
	Content    string   `json:"content" validate:"notempty"`
	Thumbnail  string   `json:"thumbnail" validate:"notempty,max=512"`
	Tags       []string `json:"tags" validate:"notempty,max=20,dive,notempty,max=50"`
	Published  bool     `json:"published"`
	Authors    []uint64 `json:"authors" validate:"selected,dive,gt=0"`
}

// RelationPostDTO 分类下文章 - 新增或修改，分类由上级决定
type RelationPostDTO struct {
	Title     string   `json:"title" validate:"notempty,min=3,max=50"`
	Slug      string   `json:"slug" validate:"notempty,min=3,max=100"`
	Color     string   `json:"color" validate:"notempty,hexcolor"`
	Content   string   `json:"content" validate:"notempty"`
	Thumbnail string   `json:"thumbnail" validate:"notempty,max=512"`
	Tags      []string `json:"tags" validate:"notempty,max=20,dive,notempty,max=50"`
	Published bool     `json:"published"`
}

// PublishedDTO 列表内勾选发布状态
type PublishedDTO struct {
	Published *bool `json:"published" validate:"required"`
}

// PostDTO 文章详情及列表行
type PostDTO struct {
	ID           uint64             `json:"id"`
	Title        string             `json:"title"`
	Slug         string             `json:"slug"`
	Color        string             `json:"color"`
	Content      string             `json:"content"`
	Thumbnail    string             `json:"thumbnail"`
	ThumbnailURL string             `json:"thumbnail_url"`
	Tags         []string           `json:"tags"`
	Published    bool               `json:"published"`
	CategoryID   uint64             `json:"category_id"`
	Category     *CategoryOptionDTO `json:"category"`
	Authors      []*AuthorDTO       `json:"authors"`
	CreatedAt    string             `json:"created_at"`
	UpdatedAt    string             `json:"updated_at"`
	Trashed      bool               `json:"trashed"`
}

// PostFilterOptionsDTO 列表筛选器可选项
type PostFilterOptionsDTO struct {
	Categories []*CategoryOptionDTO `json:"category_id"`
}
